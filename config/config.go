package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Telegram bot credentials.
	BotToken       string `mapstructure:"BOT_TOKEN"`
	BotUsername    string `mapstructure:"BOT_USERNAME"`
	WebhookSecret  string `mapstructure:"WEBHOOK_SECRET"`
	TelegramAPIURL string `mapstructure:"TELEGRAM_API_URL"`

	// External scheduling service.
	ScheduleAPIURL string `mapstructure:"SCHEDULE_API_URL"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDialogDB int    `mapstructure:"REDIS_DIALOG_DB"`

	// Lifetime of an in-progress dialog before it is discarded.
	DialogTTLMinutes int `mapstructure:"DIALOG_TTL_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BOT_TOKEN", "")
	viper.SetDefault("BOT_USERNAME", "")
	viper.SetDefault("WEBHOOK_SECRET", "")
	viper.SetDefault("TELEGRAM_API_URL", "https://api.telegram.org")
	viper.SetDefault("SCHEDULE_API_URL", "https://booking-room.cloud06.io")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DIALOG_DB", 0)
	viper.SetDefault("DIALOG_TTL_MINUTES", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
