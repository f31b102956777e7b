package dialog

// User-facing dialog text. The date and time formats here must stay in
// sync with what the stage machine actually parses.
const (
	msgPromptTitle        = "Enter the Title for the Meeting [Meeting Title] ?"
	msgPromptDate         = "Enter the Meeting Date (format DD/MM/YYYY)"
	msgInvalidDateFormat  = "Error: Invalid date format. Please use DD/MM/YYYY."
	msgDateInPast         = "Error: Meeting date cannot be in the past."
	msgPromptStartTime    = "Enter Start Time (format HH:mm)"
	msgPromptEndTime      = "Enter End Time (format HH:mm)"
	msgPromptParticipants = "Enter Participants (1 participant on each line)"
	msgNoRoomAvailable    = "no room available for this time for this number of people"
	msgInvalidRoomChoice  = "Error: That number is not one of the listed rooms. Select a room by its ID number."
	msgLeaving            = "Leaving."
)
