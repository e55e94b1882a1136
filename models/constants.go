package models

// AppName is the product name shown in the welcome route.
const AppName = "Other Half"

// Genders (binary model, see store.OppositeGender)
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Notification types
const (
	NotificationTypeMatch   = "match"
	NotificationTypeMessage = "message"
	NotificationTypeSystem  = "system"
)

// Call types
const (
	CallTypeAudio = "AUDIO"
	CallTypeVideo = "VIDEO"
)

// Call statuses
const (
	CallStatusConnecting = "connecting"
	CallStatusConnected  = "connected"
	CallStatusEnded      = "ended"
)

// MaxInterests caps the interest list on a profile.
const MaxInterests = 5
