package model

// Response is a decoded homework_statuses payload that passed shape checks.
type Response struct {
	Homeworks []interface{}
	// CurrentDate is nil when the server value is not an integer.
	CurrentDate *int64
}

// Homework is a single submission record as sent by the API.
// Fields beyond homework_name and status are kept but ignored.
type Homework map[string]interface{}

// Notification is the queued form of an outgoing chat message.
type Notification struct {
	// ChatID is a numeric chat id or an @channelusername.
	ChatID string
	Text   string
}
