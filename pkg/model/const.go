package model

const (
	StatusApproved  = "approved"
	StatusReviewing = "reviewing"
	StatusRejected  = "rejected"
)

const (
	StatusChangedMsg = `Status changed for submission "%s". %s`
	FailureMsg       = "Program failure: %v"
)

// Verdicts maps a review status to the text sent to the chat.
var Verdicts = map[string]string{
	StatusApproved:  "reviewed, reviewer liked it",
	StatusReviewing: "taken up by reviewer",
	StatusRejected:  "reviewed, reviewer has remarks",
}
