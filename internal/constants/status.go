package constants

// Status is an opaque ordered enumeration shared by tasks and projects.
// The ledger does not enforce a transition table; any status may follow
// any other.
type Status int

const (
	StatusOpen Status = iota
	StatusInProgress
	StatusOnReview
	StatusClosed
	StatusCancelled
)
