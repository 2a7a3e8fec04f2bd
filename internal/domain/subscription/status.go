package subscription

// Status is the lifecycle state of a subscription. Cancellation is
// terminal: a cancelled subscription never transitions back.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

var ValidStatuses = map[Status]bool{
	StatusActive:    true,
	StatusCancelled: true,
}
