package valueobjects

import "fmt"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return st, nil
}
