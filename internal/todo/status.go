package todo

import (
	"errors"
	"fmt"
)

// Status is the locally tracked workflow state of an issue.
type Status string

const (
	StatusBacklog    Status = "backlog"
	StatusInProgress Status = "in-progress"
	StatusBlocked    Status = "blocked"
	StatusReview     Status = "review"
)

// GroupOrder is the fixed display order across status groups.
var GroupOrder = []Status{StatusInProgress, StatusBlocked, StatusReview, StatusBacklog}

// ErrUnknownStatus means a status string is outside the closed set.
var ErrUnknownStatus = errors.New("unknown status")

// ParseStatus validates a status string at the boundary. Unknown
// values are rejected, never stored.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusBacklog, StatusInProgress, StatusBlocked, StatusReview:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q (want backlog, in-progress, blocked, or review)", ErrUnknownStatus, s)
}
