package booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownStatus = errors.New("booking: unknown status")

	// ErrStatusConflict reports that another writer moved the booking's
	// status between read and save.
	ErrStatusConflict = errors.New("booking: status changed concurrently")
)

type Status string

const (
	StatusConfirmed  Status = "Confirmed"
	StatusCheckedIn  Status = "Checked-in"
	StatusCheckedOut Status = "Checked-out"
	StatusCancelled  Status = "Cancelled"
)

// transitions is the closed lifecycle: Checked-out and Cancelled are
// terminal states.
var transitions = map[Status][]Status{
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// TransitionError reports a status change the lifecycle does not allow.
type TransitionError struct {
	From Status
	To   Status
}

func (e TransitionError) Error() string {
	return fmt.Sprintf("cannot change booking status from %s to %s", e.From, e.To)
}

// ParseStatus resolves a caller-supplied status string against the closed
// status set, case-insensitively. Arbitrary strings are rejected.
func ParseStatus(raw string) (Status, error) {
	candidate := strings.TrimSpace(raw)
	for _, s := range []Status{StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled} {
		if strings.EqualFold(candidate, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}
