package pipeline

import (
	"errors"
	"fmt"
)

// ChangeState is the lifecycle position of an optimistic local mutation.
type ChangeState int

const (
	ChangeIdle ChangeState = iota
	ChangePending
	ChangeCommitted
	ChangeRolledBack
)

func (s ChangeState) String() string {
	switch s {
	case ChangeIdle:
		return "idle"
	case ChangePending:
		return "pending"
	case ChangeCommitted:
		return "committed"
	case ChangeRolledBack:
		return "rolled_back"
	}
	return fmt.Sprintf("ChangeState(%d)", int(s))
}

var ErrInvalidTransition = errors.New("invalid change transition")

// Change tracks one value applied locally before the server has confirmed it.
// Idle -> Pending -> Committed | RolledBack. Committed and RolledBack are final.
type Change[T any] struct {
	state    ChangeState
	pending  T
	previous T
}

func (c *Change[T]) State() ChangeState { return c.state }

// Begin records previous and moves to Pending with the new value.
func (c *Change[T]) Begin(previous, pending T) error {
	if c.state != ChangeIdle {
		return fmt.Errorf("%w: begin from %s", ErrInvalidTransition, c.state)
	}
	c.previous = previous
	c.pending = pending
	c.state = ChangePending
	return nil
}

// Pending returns the value applied locally.
func (c *Change[T]) Pending() T { return c.pending }

// Commit marks the server as having accepted the pending value.
func (c *Change[T]) Commit() error {
	if c.state != ChangePending {
		return fmt.Errorf("%w: commit from %s", ErrInvalidTransition, c.state)
	}
	c.state = ChangeCommitted
	return nil
}

// Rollback marks the pending value rejected and returns the previous value verbatim.
func (c *Change[T]) Rollback() (T, error) {
	if c.state != ChangePending {
		var zero T
		return zero, fmt.Errorf("%w: rollback from %s", ErrInvalidTransition, c.state)
	}
	c.state = ChangeRolledBack
	return c.previous, nil
}
