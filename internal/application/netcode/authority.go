package netcode

import (
	"errors"
	"fmt"

	"github.com/younwookim/fluxrunner/internal/application/system"
)

// MaxGap is how many ticks ahead of the session an input may be
const MaxGap = 5 * 60

// ErrTickGap is returned for an input too far ahead of the session
var ErrTickGap = errors.New("input tick too far ahead")

// Authority is the server side of one session. Inputs are applied in tick
// order; a gap is filled with idle ticks and a stale tick is ignored.
type Authority struct {
	session *system.Session
}

// NewAuthority wraps a server-side session
func NewAuthority(s *system.Session) *Authority {
	return &Authority{session: s}
}

// Session returns the authoritative session
func (a *Authority) Session() *system.Session {
	return a.session
}

// Apply simulates up to and including msg.Tick and returns the resulting
// state. The second result is false when the message was stale. An input
// more than MaxGap ticks ahead is rejected with ErrTickGap and nothing is simulated.
func (a *Authority) Apply(msg InputMessage) (StateMessage, bool, error) {
	if msg.Tick <= a.session.Tick() {
		return StateMessage{}, false, nil
	}
	if gap := msg.Tick - a.session.Tick(); gap > MaxGap {
		return StateMessage{}, false, fmt.Errorf("%w: tick %d is %d ahead of %d", ErrTickGap, msg.Tick, gap, a.session.Tick())
	}

	for a.session.Tick()+1 < msg.Tick {
		if _, err := a.session.Advance(system.InputState{}); err != nil {
			return StateMessage{}, false, fmt.Errorf("idle tick %d: %w", a.session.Tick(), err)
		}
	}
	if _, err := a.session.Advance(UnpackInput(msg.Buttons)); err != nil {
		return StateMessage{}, false, fmt.Errorf("tick %d: %w", msg.Tick, err)
	}

	return StateMessage{AckTick: a.session.Tick(), Snapshot: Capture(a.session)}, true, nil
}

// State returns the current state without advancing
func (a *Authority) State() StateMessage {
	return StateMessage{AckTick: a.session.Tick(), Snapshot: Capture(a.session)}
}
