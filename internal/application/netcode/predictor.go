package netcode

import (
	"github.com/younwookim/fluxrunner/internal/application/system"
)

// Predictor runs the client's session ahead of the server. Every local
// tick is kept until the server acknowledges it; a state that disagrees
// with the prediction rewinds the session and replays the pending ticks.
type Predictor struct {
	session   *system.Session
	pending   []InputMessage
	predicted map[uint64]uint64 // tick -> checksum
}

// NewPredictor wraps a client-side session
func NewPredictor(s *system.Session) *Predictor {
	return &Predictor{
		session:   s,
		predicted: make(map[uint64]uint64),
	}
}

// Session returns the predicted session
func (p *Predictor) Session() *system.Session {
	return p.session
}

// Pending returns the number of unacknowledged ticks
func (p *Predictor) Pending() int {
	return len(p.pending)
}

// Step simulates one local tick and returns the message to send
func (p *Predictor) Step(in system.InputState) (InputMessage, system.FrameResult, error) {
	res, err := p.session.Advance(in)
	if err != nil {
		return InputMessage{}, res, err
	}

	msg := InputMessage{Tick: p.session.Tick(), Buttons: PackInput(in)}
	p.pending = append(p.pending, msg)
	p.predicted[msg.Tick] = Capture(p.session).Checksum()
	return msg, res, nil
}

// Reconcile applies an authoritative state. It reports whether the
// session had to be rewound.
func (p *Predictor) Reconcile(st StateMessage) (bool, error) {
	keep := p.pending[:0]
	for _, m := range p.pending {
		if m.Tick > st.AckTick {
			keep = append(keep, m)
		}
	}
	p.pending = keep

	want, ok := p.predicted[st.AckTick]
	for tick := range p.predicted {
		if tick <= st.AckTick {
			delete(p.predicted, tick)
		}
	}
	if ok && want == st.Snapshot.Checksum() {
		return false, nil
	}

	if err := Restore(p.session, st.Snapshot); err != nil {
		return false, err
	}
	for _, m := range p.pending {
		if _, err := p.session.Advance(UnpackInput(m.Buttons)); err != nil {
			return true, err
		}
		p.predicted[p.session.Tick()] = Capture(p.session).Checksum()
	}
	return true, nil
}
