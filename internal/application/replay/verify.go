package replay

import (
	"errors"
	"fmt"

	"github.com/younwookim/fluxrunner/internal/application/netcode"
	"github.com/younwookim/fluxrunner/internal/application/system"
)

var (
	ErrNoFrames         = errors.New("replay has no frames")
	ErrNondeterministic = errors.New("replay diverged between runs")
	ErrChecksumMismatch = errors.New("replay checksum mismatch")
)

// SessionFactory builds a fresh session starting on level
type SessionFactory func(level string) (*system.Session, error)

// Run plays every frame into a new session and returns it
func Run(data ReplayData, newSession SessionFactory) (*system.Session, error) {
	s, err := newSession(data.Level)
	if err != nil {
		return nil, err
	}

	r := NewReplayer(data)
	for {
		in, ok := r.Next()
		if !ok {
			return s, nil
		}
		if _, err := s.Advance(in); err != nil {
			return nil, fmt.Errorf("frame %d: %w", r.CurrentFrame()-1, err)
		}
	}
}

// Verify plays the replay twice and checks both runs end in the same state,
// and that the state matches the recorded checksum when there is one.
// It returns the final checksum.
func Verify(data ReplayData, newSession SessionFactory) (uint64, error) {
	if len(data.Frames) == 0 {
		return 0, ErrNoFrames
	}

	var sums [2]uint64
	for i := range sums {
		s, err := Run(data, newSession)
		if err != nil {
			return 0, err
		}
		sums[i] = netcode.Capture(s).Checksum()
	}

	if sums[0] != sums[1] {
		return 0, fmt.Errorf("%w: %016x != %016x", ErrNondeterministic, sums[0], sums[1])
	}
	if data.Checksum != "" && data.Checksum != FormatChecksum(sums[0]) {
		return sums[0], fmt.Errorf("%w: recorded %s, got %s", ErrChecksumMismatch, data.Checksum, FormatChecksum(sums[0]))
	}
	return sums[0], nil
}
