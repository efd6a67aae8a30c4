package replay

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/younwookim/fluxrunner/internal/application/system"
)

// FormatVersion is written into every replay file
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	J   bool `json:"j,omitempty"`   // Jump
	JP  bool `json:"jp,omitempty"`  // JumpPressed
	P   bool `json:"p,omitempty"`   // Pick
	CW  bool `json:"cw,omitempty"`  // RotateCW
	CCW bool `json:"ccw,omitempty"` // RotateCCW
}

// NewFrameInput captures the simulated part of in as frame f
func NewFrameInput(f int, in system.InputState) FrameInput {
	return FrameInput{
		F:   f,
		L:   in.Left,
		R:   in.Right,
		J:   in.Jump,
		JP:  in.JumpPressed,
		P:   in.Pick,
		CW:  in.RotateCW,
		CCW: in.RotateCCW,
	}
}

// Input converts the frame back to an InputState
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:        fi.L,
		Right:       fi.R,
		Jump:        fi.J,
		JumpPressed: fi.JP,
		Pick:        fi.P,
		RotateCW:    fi.CW,
		RotateCCW:   fi.CCW,
	}
}

// ReplayData contains all data needed to replay a game session.
// Checksum is the hex state checksum after the last frame; empty when unknown.
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Checksum  string       `json:"checksum,omitempty"`
	Frames    []FrameInput `json:"frames"`
}

// Decode reads replay data as JSON
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Level == "" {
		return nil, fmt.Errorf("failed to decode replay: missing level")
	}
	return &data, nil
}

// FormatChecksum renders a state checksum the way replay files store it
func FormatChecksum(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
