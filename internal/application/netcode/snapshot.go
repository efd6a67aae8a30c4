package netcode

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/younwookim/fluxrunner/internal/application/system"
	"github.com/younwookim/fluxrunner/internal/domain/entity"
	"github.com/younwookim/fluxrunner/internal/domain/physics"
)

// Snapshot is the complete mutable state of a Session at one tick.
// Static level geometry is not included; it is rebuilt from the level name.
type Snapshot struct {
	Tick        uint64                  `msgpack:"tick"`
	Level       string                  `msgpack:"level"`
	Finished    bool                    `msgpack:"done,omitempty"`
	Player      entity.PlayerState      `msgpack:"player"`
	NextActorID physics.ActorID         `msgpack:"next"`
	Actors      []physics.ActorEntry    `msgpack:"actors"`
	Harvesters  []entity.HarvesterState `msgpack:"harvesters"`
	Doors       []entity.DoorState      `msgpack:"doors"`
}

// Capture copies the session's state
func Capture(s *system.Session) Snapshot {
	lvl := s.Level()
	return Snapshot{
		Tick:        s.Tick(),
		Level:       lvl.Name,
		Finished:    s.Finished(),
		Player:      s.Player().PlayerState,
		NextActorID: lvl.Actors.NextID(),
		Actors:      lvl.Actors.Entries(),
		Harvesters:  lvl.HarvesterStates(),
		Doors:       lvl.DoorStates(),
	}
}

// Restore rewinds s to snap. The level is rebuilt first when the snapshot
// was taken on a different one.
func Restore(s *system.Session, snap Snapshot) error {
	if s.Level().Name != snap.Level {
		if err := s.LoadLevel(snap.Level); err != nil {
			return fmt.Errorf("restore level %q: %w", snap.Level, err)
		}
	}

	lvl := s.Level()
	lvl.Actors.Restore(snap.NextActorID, snap.Actors)
	lvl.RestoreHarvesters(snap.Harvesters)
	lvl.RestoreDoors(snap.Doors)
	s.Player().PlayerState = snap.Player
	s.SetTick(snap.Tick)
	s.SetFinished(snap.Finished)
	return nil
}

// Encode serializes the snapshot with msgpack
func (snap Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a msgpack-encoded snapshot
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// Checksum hashes the encoded snapshot. Two sessions with equal checksums
// at the same tick are in the same state.
func (snap Snapshot) Checksum() uint64 {
	data, err := snap.Encode()
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}
