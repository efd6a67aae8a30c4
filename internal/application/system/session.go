package system

import (
	"github.com/younwookim/fluxrunner/internal/domain/entity"
)

// Session is one player's run through the level sequence. The game scene,
// replay verification, the predictor and the server all drive a Session.
type Session struct {
	levels   *LevelManager
	tuning   Tuning
	player   *entity.Player
	level    *entity.Level
	tick     uint64
	finished bool
}

// NewSession starts a session on the named level
func NewSession(levels *LevelManager, tuning Tuning, start string) (*Session, error) {
	s := &Session{
		levels: levels,
		tuning: tuning,
	}
	if err := s.LoadLevel(start); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadLevel replaces the current level with a fresh instance of name and
// respawns the player at its start.
func (s *Session) LoadLevel(name string) error {
	lvl, err := s.levels.Build(name, s.tuning)
	if err != nil {
		return err
	}

	player := entity.NewPlayer(lvl.Actors, lvl.PlayerStart, s.tuning.Player)
	if body, ok := lvl.Actors.ActorMut(player.ActorID); ok {
		body.YStop = s.tuning.YStop
	}

	s.level = lvl
	s.player = player
	s.finished = false
	return nil
}

// Advance simulates one tick and applies level progression: reaching the
// goal loads the next level, falling past the kill plane reloads this one.
// After the last level is completed the session is finished and Advance
// only counts ticks.
func (s *Session) Advance(in InputState) (FrameResult, error) {
	s.tick++
	if s.finished {
		return FrameResult{}, nil
	}

	res := SimulateFrame(s.player, s.level, in, s.tuning)

	body, ok := s.level.Actors.Actor(s.player.ActorID)
	switch {
	case ok && s.level.ReachedGoal(body.Bound()):
		res.Events = append(res.Events, LevelCompletedEvent{Level: s.level.Name, Next: s.level.Next})
		if s.level.Next == "" {
			s.finished = true
			return res, nil
		}
		if err := s.LoadLevel(s.level.Next); err != nil {
			return res, err
		}
	case !ok || body.Position.Y > s.level.KillY():
		name := s.level.Name
		if err := s.LoadLevel(name); err != nil {
			return res, err
		}
		res.Events = append(res.Events, RespawnedEvent{Level: name})
	}

	return res, nil
}

// Restart reloads the current level
func (s *Session) Restart() error {
	return s.LoadLevel(s.level.Name)
}

// Player returns the session's player
func (s *Session) Player() *entity.Player {
	return s.player
}

// Level returns the level being played
func (s *Session) Level() *entity.Level {
	return s.level
}

// Tuning returns the constants the session simulates with
func (s *Session) Tuning() Tuning {
	return s.tuning
}

// Tick returns the number of ticks advanced so far
func (s *Session) Tick() uint64 {
	return s.tick
}

// SetTick overrides the tick counter, used when restoring a snapshot
func (s *Session) SetTick(tick uint64) {
	s.tick = tick
}

// Finished reports whether the last level has been completed
func (s *Session) Finished() bool {
	return s.finished
}

// SetFinished overrides the finished flag, used when restoring a snapshot
func (s *Session) SetFinished(finished bool) {
	s.finished = finished
}

// NewSessionFactory returns a constructor for sessions sharing levels and t
func NewSessionFactory(levels *LevelManager, t Tuning) func(level string) (*Session, error) {
	return func(level string) (*Session, error) {
		return NewSession(levels, t, level)
	}
}
