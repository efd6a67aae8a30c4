package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/fluxrunner/internal/domain/entity"
	"github.com/younwookim/fluxrunner/internal/domain/geom"
	"github.com/younwookim/fluxrunner/internal/infrastructure/config"
)

func TestNewSession_UnknownLevel(t *testing.T) {
	_, err := newTestSession("nowhere")
	assert.ErrorIs(t, err, config.ErrUnknownLevel)
}

func TestSession_LandsOnFirstTick(t *testing.T) {
	s, err := newTestSession("first")
	require.NoError(t, err)

	res, err := s.Advance(InputState{})
	require.NoError(t, err)

	assert.Contains(t, res.Events, Event(LandedEvent{}))
	assert.Equal(t, entity.StatusLanded, s.Player().Status)
	assert.Equal(t, geom.Vec(100, 97), s.Player().Position(s.Level().Actors))
	assert.Equal(t, uint64(1), s.Tick())
}

func TestSession_GoalLoadsNextLevel(t *testing.T) {
	s, err := newTestSession("first")
	require.NoError(t, err)

	var completed *LevelCompletedEvent
	for i := 0; i < 30 && completed == nil; i++ {
		res, err := s.Advance(InputState{Right: true})
		require.NoError(t, err)
		for _, ev := range res.Events {
			if c, ok := ev.(LevelCompletedEvent); ok {
				completed = &c
			}
		}
	}

	require.NotNil(t, completed, "goal never reached")
	assert.Equal(t, LevelCompletedEvent{Level: "first", Next: "second"}, *completed)
	assert.Equal(t, "second", s.Level().Name)
	assert.Equal(t, geom.Vec(100, 90), s.Player().Position(s.Level().Actors), "respawned at start")
	assert.False(t, s.Finished())
}

func TestSession_LastGoalFinishes(t *testing.T) {
	s, err := newTestSession("second")
	require.NoError(t, err)

	for i := 0; i < 30 && !s.Finished(); i++ {
		_, err := s.Advance(InputState{Right: true})
		require.NoError(t, err)
	}
	require.True(t, s.Finished())

	before := s.Player().Position(s.Level().Actors)
	tick := s.Tick()
	res, err := s.Advance(InputState{Left: true})
	require.NoError(t, err)
	assert.Empty(t, res.Events)
	assert.Equal(t, tick+1, s.Tick())
	assert.Equal(t, before, s.Player().Position(s.Level().Actors), "finished sessions do not simulate")
}

func TestSession_KillPlaneReloads(t *testing.T) {
	s, err := newTestSession("pit")
	require.NoError(t, err)

	var respawned bool
	for i := 0; i < 10 && !respawned; i++ {
		res, err := s.Advance(InputState{})
		require.NoError(t, err)
		respawned = assert.ObjectsAreEqual(res.Events, []Event{RespawnedEvent{Level: "pit"}})
	}

	require.True(t, respawned)
	assert.Equal(t, uint64(4), s.Tick(), "25 units per tick from y=50 passes y=146 on tick 4")
	assert.Equal(t, geom.Vec(100, 50), s.Player().Position(s.Level().Actors))
}

func TestSession_Restart(t *testing.T) {
	s, err := newTestSession("first")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := s.Advance(InputState{Right: true})
		require.NoError(t, err)
	}
	require.NoError(t, s.Restart())

	assert.Equal(t, geom.Vec(100, 90), s.Player().Position(s.Level().Actors))
	assert.Equal(t, uint64(5), s.Tick(), "restart keeps the tick counter")
}

func TestSession_Deterministic(t *testing.T) {
	inputs := []InputState{
		{}, {Right: true}, {Right: true, JumpPressed: true, Jump: true}, {Right: true, Jump: true},
		{Jump: true}, {}, {Left: true}, {Left: true}, {Pick: true}, {},
	}

	run := func() *Session {
		s, err := newTestSession("first")
		require.NoError(t, err)
		for i := 0; i < 6; i++ {
			for _, in := range inputs {
				_, err := s.Advance(in)
				require.NoError(t, err)
			}
		}
		return s
	}

	a, b := run(), run()
	assert.Equal(t, a.Player().PlayerState, b.Player().PlayerState)
	assert.Equal(t, a.Level().Actors.Entries(), b.Level().Actors.Entries())
	assert.Equal(t, a.Level().Name, b.Level().Name)
}

func TestSession_SetTickAndFinished(t *testing.T) {
	s, err := newTestSession("first")
	require.NoError(t, err)

	s.SetTick(41)
	s.SetFinished(true)
	assert.Equal(t, uint64(41), s.Tick())
	assert.True(t, s.Finished())
	assert.Equal(t, DefaultTuning(), s.Tuning())

	require.NoError(t, s.LoadLevel("second"))
	assert.False(t, s.Finished(), "loading a level resumes play")
}

func TestNewSessionFactory(t *testing.T) {
	newSession := NewSessionFactory(NewLevelManager(testLevels()), DefaultTuning())

	a, err := newSession("first")
	require.NoError(t, err)
	b, err := newSession("second")
	require.NoError(t, err)

	assert.Equal(t, "first", a.Level().Name)
	assert.Equal(t, "second", b.Level().Name)
	assert.NotSame(t, a.Level(), b.Level())

	_, err = newSession("nowhere")
	assert.ErrorIs(t, err, config.ErrUnknownLevel)
}
