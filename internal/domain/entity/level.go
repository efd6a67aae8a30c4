package entity

import (
	"github.com/younwookim/fluxrunner/internal/domain/geom"
	"github.com/younwookim/fluxrunner/internal/domain/physics"
)

// Level is one playable map with every actor it owns
type Level struct {
	Name        string
	Next        string
	TileMap     TileMap
	FluxCores   []FluxCore
	Doors       []Door
	Harvesters  []Harvester
	Actors      *physics.ActorManager
	PlayerStart geom.Vector2
	Goal        geom.BoundingBox
	KillMargin  float32 // distance below the map bottom that kills

	// RequiredFlux overrides the default gate threshold when positive
	RequiredFlux float32
}

// NewLevel creates an empty level with its own actor manager
func NewLevel(name string, tiles TileMap) *Level {
	return &Level{
		Name:    name,
		TileMap: tiles,
		Actors:  physics.NewActorManager(),
	}
}

// Solids returns the blocking geometry for this tick: tiles, then flux
// cores, then closed doors.
func (l *Level) Solids() []physics.Solid {
	solids := make([]physics.Solid, 0, len(l.TileMap.Tiles)+len(l.FluxCores)+len(l.Doors))
	for _, t := range l.TileMap.Tiles {
		solids = append(solids, t.Solid)
	}
	for _, c := range l.FluxCores {
		solids = append(solids, c.Solid)
	}
	for _, d := range l.Doors {
		if !d.Open {
			solids = append(solids, d.Solid)
		}
	}
	return solids
}

// HarvesterIDs returns the actor ids of every harvester, in level order
func (l *Level) HarvesterIDs() []physics.ActorID {
	ids := make([]physics.ActorID, len(l.Harvesters))
	for i, h := range l.Harvesters {
		ids[i] = h.ActorID
	}
	return ids
}

// HarvesterByActor returns the harvester owning the given actor
func (l *Level) HarvesterByActor(id physics.ActorID) (*Harvester, bool) {
	for i := range l.Harvesters {
		if l.Harvesters[i].ActorID == id {
			return &l.Harvesters[i], true
		}
	}
	return nil, false
}

// SpawnHarvester adds a harvester to the level
func (l *Level) SpawnHarvester(position geom.Vector2, rotation float32, t HarvesterTuning) *Harvester {
	l.Harvesters = append(l.Harvesters, NewHarvester(l.Actors, position, rotation, t))
	return &l.Harvesters[len(l.Harvesters)-1]
}

// Door returns the door with the given id
func (l *Level) Door(id uint32) (*Door, bool) {
	for i := range l.Doors {
		if l.Doors[i].ID == id {
			return &l.Doors[i], true
		}
	}
	return nil, false
}

// KillY is the y past which a body counts as fallen out of the level
func (l *Level) KillY() float32 {
	return l.TileMap.Height() + l.KillMargin
}

// ReachedGoal reports whether box overlaps the goal area
func (l *Level) ReachedGoal(box geom.BoundingBox) bool {
	return l.Goal.Width() > 0 && l.Goal.Intersects(box)
}

// DoorStates returns every door's open flag, in level order
func (l *Level) DoorStates() []DoorState {
	states := make([]DoorState, len(l.Doors))
	for i, d := range l.Doors {
		states[i] = DoorState{ID: d.ID, Open: d.Open}
	}
	return states
}

// RestoreDoors applies door states by id; unknown ids are ignored
func (l *Level) RestoreDoors(states []DoorState) {
	for _, s := range states {
		if d, ok := l.Door(s.ID); ok {
			d.Open = s.Open
		}
	}
}

// HarvesterStates returns copies of every harvester's state, in level order
func (l *Level) HarvesterStates() []HarvesterState {
	states := make([]HarvesterState, len(l.Harvesters))
	for i, h := range l.Harvesters {
		states[i] = h.HarvesterState
	}
	return states
}

// RestoreHarvesters replaces the harvester list
func (l *Level) RestoreHarvesters(states []HarvesterState) {
	l.Harvesters = make([]Harvester, len(states))
	for i, s := range states {
		l.Harvesters[i] = Harvester{s}
	}
}
