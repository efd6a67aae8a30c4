package system

import (
	"github.com/younwookim/fluxrunner/internal/domain/entity"
)

// FrameResult is what one simulated tick produced
type FrameResult struct {
	TotalFlux    float32
	RequiredFlux float32
	Events       []Event
}

// SimulateFrame advances one tick. It reads no clock and no randomness, so
// the same state and input always give the same result.
//
// Order: player input, harvester gravity, solids, pick/drop, player move,
// harvester moves, flux, gate door.
func SimulateFrame(player *entity.Player, level *entity.Level, in InputState, cfg Tuning) FrameResult {
	var res FrameResult
	actors := level.Actors
	controls := in.Controls()
	wasLanded := player.Status == entity.StatusLanded
	wasCarrying, carried := player.Carrying, player.Carried

	player.HandleInput(controls)
	if d := player.RotateDelta(controls); d != 0 {
		if h, ok := level.HarvesterByActor(player.Carried); ok {
			h.Rotate(d)
		}
	}

	for i := range level.Harvesters {
		level.Harvesters[i].ApplyGravity(actors, cfg.Harvester)
	}

	solids := level.Solids()

	player.PickItem(actors, level.HarvesterIDs())
	player.ActorMove(solids, actors)

	for i := range level.Harvesters {
		level.Harvesters[i].ActorMove(solids, actors)
	}

	for i := range level.Harvesters {
		res.TotalFlux += level.Harvesters[i].CalculateFlux(actors, level.FluxCores, cfg.Harvester.Segments)
	}

	res.RequiredFlux = cfg.FluxThreshold
	if level.RequiredFlux > 0 {
		res.RequiredFlux = level.RequiredFlux
	}
	if door, ok := level.Door(cfg.GateDoor); ok {
		open := res.TotalFlux >= res.RequiredFlux
		if open != door.Open {
			door.Open = open
			res.Events = append(res.Events, DoorEvent{DoorID: door.ID, Open: open})
		}
	}

	if !wasLanded && player.Status == entity.StatusLanded {
		res.Events = append(res.Events, LandedEvent{})
	}
	switch {
	case !wasCarrying && player.Carrying:
		res.Events = append(res.Events, PickedEvent{ActorID: player.Carried})
	case wasCarrying && !player.Carrying:
		res.Events = append(res.Events, DroppedEvent{ActorID: carried})
	}

	return res
}
