package physics

import "github.com/younwookim/fluxrunner/internal/domain/geom"

// YStopPolicy selects what MoveY does after a collision halts the step loop
type YStopPolicy uint8

const (
	// YStopBreak leaves the step loop and runs the post-loop tail: contact
	// flags are recorded and the callback is invoked once with true.
	YStopBreak YStopPolicy = iota
	// YStopReturn invokes the callback with true from inside the loop and
	// returns immediately, skipping the post-loop tail.
	YStopReturn
)

// String implements fmt.Stringer
func (p YStopPolicy) String() string {
	switch p {
	case YStopBreak:
		return "break"
	case YStopReturn:
		return "return"
	default:
		return "unknown"
	}
}

// Contacts records which sides touched a solid on the last move of each axis.
// Under YStopReturn a blocked vertical move leaves Up and Down cleared.
type Contacts struct {
	Left  bool `msgpack:"l"`
	Right bool `msgpack:"r"`
	Up    bool `msgpack:"u"`
	Down  bool `msgpack:"d"`
}

// Actor is a dynamic rectangular body moved in whole-unit steps.
// Remainder holds the requested distance not yet applied on each axis.
type Actor struct {
	Position  geom.Vector2 `msgpack:"p"`
	Remainder geom.Vector2 `msgpack:"rem"`
	Width     float32      `msgpack:"w"`
	Height    float32      `msgpack:"h"`

	// IsChild marks an actor carried by another entity; it does not move on its own
	IsChild bool `msgpack:"child"`

	YStop    YStopPolicy `msgpack:"ystop"`
	Contacts Contacts    `msgpack:"c"`
}

// NewActor creates an actor centered at position
func NewActor(position geom.Vector2, width, height float32) Actor {
	return Actor{
		Position: position,
		Width:    width,
		Height:   height,
	}
}

// Bound returns the actor's bounding box
func (a Actor) Bound() geom.BoundingBox {
	return geom.CenteredBox(a.Position, a.Width, a.Height)
}

// MoveX moves the actor horizontally by amount, one unit at a time.
// On the first blocked step onCollide is invoked and the rest of the move
// is abandoned. onCollide may be nil.
func (a *Actor) MoveX(solids []Solid, amount float32, onCollide func()) {
	if a.IsChild {
		return
	}

	steps := takeSteps(&a.Remainder.X, amount)
	if steps == 0 {
		return
	}

	a.Contacts.Left = false
	a.Contacts.Right = false

	step := sign(steps)
	probe := geom.Vec(float32(step), 0)
	for steps != 0 {
		if CollideAt(solids, a.Bound().Translate(probe)) {
			if step > 0 {
				a.Contacts.Right = true
			} else {
				a.Contacts.Left = true
			}
			if onCollide != nil {
				onCollide()
			}
			return
		}
		a.Position.X += float32(step)
		steps -= step
	}
}

// MoveY moves the actor vertically by amount, one unit at a time.
// When at least one whole step was requested, onCollide is invoked exactly
// once: true if a solid halted the move, false if the full distance was
// applied. A collision on step N leaves the actor N-1 units further along.
// What happens between the halt and the callback depends on YStop.
func (a *Actor) MoveY(solids []Solid, amount float32, onCollide func(collided bool)) {
	if a.IsChild {
		return
	}

	steps := takeSteps(&a.Remainder.Y, amount)
	if steps == 0 {
		return
	}

	a.Contacts.Up = false
	a.Contacts.Down = false

	step := sign(steps)
	probe := geom.Vec(0, float32(step))
	collided := false
	for steps != 0 {
		if CollideAt(solids, a.Bound().Translate(probe)) {
			if a.YStop == YStopReturn {
				if onCollide != nil {
					onCollide(true)
				}
				return
			}
			collided = true
			break
		}
		a.Position.Y += float32(step)
		steps -= step
	}

	a.Contacts.Up = collided && step < 0
	a.Contacts.Down = collided && step > 0
	if onCollide != nil {
		onCollide(collided)
	}
}

// takeSteps folds amount into the axis remainder and removes the whole part,
// which is returned as the number of unit steps to attempt.
func takeSteps(rem *float32, amount float32) int32 {
	*rem += amount
	steps := int32(*rem)
	*rem -= float32(steps)
	return steps
}

func sign(x int32) int32 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
