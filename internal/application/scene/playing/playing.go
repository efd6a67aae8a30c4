// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"

	"github.com/younwookim/fluxrunner/internal/application/frameio"
	"github.com/younwookim/fluxrunner/internal/application/netcode"
	"github.com/younwookim/fluxrunner/internal/application/replay"
	"github.com/younwookim/fluxrunner/internal/application/scene"
	"github.com/younwookim/fluxrunner/internal/application/state"
	"github.com/younwookim/fluxrunner/internal/application/system"
	"github.com/younwookim/fluxrunner/internal/domain/geom"
	"github.com/younwookim/fluxrunner/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorWall      = color.RGBA{80, 80, 100, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorCore      = color.RGBA{120, 90, 220, 255}
	colorDoor      = color.RGBA{200, 120, 60, 255}
	colorGoal      = color.RGBA{255, 215, 0, 160}
	colorHarvester = color.RGBA{90, 180, 220, 255}
	colorFluxLine  = color.RGBA{255, 255, 255, 255}
	colorFluxBG    = color.RGBA{60, 60, 60, 255}
	colorFluxFG    = color.RGBA{120, 90, 220, 255}
	colorPause     = color.RGBA{0, 0, 0, 128}
	colorComplete  = color.RGBA{0, 60, 0, 180}
)

// Options configures a Playing scene
type Options struct {
	Logger *zap.Logger
	// RecordPath enables input recording; saved on F5, completion and exit
	RecordPath string
	// Replay feeds recorded inputs instead of live ones
	Replay *replay.Replayer
}

// Playing is the main gameplay scene
type Playing struct {
	session  *system.Session
	state    state.GameState
	camera   *system.Camera
	logger   *zap.Logger
	screenW  int
	screenH  int
	perUnit  float32
	last     system.FrameResult
	replayer *replay.Replayer

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene around a freshly started session
func New(cfg *config.GameConfig, session *system.Session, opts Options) *Playing {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	display := cfg.Physics.Display
	p := &Playing{
		session:        session,
		state:          state.StatePlaying,
		logger:         logger,
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		perUnit:        cfg.Physics.Flux.PerUnit,
		replayer:       opts.Replay,
		recordFilename: opts.RecordPath,
	}
	if p.perUnit <= 0 {
		p.perUnit = 1
	}

	lvl := session.Level()
	p.camera = system.NewCamera(geom.Zero(), float32(p.screenW), float32(p.screenH), cfg.Physics.Camera.Lerp)
	p.camera.Snap(session.Player().Position(lvl.Actors), lvl.TileMap)

	if p.replayer != nil {
		p.state = state.StateReplaying
		logger.Info("replaying", zap.String("level", p.replayer.Level()), zap.Int("frames", p.replayer.TotalFrames()))
	} else if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(lvl.Name)
		logger.Info("recording enabled", zap.String("path", opts.RecordPath))
	}

	return p
}

// State returns the scene's current state
func (p *Playing) State() state.GameState {
	return p.state
}

// Session returns the session being played
func (p *Playing) Session() *system.Session {
	return p.session
}

// LastFrame returns the result of the most recent tick
func (p *Playing) LastFrame() system.FrameResult {
	return p.last
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(in system.InputState) (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		if in.Pause {
			p.state = state.StatePaused
			return nil, nil
		}
		if in.SaveReplay {
			p.saveRecording()
		}
		if p.recorder != nil {
			p.recorder.RecordFrame(in)
		}
		return nil, p.step(in)

	case state.StateReplaying:
		if in.Pause {
			p.state = state.StatePaused
			return nil, nil
		}
		next, ok := p.replayer.Next()
		if !ok {
			p.finish()
			return nil, nil
		}
		return nil, p.step(next)

	case state.StatePaused:
		if in.Pause {
			p.state = state.StatePlaying
			if p.replayer != nil {
				p.state = state.StateReplaying
			}
		}

	case state.StateComplete:
		if in.Pause {
			return nil, scene.ErrQuit
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) step(in system.InputState) error {
	res, err := p.session.Advance(in)
	if err != nil {
		return fmt.Errorf("tick %d: %w", p.session.Tick(), err)
	}
	p.last = res

	lvl := p.session.Level()
	target := p.session.Player().Position(lvl.Actors)
	snap := false
	for _, ev := range res.Events {
		switch e := ev.(type) {
		case system.LandedEvent:
			p.logger.Debug("landed", zap.Uint64("tick", p.session.Tick()))
		case system.PickedEvent:
			p.logger.Debug("picked up", zap.Uint32("actor", uint32(e.ActorID)))
		case system.DroppedEvent:
			p.logger.Debug("dropped", zap.Uint32("actor", uint32(e.ActorID)))
		case system.DoorEvent:
			p.logger.Info("door changed", zap.Uint32("door", e.DoorID), zap.Bool("open", e.Open),
				zap.Float32("flux", res.TotalFlux))
		case system.LevelCompletedEvent:
			p.logger.Info("level completed", zap.String("level", e.Level), zap.String("next", e.Next),
				zap.Uint64("tick", p.session.Tick()))
			snap = true
		case system.RespawnedEvent:
			p.logger.Info("respawned", zap.String("level", e.Level))
			snap = true
		}
	}
	if snap {
		p.camera.Snap(target, lvl.TileMap)
	} else {
		p.camera.Follow(target, lvl.TileMap)
	}

	if p.session.Finished() {
		p.finish()
	}
	return nil
}

func (p *Playing) finish() {
	p.state = state.StateComplete
	sum := netcode.Capture(p.session).Checksum()
	p.logger.Info("run finished",
		zap.Uint64("ticks", p.session.Tick()),
		zap.String("checksum", replay.FormatChecksum(sum)))
	p.saveRecording()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	p.recorder.SetChecksum(netcode.Capture(p.session).Checksum())
	if err := p.recorder.Save(filename); err != nil {
		p.logger.Warn("failed to save recording", zap.Error(err))
		return
	}
	p.logger.Info("recording saved", zap.String("path", filename), zap.Int("frames", p.recorder.FrameCount()))
}

// Draw describes the game screen
func (p *Playing) Draw(f *frameio.Frame) {
	f.Background = colorBG
	f.Camera = p.camera.TopLeft()

	p.drawWorld(f)
	p.drawUI(f)

	switch p.state {
	case state.StatePaused:
		f.Overlay(f.ScreenBox(), colorPause)
		f.Text(geom.Vec(float32(p.screenW)/2-50, float32(p.screenH)/2-20), "PAUSED\n\nPress ESC to resume")
	case state.StateComplete:
		f.Overlay(f.ScreenBox(), colorComplete)
		text := fmt.Sprintf("ALL LEVELS CLEAR\n\nTicks: %d\n\nPress ESC to quit", p.session.Tick())
		f.Text(geom.Vec(float32(p.screenW)/2-60, float32(p.screenH)/2-30), text)
	}
}

func (p *Playing) drawWorld(f *frameio.Frame) {
	lvl := p.session.Level()

	for _, t := range lvl.TileMap.Tiles {
		if box := t.Solid.Bound(); f.Visible(box) {
			f.FillRect(box, colorWall)
		}
	}
	if lvl.Goal.Width() > 0 {
		f.FillRect(lvl.Goal, colorGoal)
	}
	for _, c := range lvl.FluxCores {
		f.FillRect(c.Solid.Bound(), colorCore)
	}
	for _, d := range lvl.Doors {
		if d.Open {
			f.StrokeRect(d.Solid.Bound(), colorDoor, 1)
		} else {
			f.FillRect(d.Solid.Bound(), colorDoor)
		}
	}
	for i := range lvl.Harvesters {
		h := &lvl.Harvesters[i]
		if a, ok := lvl.Actors.Actor(h.ActorID); ok {
			f.StrokeRect(a.Bound(), colorHarvester, 1)
		}
		if start, end, ok := h.FluxLine(lvl.Actors); ok {
			f.Line(start, end, colorFluxLine, 2)
		}
	}

	if body, ok := lvl.Actors.Actor(p.session.Player().ActorID); ok {
		f.FillRect(body.Bound(), colorPlayer)
	}
}

func (p *Playing) drawUI(f *frameio.Frame) {
	// Flux bar
	const barX, barW, barH = 10, 100, 10
	barY := float32(p.screenH - 20)
	f.Overlay(geom.BoundingBox{Left: barX, Top: barY, Right: barX + barW, Bottom: barY + barH}, colorFluxBG)

	ratio := float32(0)
	if p.last.RequiredFlux > 0 {
		ratio = p.last.TotalFlux / p.last.RequiredFlux
	}
	ratio = max(0, min(ratio, 1))
	f.Overlay(geom.BoundingBox{Left: barX, Top: barY, Right: barX + barW*ratio, Bottom: barY + barH}, colorFluxFG)

	flux := fmt.Sprintf("Flux: %.1f / %.1f", p.last.TotalFlux/p.perUnit, p.last.RequiredFlux/p.perUnit)
	f.Text(geom.Vec(barX+barW+10, barY-2), flux)
	f.Text(geom.Vec(10, float32(p.screenH-35)), "Level: "+p.session.Level().Name)

	help := "A/D: Move | W/Space: Jump | E: Pick | Q/R: Rotate | F5: Save | ESC: Pause"
	if p.state == state.StateReplaying {
		help = fmt.Sprintf("REPLAY %d/%d | ESC: Pause", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	f.Text(geom.Zero(), help)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Debug("entering level", zap.String("level", p.session.Level().Name))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.state != state.StateComplete {
		p.saveRecording()
	}
}
