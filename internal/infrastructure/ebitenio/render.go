package ebitenio

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/fluxrunner/internal/application/frameio"
)

// Render rasterizes f onto screen
func Render(screen *ebiten.Image, f *frameio.Frame) {
	screen.Fill(f.Background)

	for _, cmd := range f.Commands {
		switch cmd.Kind {
		case frameio.KindFillRect:
			r := f.ScreenRect(cmd)
			vector.DrawFilledRect(screen, r.Left, r.Top, r.Width(), r.Height(), cmd.Color, false)
		case frameio.KindStrokeRect:
			r := f.ScreenRect(cmd)
			vector.StrokeRect(screen, r.Left, r.Top, r.Width(), r.Height(), cmd.Width, cmd.Color, false)
		case frameio.KindLine:
			from, to := cmd.From, cmd.To
			if !cmd.Screen {
				from, to = f.ToScreen(from), f.ToScreen(to)
			}
			vector.StrokeLine(screen, from.X, from.Y, to.X, to.Y, cmd.Width, cmd.Color, true)
		case frameio.KindText:
			ebitenutil.DebugPrintAt(screen, cmd.Text, int(cmd.From.X), int(cmd.From.Y))
		}
	}
}
