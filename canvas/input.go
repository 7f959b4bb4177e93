package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/sketchbook"
)

// pointerPoller turns ebiten's polled mouse and touch state into one
// sketchbook.Input per tick.
type pointerPoller struct {
	last     sketchbook.Vec2
	hasLast  bool
	touchBuf []ebiten.TouchID
}

// poll samples input for the coming tick. A click is a left-button or touch
// release, matching a browser click.
func (p *pointerPoller) poll() sketchbook.Input {
	mx, my := ebiten.CursorPosition()
	pos := sketchbook.Vec2{X: float64(mx), Y: float64(my)}
	clicked := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	p.touchBuf = inpututil.AppendJustReleasedTouchIDs(p.touchBuf[:0])
	for _, id := range p.touchBuf {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		pos = sketchbook.Vec2{X: float64(tx), Y: float64(ty)}
		clicked = true
	}

	moved := p.hasLast && pos != p.last
	p.last = pos
	p.hasLast = true

	return sketchbook.Input{Pointer: pos, Moved: moved, Clicked: clicked}
}
