package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sketchbook"
)

// ebitenBlend returns the ebiten.Blend value corresponding to a BlendMode.
func ebitenBlend(b sketchbook.BlendMode) ebiten.Blend {
	switch b {
	case sketchbook.BlendNormal:
		return ebiten.BlendSourceOver
	case sketchbook.BlendAdd:
		return ebiten.BlendLighter
	case sketchbook.BlendLightest:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
			BlendOperationRGB:           ebiten.BlendOperationMax,
			BlendOperationAlpha:         ebiten.BlendOperationMax,
		}
	case sketchbook.BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}
