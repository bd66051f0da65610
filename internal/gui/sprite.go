package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// createSprites pre-renders one disc texture per body. Sprite size is
// a pure function of diameter, so a resize only needs a rebuild when
// the body count changes.
func (a *App) createSprites() {
	bodies := a.sim.Bodies()
	a.sprites = make([]rl.RenderTexture2D, len(bodies))

	for i, b := range bodies {
		side := int32(math.Ceil(b.Diam))
		if side < 1 {
			side = 1
		}
		tex := rl.LoadRenderTexture(side, side)

		r, g, bl := a.cfg.BodyColor(i).RGB255()
		rl.BeginTextureMode(tex)
		rl.ClearBackground(rl.Blank)
		rl.DrawCircle(side/2, side/2, float32(b.Diam)/2, rl.NewColor(r, g, bl, 255))
		rl.EndTextureMode()

		a.sprites[i] = tex
	}
}

func (a *App) destroySprites() {
	for _, tex := range a.sprites {
		rl.UnloadRenderTexture(tex)
	}
	a.sprites = nil
}
