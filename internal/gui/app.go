package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/cdc6d/nbody/internal/config"
	"github.com/cdc6d/nbody/internal/control"
	"github.com/cdc6d/nbody/internal/sim"
)

// App is the windowed front end. It implements sim.Renderer and
// sim.InputSource, and its raylib loop is the host-paced frame driver
// flavor: the display refresh drives the cadence and the configured
// interval only picks the target FPS.
type App struct {
	cfg     *config.Config
	sim     *sim.Simulation
	sprites []rl.RenderTexture2D
}

// Run opens the window and blocks until the simulation quits or the
// window is closed. All window and sprite resources are released on
// return.
func Run(cfg *config.Config, s *sim.Simulation) error {
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "nbody")
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS(cfg.Interval))
	rl.SetExitKey(0)

	app := &App{cfg: cfg, sim: s}
	app.createSprites()
	defer app.destroySprites()

	for !rl.WindowShouldClose() {
		stop, err := s.Tick(app, app)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}

		if s.Paused() {
			// The gate skipped rendering; keep presenting frames so
			// the host keeps pumping events.
			app.drawIdleFrame()
		}

		if len(app.sprites) != s.Len() {
			// Resize happened: the sprite cache is stale.
			app.destroySprites()
			app.createSprites()
		}
	}

	// Window closed by the host.
	if err := s.Close(); err != nil && err != sim.ErrClosed {
		return err
	}
	return nil
}

func targetFPS(intervalMs int) int32 {
	if intervalMs <= 0 {
		return 60
	}
	fps := int32(1000 / intervalMs)
	if fps < 1 {
		fps = 1
	}
	return fps
}

// Clear begins the frame.
func (a *App) Clear() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
}

// DrawSprite blits body i's pre-rendered disc centered at (cx, cy).
func (a *App) DrawSprite(i int, cx, cy float64) {
	if i >= len(a.sprites) {
		return
	}
	tex := a.sprites[i].Texture
	x := int32(cx) - tex.Width/2
	y := int32(cy) - tex.Height/2
	rl.DrawTexture(tex, x, y, rl.White)
}

// Present draws the HUD and ends the frame.
func (a *App) Present() {
	a.drawHUD()
	rl.EndDrawing()
}

// Poll drains this frame's key and mouse state into commands, in a
// fixed order; the simulation keeps only the last one.
func (a *App) Poll() []control.Command {
	var cmds []control.Command
	if rl.IsKeyPressed(rl.KeySpace) {
		cmds = append(cmds, control.TogglePause)
	}
	if rl.IsKeyPressed(rl.KeyS) {
		cmds = append(cmds, control.Step)
	}
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		cmds = append(cmds, control.Quit)
	}
	return cmds
}

// drawIdleFrame re-presents the current positions while paused.
func (a *App) drawIdleFrame() {
	a.Clear()
	for i, b := range a.sim.Bodies() {
		a.DrawSprite(i, b.Pos.X, b.Pos.Y)
	}
	a.Present()
}

func (a *App) drawHUD() {
	status := "running"
	switch mode := a.sim.Mode(); {
	case mode == 0:
		status = "paused"
	case mode > 0:
		status = "stepping"
	}
	rl.DrawText(status, 10, 10, 20, rl.Gray)
	rl.DrawText("space pause   s step   q/click quit", 10, int32(a.cfg.Window.Height)-30, 20, rl.DarkGray)
}
