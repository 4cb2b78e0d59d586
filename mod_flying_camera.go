package litscene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/litscene/rt/core"
)

// SceneState is the mutable application state shared by the input and
// render systems.
type SceneState struct {
	Camera     *core.Camera
	Flashlight bool
	Cursor     CursorTracker
}

// CursorTracker turns absolute cursor positions into per-sample deltas.
// The first sample only records the reference position.
type CursorTracker struct {
	seen         bool
	lastX, lastY float64
}

// Offset returns the x delta and the inverted y delta, since screen y grows
// downward while pitch grows upward.
func (c *CursorTracker) Offset(x, y float64) (float32, float32) {
	if !c.seen {
		c.lastX, c.lastY = x, y
		c.seen = true
	}
	dx := float32(x - c.lastX)
	dy := float32(c.lastY - y)
	c.lastX, c.lastY = x, y
	return dx, dy
}

type FlyingCameraModule struct {
	Position    mgl32.Vec3
	Speed       float32
	Sensitivity float32
	Flashlight  bool
}

func (m FlyingCameraModule) Install(app *App, cmd *Commands) {
	cam := core.NewCamera(m.Position)
	if m.Speed > 0 {
		cam.Speed = m.Speed
	}
	if m.Sensitivity > 0 {
		cam.Sensitivity = m.Sensitivity
	}
	cmd.AddResources(&SceneState{
		Camera:     cam,
		Flashlight: m.Flashlight,
	})
	app.UseSystem(
		System(FlyingCameraControlSystem).
			InStage(Update),
	)
}

var movementKeys = [...]struct {
	key int
	dir core.Direction
}{
	{KeyW, core.Forward},
	{KeyS, core.Backward},
	{KeyA, core.Left},
	{KeyD, core.Right},
}

func FlyingCameraControlSystem(input *Input, time *Time, state *SceneState, cmd *Commands) {
	if input.Pressed[KeyEscape] {
		cmd.Exit()
	}

	if input.JustPressed[KeyF] {
		state.Flashlight = !state.Flashlight
		cmd.Logger().Debugf("flashlight on=%v", state.Flashlight)
	}

	dt := time.DtSeconds()
	for _, mk := range movementKeys {
		if input.Pressed[mk.key] {
			state.Camera.ProcessKeyboard(mk.dir, dt)
		}
	}

	if dx, dy := state.Cursor.Offset(input.MouseX, input.MouseY); dx != 0 || dy != 0 {
		state.Camera.ProcessMouseMovement(dx, dy)
	}

	if input.ScrollY != 0 {
		state.Camera.ProcessMouseScroll(float32(input.ScrollY))
	}
}
