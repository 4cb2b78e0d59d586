package litscene

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyW int = iota
	KeyA
	KeyS
	KeyD
	KeyF
	KeyEscape
	keyCount
)

var keyToGlfw = map[int]glfw.Key{
	KeyW:      glfw.KeyW,
	KeyA:      glfw.KeyA,
	KeyS:      glfw.KeyS,
	KeyD:      glfw.KeyD,
	KeyF:      glfw.KeyF,
	KeyEscape: glfw.KeyEscape,
}

type InputModule struct{}

// Input is a snapshot of the devices taken once at the start of a frame.
type Input struct {
	Pressed      [keyCount]bool
	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY float64
	// ScrollY is the wheel movement since the previous frame.
	ScrollY float64

	pendingScroll float64
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	input := &Input{}
	cmd.AddResources(input)

	if ws := Resource[WindowState](app); ws != nil {
		// scroll is only delivered through a callback; buffer it until the poll
		ws.windowGlfw.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
			input.addScroll(yoff)
		})
		app.UseSystem(
			System(inputSystem).
				InStage(PreUpdate),
		)
	}
}

func inputSystem(s *WindowState, input *Input) {
	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		input.updateKey(key, s.windowGlfw.GetKey(glfwKey) == glfw.Press)
	}

	input.MouseX, input.MouseY = s.windowGlfw.GetCursorPos()
	input.consumeScroll()
}

func (input *Input) updateKey(key int, down bool) {
	input.JustPressed[key] = down && !input.Pressed[key]
	input.JustReleased[key] = !down && input.Pressed[key]
	input.Pressed[key] = down
}

func (input *Input) addScroll(y float64) {
	input.pendingScroll += y
}

func (input *Input) consumeScroll() {
	input.ScrollY = input.pendingScroll
	input.pendingScroll = 0
}
