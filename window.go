package litscene

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState owns the GLFW window and its OpenGL context.
type WindowState struct {
	windowGlfw *glfw.Window

	WindowWidth  int
	WindowHeight int

	FramebufferWidth  int
	FramebufferHeight int
	// Resized is set by the framebuffer callback until a renderer consumes it.
	Resized bool
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) (*WindowState, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	fbw, fbh := win.GetFramebufferSize()
	s := &WindowState{
		windowGlfw:        win,
		WindowWidth:       windowWidth,
		WindowHeight:      windowHeight,
		FramebufferWidth:  fbw,
		FramebufferHeight: fbh,
		Resized:           true,
	}
	win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		s.FramebufferWidth = width
		s.FramebufferHeight = height
		s.Resized = true
	})
	return s, nil
}

func (s *WindowState) ShouldClose() bool {
	return s.windowGlfw.ShouldClose()
}

func (s *WindowState) SwapBuffers() {
	s.windowGlfw.SwapBuffers()
}

func (s *WindowState) destroy() {
	s.windowGlfw.Destroy()
	glfw.Terminate()
}

// presentSystem swaps buffers and turns a close request into an exit.
func presentSystem(s *WindowState, cmd *Commands) {
	s.SwapBuffers()
	if s.ShouldClose() {
		cmd.Exit()
	}
}
