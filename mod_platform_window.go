package litscene

import (
	"reflect"
)

// PlatformWindowModule opens the scene window with a current OpenGL 4.1 core
// context. Installing it twice keeps the first window.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

// NewPlatformWindow falls back to 1280x960 "OpenGL" for zero values.
func NewPlatformWindow(width, height int, title string) *PlatformWindowModule {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 960
	}
	if title == "" {
		title = "OpenGL"
	}
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

// Install also schedules the buffer swap after rendering and destroys the
// window once GL resources are released.
func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	t := reflect.TypeOf((*WindowState)(nil)).Elem()
	if _, ok := app.resources[t]; ok {
		return
	}

	ws, err := createWindowState(m.Width, m.Height, m.Title)
	if err != nil {
		panic(err)
	}
	app.Logger().Infof("window %dx%d %q created", m.Width, m.Height, m.Title)
	app.addResources(ws)

	app.UseSystem(System(presentSystem).InStage(PostRender))
	app.UseSystem(System(func(s *WindowState) { s.destroy() }).InStage(Teardown))
}
