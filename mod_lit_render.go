package litscene

import (
	"maps"
	"path/filepath"
	"slices"

	"github.com/gekko3d/litscene/rt/core"
	"github.com/gekko3d/litscene/rt/opengl"
	"github.com/gekko3d/litscene/rt/shaders"
)

// LitRenderModule draws the lit scene every frame. It needs the window
// (for a current GL context), time and the flying camera installed first.
type LitRenderModule struct {
	TextureDir string
	Aspect     float32
	ClearColor [3]float32
}

type Renderer struct {
	Aspect     float32
	ClearColor [3]float32

	programs opengl.ProgramSet
	device   *opengl.Device
	meshes   map[core.GeometryID]opengl.Mesh
	textures map[core.TextureSlot]uint32
}

func (m LitRenderModule) Install(app *App, cmd *Commands) {
	log := app.Logger()

	if Resource[WindowState](app) == nil {
		panic("LitRenderModule requires PlatformWindowModule")
	}

	version, err := opengl.Init()
	if err != nil {
		panic(err)
	}
	log.Infof("OpenGL %s", version)

	programs, err := buildPrograms()
	if err != nil {
		panic(err)
	}
	log.Debugf("linked %d programs", len(programs))
	for _, id := range []core.ProgramID{core.ProgramCube, core.ProgramPyramid} {
		core.ApplyMaterialSamplers(programs[id], core.DefaultMaterial())
	}

	assets := Resource[AssetServer](app)
	if assets == nil {
		assets = NewAssetServer(log)
		app.addResources(assets)
	}
	textures := loadSceneTextures(assets, m.TextureDir)

	meshes := opengl.SceneMeshes()

	aspect := m.Aspect
	if aspect <= 0 {
		aspect = DefaultConfig().Aspect()
	}
	clearColor := m.ClearColor
	if clearColor == ([3]float32{}) {
		clearColor = [3]float32{0.2, 0.3, 0.3}
	}

	cmd.AddResources(&Renderer{
		Aspect:     aspect,
		ClearColor: clearColor,
		programs:   programs,
		device:     opengl.NewDevice(textures, meshes),
		meshes:     meshes,
		textures:   textures,
	})

	app.UseSystem(System(LitRenderSystem).InStage(Render))
	app.UseSystem(System(releaseRenderer).InStage(Finale))
}

func buildPrograms() (opengl.ProgramSet, error) {
	sources := []struct {
		id     core.ProgramID
		name   string
		vs, fs string
	}{
		{core.ProgramCube, "cube", shaders.LitVert, shaders.LitFrag},
		{core.ProgramLamp, "lamp", shaders.LampVert, shaders.LampFrag},
		{core.ProgramPyramid, "pyramid", shaders.LitVert, shaders.LitFrag},
	}

	programs := make(opengl.ProgramSet, len(sources))
	for _, src := range sources {
		p, err := opengl.NewProgram(src.name, src.vs, src.fs)
		if err != nil {
			for _, built := range programs {
				built.Delete()
			}
			return nil, err
		}
		programs[src.id] = p
	}
	return programs, nil
}

// loadSceneTextures uploads every scene texture. A texture that fails to
// load maps to handle 0 and renders black.
func loadSceneTextures(assets *AssetServer, dir string) map[core.TextureSlot]uint32 {
	handles := make(map[core.TextureSlot]uint32, len(core.TextureFiles))
	for _, slot := range slices.Sorted(maps.Keys(core.TextureFiles)) {
		id, err := assets.LoadTexture(filepath.Join(dir, core.TextureFiles[slot]))
		if err != nil {
			handles[slot] = 0
			continue
		}
		tex, _ := assets.Texture(id)
		handles[slot] = opengl.UploadTexture(tex.Width, tex.Height, tex.Texels)
		assets.ReleaseTexels(id)
	}
	return handles
}

// FrameInputFor samples the application state for one frame.
func FrameInputFor(state *SceneState, time *Time, aspect float32) core.FrameInput {
	return core.FrameInput{
		Camera:     state.Camera,
		Elapsed:    time.Elapsed(),
		Aspect:     aspect,
		Flashlight: state.Flashlight,
	}
}

func LitRenderSystem(r *Renderer, ws *WindowState, state *SceneState, time *Time) {
	if ws.Resized {
		opengl.Viewport(ws.FramebufferWidth, ws.FramebufferHeight)
		ws.Resized = false
	}

	opengl.Clear(r.ClearColor[0], r.ClearColor[1], r.ClearColor[2])
	r.device.BeginFrame()

	frame := core.AssembleFrame(FrameInputFor(state, time, r.Aspect))
	core.Submit(frame, r.programs, r.device)
}

func releaseRenderer(r *Renderer) {
	for _, p := range r.programs {
		p.Delete()
	}
	opengl.DeleteMeshes(r.meshes)
	for _, handle := range r.textures {
		opengl.DeleteTexture(handle)
	}
}
