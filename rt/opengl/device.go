package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gekko3d/litscene/rt/core"
)

// Init loads GL entry points for the current context and sets the fixed
// pipeline state the scene relies on.
func Init() (string, error) {
	if err := gl.Init(); err != nil {
		return "", fmt.Errorf("gl init: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)
	return gl.GoStr(gl.GetString(gl.VERSION)), nil
}

func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func Clear(r, g, b float32) {
	gl.ClearColor(r, g, b, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ProgramSet resolves program ids for core.Submit.
type ProgramSet map[core.ProgramID]*Program

func (p ProgramSet) Program(id core.ProgramID) core.Shader {
	return p[id]
}

// Device submits draws. Missing textures and TextureNone bind handle 0.
type Device struct {
	Textures map[core.TextureSlot]uint32
	Meshes   map[core.GeometryID]Mesh

	bound [2]uint32
	valid [2]bool
}

func NewDevice(textures map[core.TextureSlot]uint32, meshes map[core.GeometryID]Mesh) *Device {
	return &Device{Textures: textures, Meshes: meshes}
}

func (d *Device) BindTexture(unit int32, slot core.TextureSlot) {
	handle := d.Textures[slot]
	if int(unit) < len(d.bound) {
		if d.valid[unit] && d.bound[unit] == handle {
			return
		}
		d.bound[unit] = handle
		d.valid[unit] = true
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (d *Device) BindGeometry(id core.GeometryID) {
	gl.BindVertexArray(d.Meshes[id].vao)
}

func (d *Device) DrawTriangles(vertexCount int32) {
	gl.DrawArrays(gl.TRIANGLES, 0, vertexCount)
}

// BeginFrame forgets cached bindings; other GL users may have changed them.
func (d *Device) BeginFrame() {
	d.valid = [2]bool{}
}
