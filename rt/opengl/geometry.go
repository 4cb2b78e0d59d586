package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gekko3d/litscene/rt/core"
)

// Vertex layout: position(3) normal(3) uv(2).
const VertexStride = 8

var CubeVertices = []float32{
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,

	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,

	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 1.0, 1.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,

	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,

	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 1.0, 1.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,

	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
}

var PyramidVertices = []float32{
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 0.0, 0.0, -1.0, -1.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 0.0, -1.0, -0.5, -1.0,

	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0, -1.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0, -0.5, -1.0,

	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 0.0,
	-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, -1.0, 0.0,
	0.0, 0.5, 0.0, -1.0, 0.0, 0.0, -0.5, -1.0,

	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0, -1.0, 0.0,
	0.0, 0.5, 0.0, 1.0, 0.0, 0.0, -0.5, -1.0,

	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, 1.0, 1.0, 0.0,
	0.5, -0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,
}

// Mesh is a vertex array over a float buffer. Several meshes may share one
// buffer with different attribute sets.
type Mesh struct {
	vao uint32
	vbo uint32
}

func newBuffer(vertices []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	return vbo
}

// newMesh binds the first attribCount attributes of the shared layout.
func newMesh(vbo uint32, attribCount int) Mesh {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	sizes := [3]int32{3, 3, 2}
	offset := 0
	for i := 0; i < attribCount; i++ {
		gl.VertexAttribPointerWithOffset(uint32(i), sizes[i], gl.FLOAT, false, VertexStride*4, uintptr(offset*4))
		gl.EnableVertexAttribArray(uint32(i))
		offset += int(sizes[i])
	}
	gl.BindVertexArray(0)
	return Mesh{vao: vao, vbo: vbo}
}

// SceneMeshes uploads the cube, the position-only lamp view of the cube
// buffer, and the pyramid.
func SceneMeshes() map[core.GeometryID]Mesh {
	cubeVBO := newBuffer(CubeVertices)
	pyramidVBO := newBuffer(PyramidVertices)
	return map[core.GeometryID]Mesh{
		core.GeometryCube:    newMesh(cubeVBO, 3),
		core.GeometryLamp:    newMesh(cubeVBO, 1),
		core.GeometryPyramid: newMesh(pyramidVBO, 3),
	}
}

// DeleteMeshes releases every vertex array and each distinct buffer once.
func DeleteMeshes(meshes map[core.GeometryID]Mesh) {
	buffers := make(map[uint32]struct{})
	for _, m := range meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		buffers[m.vbo] = struct{}{}
	}
	for vbo := range buffers {
		gl.DeleteBuffers(1, &vbo)
	}
}
