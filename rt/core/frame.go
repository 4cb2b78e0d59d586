package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

type ProgramID int

const (
	ProgramCube ProgramID = iota
	ProgramLamp
	ProgramPyramid
)

type GeometryID int

const (
	GeometryCube GeometryID = iota
	GeometryLamp
	GeometryPyramid
)

const (
	CubeVertexCount    int32 = 36
	PyramidVertexCount int32 = 18
)

// FrameInput is sampled once per iteration so every object animates from
// the same clock reading.
type FrameInput struct {
	Camera     *Camera
	Elapsed    float64
	Aspect     float32
	Flashlight bool
}

type Draw struct {
	Geometry    GeometryID
	VertexCount int32
	Diffuse     TextureSlot
	Specular    TextureSlot
	Model       mgl32.Mat4
}

// Pass is one program with its draws in submission order.
type Pass struct {
	Program ProgramID
	Lit     bool
	Draws   []Draw
}

type Frame struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Lighting   Lighting
	Passes     []Pass
}

// AssembleFrame derives every matrix and light parameter for one frame. It
// reads the camera but never mutates it, so repeated calls with the same
// input produce identical frames.
func AssembleFrame(in FrameInput) Frame {
	cam := in.Camera
	t := in.Elapsed

	frame := Frame{
		Projection: cam.GetProjectionMatrix(in.Aspect),
		View:       cam.GetViewMatrix(),
		Lighting: Lighting{
			ViewPos:     cam.Position,
			Shininess:   DefaultMaterial().Shininess,
			Directional: SunLight,
			Points:      PointLights(),
			Spot:        Flashlight(cam, in.Flashlight),
		},
	}

	cubes := Pass{Program: ProgramCube, Lit: true}
	for _, o := range OscillatingCubes {
		cubes.Draws = append(cubes.Draws, cubeDraw(o.Model(t), TextureContainer, TextureContainerSpecular))
	}
	for _, g := range CubeGroups {
		for i := range g.Positions {
			cubes.Draws = append(cubes.Draws, cubeDraw(g.Model(i, t), g.Diffuse, g.Specular))
		}
	}

	lamps := Pass{Program: ProgramLamp}
	for i := range PointLightPositions {
		lamps.Draws = append(lamps.Draws, Draw{
			Geometry:    GeometryLamp,
			VertexCount: CubeVertexCount,
			Model:       LampModel(i),
		})
	}

	pyramids := Pass{Program: ProgramPyramid, Lit: true}
	pyramids.Draws = append(pyramids.Draws, pyramidDraw(CentralPyramidModel(t)))
	for i := range SatellitePyramids {
		pyramids.Draws = append(pyramids.Draws, pyramidDraw(SatellitePyramidModel(i, t)))
	}

	frame.Passes = []Pass{cubes, lamps, pyramids}
	return frame
}

func cubeDraw(model mgl32.Mat4, diffuse, specular TextureSlot) Draw {
	return Draw{
		Geometry:    GeometryCube,
		VertexCount: CubeVertexCount,
		Diffuse:     diffuse,
		Specular:    specular,
		Model:       model,
	}
}

func pyramidDraw(model mgl32.Mat4) Draw {
	return Draw{
		Geometry:    GeometryPyramid,
		VertexCount: PyramidVertexCount,
		Diffuse:     TexturePyramid,
		Specular:    TextureNone,
		Model:       model,
	}
}

// Device is the draw-submission side of the backend.
type Device interface {
	BindTexture(unit int32, slot TextureSlot)
	BindGeometry(id GeometryID)
	DrawTriangles(vertexCount int32)
}

// Programs resolves a program id to its shader.
type Programs interface {
	Program(id ProgramID) Shader
}

// Submit replays a frame against the backend. Lighting is uploaded once
// per lit program, independent of how many draws it has.
func Submit(f Frame, programs Programs, dev Device) {
	for _, pass := range f.Passes {
		s := programs.Program(pass.Program)
		s.Use()
		ApplyCamera(s, f.Projection, f.View)
		if pass.Lit {
			ApplyLighting(s, f.Lighting)
		}

		var geometry GeometryID = -1
		for _, d := range pass.Draws {
			if pass.Lit {
				dev.BindTexture(0, d.Diffuse)
				dev.BindTexture(1, d.Specular)
			}
			if d.Geometry != geometry {
				dev.BindGeometry(d.Geometry)
				geometry = d.Geometry
			}
			s.SetMat4("model", d.Model)
			dev.DrawTriangles(d.VertexCount)
		}
	}
}
