package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Scene layout. Every model matrix is rebuilt each frame from these
// constants and the elapsed time; nothing here is persisted.

// Oscillator is a cube that slides sinusoidally along one world axis and
// spins about (1,1,1) at t*sin(SpinRate).
type Oscillator struct {
	Base     mgl32.Vec3
	Axis     int
	SpinRate float32
}

// CubeGroup is a set of cubes each rotated about its own position vector,
// then translated there and scaled by index*ScaleStep. Index 0 therefore
// collapses to a zero scale.
type CubeGroup struct {
	Positions  [5]mgl32.Vec3
	RateOffset float32
	ScaleStep  float32
	Diffuse    TextureSlot
	Specular   TextureSlot
}

var OscillatingCubes = [3]Oscillator{
	{Base: mgl32.Vec3{-5.0, 0.0, -4.0}, Axis: 0, SpinRate: 10.0},
	{Base: mgl32.Vec3{-0.5, 3.0, -5.0}, Axis: 1, SpinRate: 5.0},
	{Base: mgl32.Vec3{5.5, 0.0, -2.5}, Axis: 2, SpinRate: 2.5},
}

var CubeGroups = [2]CubeGroup{
	{
		Positions: [5]mgl32.Vec3{
			{0.0, 0.0, 0.0},
			{2.0, 5.0, -10.0},
			{-1.5, -2.2, -2.5},
			{-3.8, -2.0, -8.3},
			{2.4, -0.4, -3.5},
		},
		RateOffset: 10.0,
		ScaleStep:  0.5,
		Diffuse:    TextureContainer,
		Specular:   TextureContainerSpecular,
	},
	{
		Positions: [5]mgl32.Vec3{
			{-1.7, 3.0, -7.5},
			{1.3, -2.0, -5.0},
			{1.5, 2.0, -5.0},
			{1.5, 0.2, -0.5},
			{-1.3, 1.0, -1.5},
		},
		RateOffset: 2.0,
		ScaleStep:  0.3,
		Diffuse:    TextureWoodenBox,
		Specular:   TextureNone,
	},
}

var (
	CentralPyramidPosition = mgl32.Vec3{0.0, 0.0, -5.0}
	PyramidSpinRate        = float32(10.0)

	SatellitePyramids = [3]mgl32.Vec3{
		{-2.0, 0.0, -6.0},
		{4.0, 2.0, -4.0},
		{3.0, -5.0, -7.0},
	}
	SatelliteRateOffset = float32(2.0)

	LampScale = float32(0.2)
)

var spinAxis = mgl32.Vec3{1, 1, 1}

// OscillationOffset is the shared displacement of the sliding cubes.
func OscillationOffset(t float64) float32 {
	return float32(math.Sin(t))
}

func (o Oscillator) Model(t float64) mgl32.Mat4 {
	pos := o.Base
	pos[o.Axis] += OscillationOffset(t)
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(rotateAbout(spinAngle(t, o.SpinRate), spinAxis))
}

func (g CubeGroup) Model(i int, t float64) mgl32.Mat4 {
	pos := g.Positions[i]
	return rotateAbout(spinAngle(t, float32(i)+g.RateOffset), pos).
		Mul4(mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())).
		Mul4(g.Scale(i))
}

// Scale is the uniform index-proportional scale of cube i.
func (g CubeGroup) Scale(i int) mgl32.Mat4 {
	s := float32(i) * g.ScaleStep
	return mgl32.Scale3D(s, s, s)
}

func CentralPyramidModel(t float64) mgl32.Mat4 {
	p := CentralPyramidPosition
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).
		Mul4(rotateAbout(spinAngle(t, PyramidSpinRate)*2, WorldUp))
}

func SatellitePyramidModel(i int, t float64) mgl32.Mat4 {
	pos := SatellitePyramids[i]
	return rotateAbout(spinAngle(t, SatelliteRateOffset+float32(i)), pos).
		Mul4(mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()))
}

func LampModel(i int) mgl32.Mat4 {
	p := PointLightPositions[i]
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).
		Mul4(mgl32.Scale3D(LampScale, LampScale, LampScale))
}

func spinAngle(t float64, rate float32) float32 {
	return float32(t * math.Sin(float64(rate)))
}

// rotateAbout normalizes axis. A zero axis yields the identity instead of
// a NaN matrix.
func rotateAbout(angle float32, axis mgl32.Vec3) mgl32.Mat4 {
	if axis.Len() == 0 {
		return mgl32.Ident4()
	}
	return mgl32.HomogRotate3D(angle, axis.Normalize())
}
