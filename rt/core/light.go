package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const NumPointLights = 4

// Attenuation holds the constant, linear and quadratic falloff terms.
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

type PointLight struct {
	Position    mgl32.Vec3
	Ambient     mgl32.Vec3
	Diffuse     mgl32.Vec3
	Specular    mgl32.Vec3
	Attenuation Attenuation
}

// SpotLight cutoffs are cosines, not angles.
type SpotLight struct {
	Position    mgl32.Vec3
	Direction   mgl32.Vec3
	Ambient     mgl32.Vec3
	Diffuse     mgl32.Vec3
	Specular    mgl32.Vec3
	Attenuation Attenuation
	CutOff      float32
	OuterCutOff float32
}

var DefaultAttenuation = Attenuation{Constant: 1.0, Linear: 0.09, Quadratic: 0.032}

var SunLight = DirectionalLight{
	Direction: mgl32.Vec3{-0.2, -1.0, -0.3},
	Ambient:   mgl32.Vec3{0.05, 0.05, 0.05},
	Diffuse:   mgl32.Vec3{0.4, 0.4, 0.4},
	Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
}

var PointLightPositions = [NumPointLights]mgl32.Vec3{
	{0.7, 0.2, 2.0},
	{2.3, -3.3, -4.0},
	{-4.0, 2.0, -8.0},
	{0.0, 0.0, -3.0},
}

// PointLights returns the four static point lights in uniform index order.
func PointLights() [NumPointLights]PointLight {
	var lights [NumPointLights]PointLight
	for i, pos := range PointLightPositions {
		lights[i] = PointLight{
			Position:    pos,
			Ambient:     mgl32.Vec3{0.05, 0.05, 0.05},
			Diffuse:     mgl32.Vec3{0.8, 0.8, 0.8},
			Specular:    mgl32.Vec3{1.0, 1.0, 1.0},
			Attenuation: DefaultAttenuation,
		}
	}
	return lights
}

var (
	FlashlightCutOff      = cosDeg(12.5)
	FlashlightOuterCutOff = cosDeg(15.0)
)

// Flashlight binds a spot light to the camera eye. When disabled the
// colour terms are zero but every other field is still populated so the
// shading stage evaluates it unconditionally.
func Flashlight(cam *Camera, enabled bool) SpotLight {
	spot := SpotLight{
		Position:    cam.Position,
		Direction:   cam.Front(),
		Attenuation: DefaultAttenuation,
		CutOff:      FlashlightCutOff,
		OuterCutOff: FlashlightOuterCutOff,
	}
	if enabled {
		spot.Diffuse = mgl32.Vec3{1, 1, 1}
		spot.Specular = mgl32.Vec3{1, 1, 1}
	}
	return spot
}

func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(mgl32.DegToRad(deg))))
}
