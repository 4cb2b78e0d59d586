package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Shader is a bound shading-stage program addressed by uniform name.
type Shader interface {
	Use()
	SetMat4(name string, m mgl32.Mat4)
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
}

// Lighting is everything a lit program needs that does not change per object.
type Lighting struct {
	ViewPos     mgl32.Vec3
	Shininess   float32
	Directional DirectionalLight
	Points      [NumPointLights]PointLight
	Spot        SpotLight
}

// pointLightNames is precomputed so per-frame uploads do not format strings.
var pointLightNames = func() [NumPointLights]pointLightUniforms {
	var names [NumPointLights]pointLightUniforms
	for i := range names {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		names[i] = pointLightUniforms{
			position:  prefix + "position",
			ambient:   prefix + "ambient",
			diffuse:   prefix + "diffuse",
			specular:  prefix + "specular",
			constant:  prefix + "constant",
			linear:    prefix + "linear",
			quadratic: prefix + "quadratic",
		}
	}
	return names
}()

type pointLightUniforms struct {
	position, ambient, diffuse, specular string
	constant, linear, quadratic          string
}

// ApplyMaterialSamplers binds the material sampler units. It only needs to
// run once per program.
func ApplyMaterialSamplers(s Shader, m Material) {
	s.Use()
	s.SetInt("material.diffuse", m.DiffuseUnit)
	s.SetInt("material.specular", m.SpecularUnit)
}

// ApplyLighting uploads the full lighting contract to s, which must be in use.
func ApplyLighting(s Shader, l Lighting) {
	s.SetVec3("viewPos", l.ViewPos)
	s.SetFloat("material.shininess", l.Shininess)

	s.SetVec3("dirLight.direction", l.Directional.Direction)
	s.SetVec3("dirLight.ambient", l.Directional.Ambient)
	s.SetVec3("dirLight.diffuse", l.Directional.Diffuse)
	s.SetVec3("dirLight.specular", l.Directional.Specular)

	for i, p := range l.Points {
		n := pointLightNames[i]
		s.SetVec3(n.position, p.Position)
		s.SetVec3(n.ambient, p.Ambient)
		s.SetVec3(n.diffuse, p.Diffuse)
		s.SetVec3(n.specular, p.Specular)
		s.SetFloat(n.constant, p.Attenuation.Constant)
		s.SetFloat(n.linear, p.Attenuation.Linear)
		s.SetFloat(n.quadratic, p.Attenuation.Quadratic)
	}

	s.SetVec3("spotLight.position", l.Spot.Position)
	s.SetVec3("spotLight.direction", l.Spot.Direction)
	s.SetVec3("spotLight.ambient", l.Spot.Ambient)
	s.SetVec3("spotLight.diffuse", l.Spot.Diffuse)
	s.SetVec3("spotLight.specular", l.Spot.Specular)
	s.SetFloat("spotLight.constant", l.Spot.Attenuation.Constant)
	s.SetFloat("spotLight.linear", l.Spot.Attenuation.Linear)
	s.SetFloat("spotLight.quadratic", l.Spot.Attenuation.Quadratic)
	s.SetFloat("spotLight.cutOff", l.Spot.CutOff)
	s.SetFloat("spotLight.outerCutOff", l.Spot.OuterCutOff)
}

func ApplyCamera(s Shader, projection, view mgl32.Mat4) {
	s.SetMat4("projection", projection)
	s.SetMat4("view", view)
}
