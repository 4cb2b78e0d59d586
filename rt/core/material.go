package core

// Material describes the sampler units and shininess of a lit program.
type Material struct {
	DiffuseUnit  int32
	SpecularUnit int32
	Shininess    float32
}

func DefaultMaterial() Material {
	return Material{
		DiffuseUnit:  0,
		SpecularUnit: 1,
		Shininess:    32.0,
	}
}

// TextureSlot names a scene texture. The backend resolves slots to GPU
// handles; TextureNone unbinds the unit.
type TextureSlot int

const (
	TextureNone TextureSlot = iota
	TextureContainer
	TextureContainerSpecular
	TextureWoodenBox
	TexturePyramid
)

// TextureFiles maps every loadable slot to its file name under the texture directory.
var TextureFiles = map[TextureSlot]string{
	TextureContainer:         "container.png",
	TextureContainerSpecular: "container_specular.png",
	TextureWoodenBox:         "wooden_box.png",
	TexturePyramid:           "pyramid.png",
}
