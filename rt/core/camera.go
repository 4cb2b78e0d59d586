package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultFov         float32 = 45.0

	MaxPitch float32 = 89.0
	MinFov   float32 = 1.0
	MaxFov   float32 = 45.0

	NearPlane float32 = 0.1
	FarPlane  float32 = 100.0
)

var WorldUp = mgl32.Vec3{0, 1, 0}

// Camera is a free-flying first person camera. Front, Right and Up are
// derived from Yaw and Pitch and are only written by updateVectors.
type Camera struct {
	Position    mgl32.Vec3
	Yaw         float32
	Pitch       float32
	Speed       float32
	Sensitivity float32
	Fov         float32

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

func NewCamera(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:    position,
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		Fov:         DefaultFov,
	}
	c.updateVectors()
	return c
}

func (c *Camera) Front() mgl32.Vec3 { return c.front }
func (c *Camera) Right() mgl32.Vec3 { return c.right }
func (c *Camera) Up() mgl32.Vec3    { return c.up }

// ProcessKeyboard moves the camera along its front or right vector.
// World bounds are not enforced.
func (c *Camera) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(velocity))
	}
}

// ProcessMouseMovement takes raw cursor deltas in pixels. The caller is
// responsible for skipping the very first sample.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32) {
	c.Yaw += xOffset * c.Sensitivity
	c.Pitch += yOffset * c.Sensitivity

	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}

	c.updateVectors()
}

// ProcessMouseScroll zooms by narrowing the field of view.
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.Fov -= yOffset
	if c.Fov < MinFov {
		c.Fov = MinFov
	}
	if c.Fov > MaxFov {
		c.Fov = MaxFov
	}
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// GetProjectionMatrix uses the current field of view, so it has to be
// rebuilt every frame.
func (c *Camera) GetProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, NearPlane, FarPlane)
}

func (c *Camera) updateVectors() {
	yawRad := float64(mgl32.DegToRad(c.Yaw))
	pitchRad := float64(mgl32.DegToRad(c.Pitch))

	c.front = mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}.Normalize()
	c.right = c.front.Cross(WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
