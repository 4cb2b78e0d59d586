package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCubeGroup_IndexZeroHasZeroScale(t *testing.T) {
	for gi, g := range CubeGroups {
		s := g.Scale(0)
		for i := 0; i < 3; i++ {
			assert.Equal(t, float32(0), s.At(i, i), "group %d scale diagonal %d", gi, i)
		}
		assert.Equal(t, float32(1), s.At(3, 3))

		// the composed model collapses every basis column
		m := g.Model(0, 1.7)
		for col := 0; col < 3; col++ {
			assert.Equal(t, mgl32.Vec4{}, m.Col(col), "group %d column %d", gi, col)
		}
		for _, v := range m {
			assert.False(t, math.IsNaN(float64(v)), "group %d model contains NaN", gi)
		}
	}
}

func TestCubeGroup_ScaleProportionalToIndex(t *testing.T) {
	g := CubeGroups[0]
	for i := range g.Positions {
		assert.InDelta(t, float32(i)*0.5, g.Scale(i).At(0, 0), eps)
	}
	g = CubeGroups[1]
	for i := range g.Positions {
		assert.InDelta(t, float32(i)*0.3, g.Scale(i).At(1, 1), eps)
	}
}

func TestCubeGroup_TranslatesToBaseAtTimeZero(t *testing.T) {
	g := CubeGroups[1]
	for i, pos := range g.Positions {
		m := g.Model(i, 0)
		origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		assertVecNear(t, pos, origin, eps, "cube %d at %v, want %v", i, origin, pos)
	}
}

func TestCubeGroup_RotatesAboutOwnPosition(t *testing.T) {
	// rotating about the position vector leaves the translated origin fixed
	g := CubeGroups[0]
	for i := 1; i < len(g.Positions); i++ {
		pos := g.Positions[i]
		origin := g.Model(i, 3.3).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		assertVecNear(t, pos, origin, 1e-4, "cube %d at %v, want %v", i, origin, pos)
	}
}

func TestOscillator_SlidesAlongAxis(t *testing.T) {
	tm := math.Pi / 2
	for _, o := range OscillatingCubes {
		want := o.Base
		want[o.Axis] += 1
		origin := o.Model(tm).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		assertVecNear(t, want, origin, eps)
	}
}

func TestOscillator_SpinRate(t *testing.T) {
	o := OscillatingCubes[1]
	got := o.Model(2)
	want := mgl32.Translate3D(-0.5, 3+float32(math.Sin(2)), -5).
		Mul4(mgl32.HomogRotate3D(float32(2*math.Sin(5)), mgl32.Vec3{1, 1, 1}.Normalize()))
	assertMatNear(t, want, got, eps)
}

func TestPyramids(t *testing.T) {
	tm := 0.8
	want := mgl32.Translate3D(0, 0, -5).Mul4(mgl32.HomogRotate3D(float32(tm*math.Sin(10))*2, mgl32.Vec3{0, 1, 0}))
	assertMatNear(t, want, CentralPyramidModel(tm), eps)

	for i, pos := range SatellitePyramids {
		origin := SatellitePyramidModel(i, tm).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		assertVecNear(t, pos, origin, 1e-4, "satellite %d at %v", i, origin)
	}
}

func TestLampModel(t *testing.T) {
	for i, pos := range PointLightPositions {
		m := LampModel(i)
		assert.Equal(t, mgl32.Vec4{pos.X(), pos.Y(), pos.Z(), 1}, m.Col(3))
		assert.Equal(t, LampScale, m.At(0, 0))
		assert.Equal(t, LampScale, m.At(1, 1))
		assert.Equal(t, LampScale, m.At(2, 2))
	}
}
