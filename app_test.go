package litscene

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

func TestApp_addResources(t *testing.T) {
	app := newApp()

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)

	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)

	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")
	assert.Same(t, resource2, Resource[MockResource2](app))
}

func TestApp_ResourceMissing(t *testing.T) {
	app := newApp()
	assert.Nil(t, Resource[MockResource1](app))
}

func TestApp_StepInjectsResources(t *testing.T) {
	app := newApp()
	app.addResources(NewMockResource1("a"), NewMockResource2("b"))

	var seen []string
	app.UseSystem(System(func(r1 *MockResource1, cmd *Commands, r2 *MockResource2) {
		require.NotNil(t, cmd)
		seen = append(seen, r1.name+r2.name)
	}))

	app.Step()
	app.Step()

	assert.Equal(t, []string{"ab", "ab"}, seen)
	assert.Equal(t, uint64(2), app.Frame())
}

func TestApp_UnresolvedDependencyPanics(t *testing.T) {
	app := newApp()
	app.UseSystem(System(func(r *MockResource1) {}))

	assert.Panics(t, app.Step)
}

func TestApp_StageOrder(t *testing.T) {
	app := newApp()
	var order []string
	record := func(name string) func() {
		return func() { order = append(order, name) }
	}

	app.UseSystem(System(record("render")).InStage(Render))
	app.UseSystem(System(record("post")).InStage(PostRender))
	app.UseSystem(System(record("pre")).InStage(PreUpdate))
	app.UseSystem(System(record("update")))

	app.Step()
	assert.Equal(t, []string{"pre", "update", "render", "post"}, order)
}

func TestApp_RunUntilExit(t *testing.T) {
	app := newApp()
	var order []string

	app.UseSystem(System(func(cmd *Commands) {
		order = append(order, "frame")
		if len(order) == 3 {
			cmd.Exit()
		}
	}))
	app.UseSystem(System(func() { order = append(order, "teardown") }).InStage(Teardown))
	app.UseSystem(System(func() { order = append(order, "finale") }).InStage(Finale))

	app.Run()

	assert.Equal(t, []string{"frame", "frame", "frame", "finale", "teardown"}, order)
	assert.Equal(t, uint64(3), app.Frame())
}
