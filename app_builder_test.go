package litscene

import "testing"

type MockModule struct {
	installed bool
	order     *[]string
	name      string
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
	if m.order != nil {
		*m.order = append(*m.order, m.name)
	}
}

func TestAppBuilder_Empty(t *testing.T) {
	app := NewAppBuilder().Build()

	if len(app.stages) != len(frameStages) {
		t.Errorf("Expected %d stages, got %d", len(frameStages), len(app.stages))
	}
	if app.exiting {
		t.Errorf("A fresh app should not be exiting")
	}
}

func TestAppBuilder_UseModule(t *testing.T) {
	builder := NewAppBuilder()
	mockModule := &MockModule{}
	builder.UseModule(mockModule)

	if len(builder.modules) != 1 {
		t.Errorf("Expected modules to contain 1 module, got %v", len(builder.modules))
	}
	if mockModule.installed {
		t.Errorf("Module should not be installed before Build")
	}

	builder.Build()
	if !mockModule.installed {
		t.Errorf("Module should be installed by Build")
	}
}

func TestAppBuilder_InstallOrder(t *testing.T) {
	var order []string
	NewAppBuilder().
		UseModule(&MockModule{name: "first", order: &order}).
		UseModule(&MockModule{name: "second", order: &order}, &MockModule{name: "third", order: &order}).
		Build()

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected module %d to be %s, got %s", i, want[i], order[i])
		}
	}
}
