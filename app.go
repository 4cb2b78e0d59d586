package litscene

import (
	"fmt"
	"reflect"
	"runtime"
	"slices"
)

type systemFn any

type Module interface {
	Install(app *App, cmd *Commands)
}

// App runs its systems stage by stage, once per frame, until a system
// requests exit. System arguments are pointers resolved from resources.
type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	exiting   bool
	frame     uint64
}

func newApp() *App {
	app := &App{
		stages:    slices.Clone(frameStages),
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
	}
	for _, s := range app.stages {
		app.systems[s.Name] = make([]systemFn, 0)
	}
	for _, s := range exitStages {
		app.systems[s.Name] = make([]systemFn, 0)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{app: app}
}

// Run blocks until exit is requested, then runs the exit stages.
func (app *App) Run() {
	log := app.Logger()
	log.Infof("entering frame loop")
	for !app.exiting {
		app.Step()
	}
	log.Infof("frame loop stopped after %d frames", app.frame)
	for _, stage := range exitStages {
		app.callStage(stage)
	}
}

// Step runs a single frame.
func (app *App) Step() {
	for _, stage := range app.stages {
		app.callStage(stage)
	}
	app.frame++
}

func (app *App) Frame() uint64 {
	return app.frame
}

func (app *App) callStage(stage Stage) {
	for _, system := range app.systems[stage.Name] {
		app.callSystem(system)
	}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource returns the registered resource of type *T, or nil.
func Resource[T any](app *App) *T {
	r, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil
	}
	return r.(*T)
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}
	systemValue.Call(args)
}
