package litscene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUseSystem_UnknownStagePanics(t *testing.T) {
	app := newApp()
	assert.PanicsWithValue(t, "Stage Nowhere doesn't exist", func() {
		app.UseSystem(System(func() {}).InStage(Stage{Name: "Nowhere"}))
	})
}

func TestUseSystem_ExitStagesAccepted(t *testing.T) {
	app := newApp()
	for _, stage := range exitStages {
		assert.NotPanics(t, func() {
			app.UseSystem(System(func() {}).InStage(stage))
		}, stage.Name)
	}
}

func TestSystem_DefaultsToUpdate(t *testing.T) {
	assert.Equal(t, Update, System(func() {}).inStage)
}
