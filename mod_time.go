package litscene

import (
	"time"
)

type Time struct {
	Start time.Time
	Time  time.Time
	Dt    time.Duration
}

// Elapsed is the wall-clock seconds since the module was installed, as of
// the start of the current frame.
func (t *Time) Elapsed() float64 {
	return t.Time.Sub(t.Start).Seconds()
}

func (t *Time) DtSeconds() float32 {
	return float32(t.Dt.Seconds())
}

type TimeModule struct {
	// Now defaults to time.Now.
	Now func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	now := mod.Now
	if now == nil {
		now = time.Now
	}
	start := now()
	cmd.AddResources(&Time{
		Start: start,
		Time:  start,
		Dt:    0,
	})
	app.UseSystem(
		System(func(t *Time) { timeSystem(t, now) }).
			InStage(PreUpdate),
	)
}

func timeSystem(timeResource *Time, now func() time.Time) {
	current := now()

	timeResource.Dt = current.Sub(timeResource.Time)
	timeResource.Time = current
}
