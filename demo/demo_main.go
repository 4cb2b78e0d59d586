package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/litscene"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := litscene.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	app := litscene.NewAppBuilder().
		UseModule(
			litscene.LoggingModule{Prefix: "litscene", Level: cfg.Level()},
			litscene.NewPlatformWindow(cfg.Width, cfg.Height, cfg.Title),
			litscene.TimeModule{},
			litscene.InputModule{},
			litscene.FlyingCameraModule{
				Position:    mgl32.Vec3{0, 0, 3},
				Speed:       float32(cfg.MoveSpeed),
				Sensitivity: float32(cfg.MouseSensitivity),
				Flashlight:  cfg.Flashlight,
			},
			litscene.AssetServerModule{},
			litscene.LitRenderModule{
				TextureDir: cfg.TextureDir,
				Aspect:     cfg.Aspect(),
			},
		).
		Build()

	app.Run()
}
