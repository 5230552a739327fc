package main

import (
	"runtime"

	"campfire/internal/config"
	"campfire/internal/game"
	"campfire/internal/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	envErr := config.ApplyEnv()
	log := logging.New("campfire", config.Debug())
	if envErr != nil {
		log.Warnf("ignoring environment: %v", envErr)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow("Campfire")
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	app := game.NewApp(window, log)
	defer app.Close()

	if err := app.Load(); err != nil {
		panic(err)
	}
	app.Run()
}
