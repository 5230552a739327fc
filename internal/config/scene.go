package config

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// SceneSettings holds the fixed parameters of the campfire scene
type SceneSettings struct {
	mu           sync.RWMutex
	assetsDir    string
	fireOrigin   mgl32.Vec3
	maxParticles int
	waterOrigin  mgl32.Vec3
}

var globalSceneSettings = &SceneSettings{
	assetsDir:    "assets",
	fireOrigin:   mgl32.Vec3{1, 1, -1},
	maxParticles: 1000,
	waterOrigin:  mgl32.Vec3{0, 0, 0},
}

// AssetsDir returns the directory holding shaders, models and the scene manifest
func AssetsDir() string {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.assetsDir
}

func SetAssetsDir(dir string) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()
	if dir == "" {
		return
	}
	globalSceneSettings.assetsDir = dir
}

// FireOrigin returns the world-space emitter position of the fire
func FireOrigin() mgl32.Vec3 {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.fireOrigin
}

func SetFireOrigin(origin mgl32.Vec3) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()
	globalSceneSettings.fireOrigin = origin
}

// MaxParticles returns the fire particle pool size
func MaxParticles() int {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.maxParticles
}

// SetMaxParticles sets the particle pool size, clamped to 1..100000
func SetMaxParticles(n int) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()

	if n < 1 {
		n = 1
	}
	if n > 100000 {
		n = 100000
	}
	globalSceneSettings.maxParticles = n
}

// WaterOrigin returns the wave origin pushed to the water shader every frame
func WaterOrigin() mgl32.Vec3 {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.waterOrigin
}

func SetWaterOrigin(origin mgl32.Vec3) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()
	globalSceneSettings.waterOrigin = origin
}
