package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment overrides read by ApplyEnv.
const (
	EnvAssets = "CAMPFIRE_ASSETS"
	EnvDebug  = "CAMPFIRE_DEBUG"
	EnvFPS    = "CAMPFIRE_FPS"
)

// ApplyEnv applies overrides from the environment. Unset variables are
// skipped; malformed ones are reported and leave the setting unchanged.
func ApplyEnv() error {
	if dir, ok := os.LookupEnv(EnvAssets); ok {
		SetAssetsDir(dir)
	}

	if v, ok := os.LookupEnv(EnvDebug); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		SetDebug(enabled)
	}

	if v, ok := os.LookupEnv(EnvFPS); ok {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFPS, err)
		}
		SetTargetFPS(fps)
	}

	return nil
}
