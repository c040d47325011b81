// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
)

// Defaults for every setting Load reads.
const (
	DefaultFPS         = 20
	DefaultFont        = "arial.ttf"
	DefaultSSHHost     = "::"
	DefaultSSHPort     = "2222"
	DefaultHostKeyPath = "/app/keys/host_key"
	DefaultWebHost     = "0.0.0.0"
	DefaultWebPort     = "8080"
	DefaultDisplayHost = "your-server.com"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt is GetEnv for integers. Unparsable values yield fallback.
func GetEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// GetEnvInt64 is GetEnvInt for 64-bit values such as seeds.
func GetEnvInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// Settings holds everything the commands read from the environment.
type Settings struct {
	FPS  int
	Seed int64 // 0 seeds from the clock
	Font string

	SSHHost     string
	SSHPort     string
	HostKeyPath string

	WebHost     string
	WebPort     string
	DisplayHost string
}

// Load reads Settings. Non-positive frame rates fall back to DefaultFPS.
func Load() Settings {
	s := Settings{
		FPS:         GetEnvInt("DODGER_FPS", DefaultFPS),
		Seed:        GetEnvInt64("DODGER_SEED", 0),
		Font:        GetEnv("DODGER_FONT", DefaultFont),
		SSHHost:     GetEnv("SSH_HOST", DefaultSSHHost),
		SSHPort:     GetEnv("SSH_PORT", DefaultSSHPort),
		HostKeyPath: GetEnv("SSH_HOST_KEY", DefaultHostKeyPath),
		WebHost:     GetEnv("WEB_HOST", DefaultWebHost),
		WebPort:     GetEnv("WEB_PORT", DefaultWebPort),
		DisplayHost: GetEnv("SSH_DISPLAY_HOST", DefaultDisplayHost),
	}
	if s.FPS <= 0 {
		s.FPS = DefaultFPS
	}
	return s
}
