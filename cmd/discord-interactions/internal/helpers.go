package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Dqrshan/discord-interactions/pkg/config"
	"github.com/Dqrshan/discord-interactions/pkg/logger"
)

const Logo = "🧩"

var (
	version   = "dev"
	gitCommit string
	buildTime string
	goVersion string
)

func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".discord-interactions", "config.json")
}

// LoadConfig loads the config at path, or at GetConfigPath when path is
// empty, and applies its log level unless debug logging was requested.
func LoadConfig(path string, debug bool) (*config.Config, error) {
	if path == "" {
		path = GetConfigPath()
	}
	if debug {
		logger.SetLevel(logger.DEBUG)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if !debug {
		level, err := cfg.LogLevel()
		if err != nil {
			return nil, err
		}
		logger.SetLevel(level)
	}
	return cfg, nil
}

// FormatVersion returns the version string with optional git commit
func FormatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

// FormatBuildInfo returns build time and go version info
func FormatBuildInfo() (string, string) {
	build := buildTime
	goVer := goVersion
	if goVer == "" {
		goVer = runtime.Version()
	}
	return build, goVer
}

// GetVersion returns the version string
func GetVersion() string {
	return version
}
