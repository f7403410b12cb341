// Package config provides the configuration loader for atlas.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/atlas/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Environment variables holding narrator credentials.
const (
	EnvAnthropicKey = "ANTHROPIC_API_KEY"
	EnvGeminiKey    = "GEMINI_API_KEY"
)

// Loader implements ports.ConfigLoader using atlas.yaml and an optional .env file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the nearest atlas.yaml at or above cwd and overlays it on the defaults.
// Relative paths in the file resolve against its directory.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.Root = cwd

	if path, ok := findConfiguration(cwd); ok {
		if err := readAndUnmarshalYAML(path, cfg); err != nil {
			return nil, err
		}
		cfg.Root = filepath.Dir(path)
	}

	l.loadEnv(cfg.Root)
	cfg.Narrator.APIKey = os.Getenv(apiKeyVar(cfg.Narrator.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		path := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// loadEnv reads .env next to the config. Variables already set in the process win.
func (l *Loader) loadEnv(root string) {
	path := filepath.Join(root, domain.EnvFileName)
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return
	}
	l.Logger.Warn("ignoring unreadable " + path + ": " + err.Error())
}

func apiKeyVar(provider string) string {
	if provider == domain.ProviderGemini {
		return EnvGeminiKey
	}
	return EnvAnthropicKey
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	data, err := os.ReadFile(configPath) //nolint:gosec // path is discovered from the working directory
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", configPath)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", configPath)
	}
	return nil
}
