package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// UserConfig represents CLI preferences stored in ~/.starship/config.json
type UserConfig struct {
	// Owner used by ship commands when --owner is not given
	DefaultOwner *int `json:"default_owner,omitempty"`

	// Race index used by ship commands when --race is not given
	DefaultRace *int `json:"default_race,omitempty"`
}

// UserConfigHandler manages loading and saving user configuration
type UserConfigHandler struct {
	fs         afero.Fs
	configPath string
}

// NewUserConfigHandler creates a handler for ~/.starship/config.json on the OS filesystem
func NewUserConfigHandler() (*UserConfigHandler, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewUserConfigHandlerAt(afero.NewOsFs(), filepath.Join(homeDir, ".starship", "config.json"))
}

// NewUserConfigHandlerAt creates a handler for an explicit file, creating its directory
func NewUserConfigHandlerAt(fs afero.Fs, configPath string) (*UserConfigHandler, error) {
	if err := fs.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	return &UserConfigHandler{fs: fs, configPath: configPath}, nil
}

// Load reads the user config, returning an empty one when the file does not exist
func (h *UserConfigHandler) Load() (*UserConfig, error) {
	exists, err := afero.Exists(h.fs, h.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat user config: %w", err)
	}
	if !exists {
		return &UserConfig{}, nil
	}

	data, err := afero.ReadFile(h.fs, h.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read user config: %w", err)
	}

	var config UserConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	return &config, nil
}

// Save writes the user config
func (h *UserConfigHandler) Save(config *UserConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user config: %w", err)
	}

	if err := afero.WriteFile(h.fs, h.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write user config: %w", err)
	}

	return nil
}

// SetDefaultOwner sets the default owner
func (h *UserConfigHandler) SetDefaultOwner(playerID int) error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.DefaultOwner = &playerID
	return h.Save(config)
}

// SetDefaultRace sets the default race index
func (h *UserConfigHandler) SetDefaultRace(raceIndex int) error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.DefaultRace = &raceIndex
	return h.Save(config)
}

// Clear removes every preference
func (h *UserConfigHandler) Clear() error {
	return h.Save(&UserConfig{})
}

// GetConfigPath returns the path to the user config file
func (h *UserConfigHandler) GetConfigPath() string {
	return h.configPath
}
