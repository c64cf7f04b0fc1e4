package cli

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/andrescamacho/starship-engine/internal/infrastructure/config"
)

// resolveOwner picks the owning player
// Priority: --owner flag > user config default
func resolveOwner() (int, error) {
	if ownerID > 0 {
		return ownerID, nil
	}

	userCfg, err := loadUserConfig()
	if err != nil {
		return 0, fmt.Errorf("no owner specified and failed to load user config: %w", err)
	}
	if userCfg.DefaultOwner != nil {
		return *userCfg.DefaultOwner, nil
	}

	return 0, fmt.Errorf("no owner specified: use --owner, or set a default with 'starship config set-owner'")
}

// resolveRace picks the race whose hull variants are used
// Priority: --race flag > user config default > 0
func resolveRace() int {
	if raceIndex >= 0 {
		return raceIndex
	}
	if userCfg, err := loadUserConfig(); err == nil && userCfg.DefaultRace != nil {
		return *userCfg.DefaultRace
	}
	return 0
}

func loadUserConfig() (*config.UserConfig, error) {
	handler, err := config.NewUserConfigHandler()
	if err != nil {
		return nil, err
	}
	return handler.Load()
}

// maskPassword hides the password of a connection URL for display
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, hasPassword := u.User.Password(); hasPassword {
		u.User = url.UserPassword(u.User.Username(), "****")
	}
	return u.String()
}

// prettyPrint formats JSON for display
func prettyPrint(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(bytes)
}
