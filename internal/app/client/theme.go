package client

import (
	"fmt"

	"safetylog/internal/infrastructure/kvstore"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Theme returns the persisted theme, defaulting to light.
func (a *App) Theme() string {
	value, found, err := a.kv.Get(kvstore.KeyTheme)
	if err != nil || !found {
		return ThemeLight
	}
	if value != ThemeLight && value != ThemeDark {
		return ThemeLight
	}
	return value
}

func (a *App) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q, want %s or %s", theme, ThemeLight, ThemeDark)
	}
	return a.kv.Set(kvstore.KeyTheme, theme)
}
