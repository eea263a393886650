// Package app wires the store, event bus, and services into a single
// explicitly constructed container. Nothing in the module reaches for
// global state: every consumer receives its dependencies from here.
package app

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/seed"
	"github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/services/identity"
	"github.com/thenoetrevino/tablero/internal/store"
)

// App holds all application services and provides dependency injection.
type App struct {
	Store store.Store
	Bus   *events.Bus

	Identity identity.Service
	Board    board.Service

	config *config.Config
}

// New creates an App over an already-open store.
func New(s store.Store, bus *events.Bus, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	return &App{
		Store:    s,
		Bus:      bus,
		Identity: identity.NewService(s, bus),
		Board:    board.NewService(s, bus),
		config:   cfg,
	}
}

// Open loads the configuration, opens the store at the configured
// path, and returns the assembled application.
func Open(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	path := cfg.StorePath
	if path == "" {
		path, err = store.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	s, err := store.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return New(s, events.NewBus(), cfg), nil
}

// Config returns the loaded configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// LoadSeed runs the one-time seed fetch when it is enabled. Fetch
// failures are non-fatal; the board simply starts empty.
func (a *App) LoadSeed(ctx context.Context) int {
	if !a.config.Seed.Enabled || a.config.Seed.URL == "" {
		return 0
	}
	loader := seed.NewLoader(a.Store, a.Bus, a.config.Seed.URL, a.config.Seed.Timeout())
	count, _ := loader.Load(ctx)
	return count
}

// Theme returns the persisted theme preference, falling back to the
// configured default.
func (a *App) Theme(ctx context.Context) models.Theme {
	theme := store.Load(ctx, a.Store, store.KeyTheme, a.config.Theme)
	if !theme.Valid() {
		return models.ThemeLight
	}
	return theme
}

// SetTheme persists a theme preference.
func (a *App) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("unknown theme %q", theme)
	}
	if err := store.SaveValue(ctx, a.Store, store.KeyTheme, theme); err != nil {
		return err
	}
	a.Bus.Emit(events.New(events.EventThemeChanged, events.ThemePayload{Theme: theme}))
	return nil
}

// ToggleTheme flips between light and dark and returns the new value.
func (a *App) ToggleTheme(ctx context.Context) (models.Theme, error) {
	next := a.Theme(ctx).Toggle()
	if err := a.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}
