// Package theme keeps the light/dark preference, persisted across sessions.
package theme

import (
	"github.com/prachishaw/ClassCapsule/core"
	"github.com/prachishaw/ClassCapsule/core/reactive"
)

const (
	// StoreKey is the key-value store key holding the theme name.
	StoreKey = "theme"

	Dark  = "dark"
	Light = "light"
)

// Service publishes whether the dark theme is on.
type Service struct {
	store  core.KVStore
	logger core.Logger
	dark   *reactive.Cell[bool]
}

// NewService restores the persisted theme; an absent or unrecognized value falls back to prefersDark.
// The resolved theme is persisted right away.
func NewService(store core.KVStore, prefersDark bool, logger core.Logger) *Service {
	svc := &Service{store: store, logger: logger}

	dark := prefersDark
	if name, ok, err := store.Get(StoreKey); err != nil {
		logger.Error("reading theme", err)
	} else if ok {
		switch name {
		case Dark:
			dark = true
		case Light:
			dark = false
		default:
			logger.Warn("ignoring unknown theme", name)
		}
	}
	svc.dark = reactive.New(dark)
	svc.persist(dark)
	return svc
}

// Cell returns the cell publishing true while the dark theme is on.
func (svc *Service) Cell() *reactive.Cell[bool] { return svc.dark }

func (svc *Service) IsDark() bool { return svc.dark.Value() }

// Name returns "dark" or "light".
func (svc *Service) Name() string { return name(svc.IsDark()) }

// Toggle flips the theme and returns whether it is now dark.
func (svc *Service) Toggle() bool {
	var dark bool
	svc.dark.Update(func(cur bool) (bool, bool) {
		dark = !cur
		return dark, true
	})
	svc.persist(dark)
	return dark
}

func (svc *Service) Set(dark bool) {
	svc.dark.Set(dark)
	svc.persist(dark)
}

// Parse maps "dark" / "light" to the dark flag.
func Parse(s string) (dark, ok bool) {
	switch s {
	case Dark:
		return true, true
	case Light:
		return false, true
	default:
		return false, false
	}
}

func (svc *Service) persist(dark bool) {
	if err := svc.store.Set(StoreKey, name(dark)); err != nil {
		svc.logger.Error("persisting theme", err)
	}
}

func name(dark bool) string {
	if dark {
		return Dark
	}
	return Light
}
