package user

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"github.com/prachishaw/ClassCapsule/core"
	"github.com/prachishaw/ClassCapsule/core/reactive"
)

const (
	// StoreKey is the key-value store key holding the JSON-encoded current Identity.
	StoreKey = "currentUser"

	// LoginPath is the anonymous entry view callers redirect to when access is denied.
	LoginPath = "/login"

	// DefaultDelay is the simulated round-trip of Login and Register.
	DefaultDelay = time.Second

	loginID = "1"
)

var (
	// errors
	ErrInvalidIdentity = errors.New("invalid identity")

	afterFunc = time.AfterFunc                                 // mockable
	genID     = func() string { return uuid.New().String() } // mockable
)

type (
	GateDeps struct {
		Store    core.KVStore
		Logger   core.Logger
		Validate *validator.Validate
		Delay    time.Duration
	}

	// Gate tracks the current Identity: Anonymous (nil) or Authenticated.
	// Every transition is persisted under StoreKey and published through the identity cell.
	Gate struct {
		store    core.KVStore
		logger   core.Logger
		validate *validator.Validate
		delay    time.Duration
		current  *reactive.Cell[*Identity]
	}
)

// NewGate restores the persisted identity, if any.
// A corrupt persisted value is removed and the gate starts Anonymous.
func NewGate(deps GateDeps) *Gate {
	g := &Gate{
		store:    deps.Store,
		logger:   deps.Logger,
		validate: deps.Validate,
		delay:    deps.Delay,
		current:  reactive.New[*Identity](nil),
	}
	if id, err := g.restore(); err != nil {
		g.logger.Warn("discarding persisted identity", err)
		if err = g.store.Remove(StoreKey); err != nil {
			g.logger.Error("removing persisted identity", err)
		}
	} else if id != nil {
		g.current.Set(id)
	}
	return g
}

func (g *Gate) restore() (*Identity, error) {
	raw, ok, err := g.store.Get(StoreKey)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "reading persisted identity")
	}
	if !ok {
		return nil, nil
	}
	var id Identity
	if err = json.Unmarshal([]byte(raw), &id); err != nil {
		return nil, pkgerrors.Wrap(err, "decoding persisted identity")
	}
	if id.ID == "" {
		return nil, ErrInvalidIdentity
	}
	return &id, nil
}

// Identity returns the cell publishing the current identity (nil when Anonymous).
func (g *Gate) Identity() *reactive.Cell[*Identity] {
	return g.current
}

// Current returns a copy of the current identity; ok is false when Anonymous.
func (g *Gate) Current() (Identity, bool) {
	if id := g.current.Value(); id != nil {
		return *id, true
	}
	return Identity{}, false
}

// CanAccessProtectedView reports whether the gate is Authenticated.
// Callers redirect to LoginPath when it is false.
func (g *Gate) CanAccessProtectedView() bool {
	return g.current.Value() != nil
}

// Login accepts any non-empty email and password after the simulated delay.
// The returned channel receives the outcome once and is then closed.
func (g *Gate) Login(creds Credentials) <-chan bool {
	return g.resolve(func() (Identity, bool) {
		if err := creds.Validate(g.validate); err != nil {
			g.logger.Debug("login rejected", err)
			return Identity{}, false
		}
		return Identity{
			ID:    loginID,
			Email: creds.Email,
			Name:  localPart(creds.Email),
			Role:  RoleTeacher,
		}, true
	})
}

// Register accepts any registration with a name, email, password and known role after the simulated delay.
// The new identity gets a generated id and the role's default avatar.
func (g *Gate) Register(reg Registration) <-chan bool {
	return g.resolve(func() (Identity, bool) {
		if err := reg.Validate(g.validate); err != nil {
			g.logger.Debug("registration rejected", err)
			return Identity{}, false
		}
		return Identity{
			ID:             genID(),
			Email:          reg.Email,
			Name:           reg.Name,
			Role:           reg.Role,
			ProfileImage:   DefaultProfileImage(reg.Role),
			Department:     reg.Department,
			GraduationYear: reg.GraduationYear,
		}, true
	})
}

// Logout always transitions to Anonymous.
func (g *Gate) Logout() {
	if err := g.store.Remove(StoreKey); err != nil {
		g.logger.Error("removing persisted identity", err)
	}
	if id, ok := g.Current(); ok {
		g.logger.Info("user logged out", id)
	}
	g.current.Set(nil)
}

// AssumeDemoIdentity switches to id without any credential check.
func (g *Gate) AssumeDemoIdentity(id Identity) {
	g.authenticate(id)
	g.logger.Info("demo identity assumed", id)
}

func (g *Gate) authenticate(id Identity) {
	data, err := json.Marshal(id)
	if err != nil {
		g.logger.Error("encoding identity", err, id)
	} else if err = g.store.Set(StoreKey, string(data)); err != nil {
		g.logger.Error("persisting identity", err, id)
	}
	g.current.Set(&id)
}

func (g *Gate) resolve(fn func() (Identity, bool)) <-chan bool {
	result := make(chan bool, 1)
	afterFunc(g.delay, func() {
		defer close(result)
		id, ok := fn()
		if ok {
			g.authenticate(id)
			g.logger.Info("user authenticated", id)
		}
		result <- ok
	})
	return result
}

// Await waits for the outcome of Login or Register.
// Cancelling ctx abandons interest only; the pending transition still happens.
func Await(ctx context.Context, result <-chan bool) (bool, error) {
	select {
	case ok := <-result:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
