package testutil

import (
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/prachishaw/ClassCapsule/core"
	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/core/user"
	logsvc "github.com/prachishaw/ClassCapsule/services/logger"
	inmemkv "github.com/prachishaw/ClassCapsule/storage/keyvalue/inmem"
	"github.com/prachishaw/ClassCapsule/storage/mockdata"
)

// Today is the fixed "now" used across tests: Monday 2025-01-20, 09:00 UTC.
var Today = time.Date(2025, time.January, 20, 9, 0, 0, 0, time.UTC)

// Date returns midnight UTC of the given day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Clock returns a now func frozen at t.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func NewConfig() *core.Config {
	return &core.Config{
		Env:      "TEST",
		Build:    "test",
		TestMode: true,
		AppName:  "ClassCapsule",
		Server:   core.ServerConfig{Address: ":0", ShutdownTimeout: time.Second, DisableReqLogs: true},
		Storage:  core.StorageConfig{Driver: core.StorageMemory},
		Calendar: core.CalendarConfig{UpcomingLimit: 5},
	}
}

// NewValidator returns a validator with every app validator registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	course.InitValidators(validate, translator)
	return validate, translator
}

func NewLogger() *logsvc.MemoryLogger {
	return logsvc.NewNopLogger()
}

// NewGate returns a gate without simulated delay, backed by store (a fresh in-memory store if nil).
func NewGate(t *testing.T, store core.KVStore) *user.Gate {
	t.Helper()
	if store == nil {
		store = inmemkv.New()
	}
	validate, _ := NewValidator()
	return user.NewGate(user.GateDeps{
		Store:    store,
		Logger:   NewLogger(),
		Validate: validate,
	})
}

// NewCourseService returns a course service seeded with the mock catalog.
func NewCourseService(t *testing.T) *course.Service {
	t.Helper()
	validate, _ := NewValidator()
	return course.NewService(mockdata.Catalog(), validate, NewLogger())
}

// Await waits for a Login/Register outcome, failing the test after a second.
func Await(t *testing.T, result <-chan bool) bool {
	t.Helper()
	select {
	case ok, open := <-result:
		require.True(t, open, "result channel closed without a value")
		return ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for result")
		return false
	}
}

// LogIn authenticates gate as a demo identity of role r.
func LogIn(t *testing.T, gate *user.Gate, r user.Role) user.Identity {
	t.Helper()
	id, ok := user.DemoIdentity(r)
	require.True(t, ok, "unknown role %q", r)
	gate.AssumeDemoIdentity(id)
	return id
}
