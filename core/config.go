package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		AppName      string
		RollbarToken string
		PrefersDark  bool
		Server       ServerConfig
		Storage      StorageConfig
		Session      SessionConfig
		Calendar     CalendarConfig
	}

	ServerConfig struct {
		Address         string
		Host            string
		DebugHost       string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	StorageConfig struct {
		Driver       string // memory | disk
		Dir          string
		CacheSizeMax uint64
	}

	SessionConfig struct {
		LoginDelay time.Duration
	}

	CalendarConfig struct {
		UpcomingLimit int
	}
)

// Storage drivers
const (
	StorageMemory = "memory"
	StorageDisk   = "disk"
)

// NewConfig reads the app configuration from the environment (and config/.env.<env> if present).
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("build", "develop")
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "ClassCapsule")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("prefersDark", false)
	conf.SetDefault("serverAddress", ":8000")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverDebugHost", ":4000")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("serverDisableReqLogs", false)
	conf.SetDefault("storageDriver", StorageDisk)
	conf.SetDefault("storageDir", filepath.Join(os.TempDir(), "classcapsule"))
	conf.SetDefault("storageCacheSizeMax", 1024*1024) // 1MB
	conf.SetDefault("sessionLoginDelay", time.Second)
	conf.SetDefault("calendarUpcomingLimit", 5)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	var testMode bool
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
		conf.SetDefault("storageDriver", StorageMemory)
		conf.SetDefault("sessionLoginDelay", time.Duration(0))
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	if root, err := ProjectRoot(); err == nil {
		dotEnvPath := filepath.Join(root, "config", ".env."+strings.ToLower(env))
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
		}
	}
	conf.AutomaticEnv()

	return &Config{
		Env:          env,
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		TestMode:     testMode,
		AppName:      conf.GetString("appName"),
		RollbarToken: conf.GetString("rollbarToken"),
		PrefersDark:  conf.GetBool("prefersDark"),
		Server: ServerConfig{
			Address:         conf.GetString("serverAddress"),
			Host:            conf.GetString("serverHost"),
			DebugHost:       conf.GetString("serverDebugHost"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
			DisableReqLogs:  conf.GetBool("serverDisableReqLogs"),
		},
		Storage: StorageConfig{
			Driver:       conf.GetString("storageDriver"),
			Dir:          conf.GetString("storageDir"),
			CacheSizeMax: conf.GetUint64("storageCacheSizeMax"),
		},
		Session: SessionConfig{
			LoginDelay: conf.GetDuration("sessionLoginDelay"),
		},
		Calendar: CalendarConfig{
			UpcomingLimit: conf.GetInt("calendarUpcomingLimit"),
		},
	}
}
