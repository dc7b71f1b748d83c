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
	ServerConfig struct {
		Address            string
		DebugHost          string
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
	}

	// AdminConfig is the single static administrator identity. It is never
	// stored in the mutable teacher collection.
	AdminConfig struct {
		ID       string
		Name     string
		Email    string
		Password string
	}

	GeminiConfig struct {
		APIKey  string
		Model   string
		BaseURL string
	}

	Config struct {
		AppName   string
		Env       string // DEV (local; default), TEST, QA, PROD
		Build     string
		Debug     bool
		TestMode  bool
		SecretKey string

		Server ServerConfig
		Admin  AdminConfig
		Gemini GeminiConfig

		RollbarToken string
	}
)

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "EduQuest")
	conf.SetDefault("build", "dev")
	conf.SetDefault("secretKey", "kx2!pmh)7dq$+34=vr&wnbgy5(j!z)#*e8(#tu6f^$alsw9opc")
	conf.SetDefault("serverAddress", ":8000")
	conf.SetDefault("serverDebugHost", ":8001")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("adminId", "admin-001")
	conf.SetDefault("adminName", "Principal")
	conf.SetDefault("adminEmail", "admin@gmail.com")
	conf.SetDefault("adminPassword", "12345678")
	conf.SetDefault("geminiModel", "gemini-3-flash-preview")
	conf.SetDefault("geminiBaseUrl", "https://generativelanguage.googleapis.com")

	env := os.Getenv("ENV")
	var testMode bool
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:   conf.GetString("appName"),
		Env:       env,
		Build:     conf.GetString("build"),
		Debug:     conf.GetBool("debug"),
		TestMode:  testMode,
		SecretKey: conf.GetString("secretKey"),
		Server: ServerConfig{
			Address:            conf.GetString("serverAddress"),
			DebugHost:          conf.GetString("serverDebugHost"),
			ShutdownTimeout:    conf.GetDuration("serverShutdownTimeout"),
			JWTExpirationDelta: conf.GetDuration("jwtExpirationDelta"),
		},
		Admin: AdminConfig{
			ID:       conf.GetString("adminId"),
			Name:     conf.GetString("adminName"),
			Email:    conf.GetString("adminEmail"),
			Password: conf.GetString("adminPassword"),
		},
		Gemini: GeminiConfig{
			APIKey:  conf.GetString("geminiApiKey"),
			Model:   conf.GetString("geminiModel"),
			BaseURL: conf.GetString("geminiBaseUrl"),
		},
		RollbarToken: conf.GetString("rollbarToken"),
	}
}
