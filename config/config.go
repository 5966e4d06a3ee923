package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"go.uber.org/zap"

	"github.com/festivalops/report-api/models"
)

type (
	// Config holds the project config values
	Config struct {
		Env               string       `koanf:"env"`
		Port              string       `koanf:"port"`
		BaseURL           string       `koanf:"base_url"`
		MongoURI          string       `koanf:"mongo_uri"`
		DatabaseName      string       `koanf:"db_name"`
		AdminPasswordHash string       `koanf:"admin_password_hash"`
		JWTSecret         string       `koanf:"jwt_secret"`
		CloudinaryURL     string       `koanf:"cloudinary_url"`
		Digest            DigestConfig `koanf:"digest"`
		Logger            LoggerConfig `koanf:"logger"`
	}

	// DigestConfig configures the daily activity digest email.
	DigestConfig struct {
		Cron        string `koanf:"cron"`
		To          string `koanf:"to"`
		From        string `koanf:"from"`
		SendGridKey string `koanf:"sendgrid_key"`
	}

	// LoggerConfig configures the rotating log file used in production.
	LoggerConfig struct {
		Enabled    bool   `koanf:"enabled"`
		Filename   string `koanf:"filename"`
		MaxSize    int    `koanf:"max_size"`
		MaxAge     int    `koanf:"max_age"`
		MaxBackups int    `koanf:"max_backups"`
		Compress   bool   `koanf:"compress"`
	}
)

var defaults = Config{
	Env:          "local",
	Port:         "8080",
	DatabaseName: "festival",
	Digest: DigestConfig{
		Cron: "0 7 * * *",
		From: "no-reply@festival-report.live",
	},
	Logger: LoggerConfig{
		Filename:   "logs/report-api.log",
		MaxSize:    50,
		MaxAge:     14,
		MaxBackups: 5,
	},
}

// New loads the config from the environment (FESTIVAL_ prefix, nested keys
// separated by a double underscore) and replaces the global zap logger.
func New() *Config {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		panic(fmt.Errorf("error loading default config: %w", err))
	}

	err := k.Load(env.Provider("FESTIVAL_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "FESTIVAL_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		panic(fmt.Errorf("error loading config from environment: %w", err))
	}

	var conf Config
	if err := k.Unmarshal("", &conf); err != nil {
		panic(fmt.Errorf("error unmarshaling config: %w", err))
	}

	logger, err := setLogger(conf.Env, conf.Logger)
	if err != nil {
		panic(fmt.Errorf("error building logger: %w", err))
	}
	_ = zap.ReplaceGlobals(logger)

	return &conf
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// given message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.APIResponse{
		Success: false,
		Error:   fmt.Sprintf("%s: %v", message, err),
	})
	w.Write(b)
}
