// Package config loads runtime settings and the element registry.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"ui_automation/domain/entities"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. UI_WAIT_TIMEOUT=30s
const EnvPrefix = "UI"

// Settings holds everything the runner needs besides the element registry
type Settings struct {
	ElementsFile     string
	WaitTimeout      time.Duration
	StrictWait       bool
	ActionPolicy     entities.FailurePolicy
	InspectionPolicy entities.FailurePolicy
	Browser          BrowserSettings
	ArtifactsDir     string
	LogLevel         string
}

// BrowserSettings are handed to the browser session
type BrowserSettings struct {
	Name     string
	Headless bool
	SlowMo   time.Duration
	BaseURL  string
}

// SetDefaults registers the default value of every setting on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("elements.file", "elements.yaml")
	v.SetDefault("wait.timeout", 120*time.Second)
	v.SetDefault("wait.strict", false)
	v.SetDefault("actions.policy", string(entities.PolicyLogAndContinue))
	v.SetDefault("inspection.policy", string(entities.PolicyCoerceToDefault))
	v.SetDefault("browser.name", "chromium")
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.slow_mo", time.Duration(0))
	v.SetDefault("browser.base_url", "")
	v.SetDefault("artifacts.dir", "artifacts")
	v.SetDefault("log.level", "info")
}

// NewViper returns a viper instance with defaults, env overrides and, when
// configFile is set or ui_automation.yaml exists, the config file loaded.
// A .env file in the working directory is loaded first when present.
func NewViper(configFile string) (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("ui_automation")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// FromViper builds validated settings from v
func FromViper(v *viper.Viper) (*Settings, error) {
	actionPolicy, err := entities.ParseFailurePolicy(v.GetString("actions.policy"))
	if err != nil {
		return nil, fmt.Errorf("actions.policy: %w", err)
	}
	inspectionPolicy, err := entities.ParseFailurePolicy(v.GetString("inspection.policy"))
	if err != nil {
		return nil, fmt.Errorf("inspection.policy: %w", err)
	}

	s := &Settings{
		ElementsFile:     v.GetString("elements.file"),
		WaitTimeout:      v.GetDuration("wait.timeout"),
		StrictWait:       v.GetBool("wait.strict"),
		ActionPolicy:     actionPolicy,
		InspectionPolicy: inspectionPolicy,
		Browser: BrowserSettings{
			Name:     v.GetString("browser.name"),
			Headless: v.GetBool("browser.headless"),
			SlowMo:   v.GetDuration("browser.slow_mo"),
			BaseURL:  v.GetString("browser.base_url"),
		},
		ArtifactsDir: v.GetString("artifacts.dir"),
		LogLevel:     v.GetString("log.level"),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects settings the runner cannot work with
func (s *Settings) Validate() error {
	if s.ElementsFile == "" {
		return errors.New("elements.file must be set")
	}
	if s.WaitTimeout < time.Millisecond {
		return fmt.Errorf("wait.timeout must be at least 1ms, got %s (use a unit, e.g. 120s)", s.WaitTimeout)
	}
	if s.Browser.SlowMo < 0 {
		return errors.New("browser.slow_mo must not be negative")
	}
	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// NewLogger - creates the process logger at the configured level
func (s *Settings) NewLogger() *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}
