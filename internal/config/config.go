package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "TASKVORTEX_"

// Config carries all runtime knobs. Defaults come from Default(); any key can
// be overridden with a TASKVORTEX_* environment variable (TASKVORTEX_API_BASE_URL,
// TASKVORTEX_PAGE_SIZE, ...).
type Config struct {
	APIBaseURL string        `koanf:"api_base_url"`
	Timeout    time.Duration `koanf:"timeout"`
	PageSize   int           `koanf:"page_size"`
	ToastTTL   time.Duration `koanf:"toast_ttl"`
	DataDir    string        `koanf:"data_dir"`
	LogLevel   string        `koanf:"log_level"`

	Stages Stages `koanf:"stages"`
}

// Stages holds the perceived-responsiveness delays between mutation stages.
// They are data, not code, so tests can run the sequences on a virtual clock.
type Stages struct {
	LoginHold      time.Duration `koanf:"login_hold"`
	LoginNavigate  time.Duration `koanf:"login_navigate"`
	CreateHold     time.Duration `koanf:"create_hold"`
	CreateNavigate time.Duration `koanf:"create_navigate"`
}

func Default() Config {
	return Config{
		APIBaseURL: "http://localhost:8080/api",
		Timeout:    15 * time.Second,
		PageSize:   5,
		ToastTTL:   4 * time.Second,
		DataDir:    defaultDataDir(),
		LogLevel:   "info",
		Stages: Stages{
			LoginHold:      time.Second,
			LoginNavigate:  500 * time.Millisecond,
			CreateHold:     time.Second,
			CreateNavigate: 1500 * time.Millisecond,
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskvortex"
	}
	return filepath.Join(home, ".taskvortex")
}

// Load builds the effective configuration: struct defaults, then environment
// overrides.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return transformEnvKey(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return Config{}, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// transformEnvKey maps API_BASE_URL -> api_base_url and
// STAGES_LOGIN_HOLD -> stages.login_hold. Only the stages group nests, so a
// leading STAGES_ becomes the group delimiter and the rest keeps its
// underscores.
func transformEnvKey(s string) string {
	s = strings.ToLower(s)
	if rest, ok := strings.CutPrefix(s, "stages_"); ok {
		return "stages." + rest
	}
	return s
}

func (c Config) validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("config: api_base_url must not be empty")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("config: page_size must be >= 1, got %d", c.PageSize)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// StatePath is the sqlite kv blob holding the persisted session.
func (c Config) StatePath() string { return filepath.Join(c.DataDir, "state.sqlite") }

// DiagLogPath is the diagnostic channel for background failures; stdout
// belongs to the TUI.
func (c Config) DiagLogPath() string { return filepath.Join(c.DataDir, "diag.log") }
