package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// GlobalFlags mirrors the CLI flags that influence configuration.
type GlobalFlags struct {
	ConfigPath    string
	RPCURL        string
	Transport     string
	ListenAddr    string
	Timeout       string
	Retries       int
	EnableActions string
	LogLevel      string
}

// Settings is the resolved runtime configuration. Credential fields are
// plain strings; the empty string means "absent" and collaborator clients
// decide how to behave without one.
type Settings struct {
	RPCURL           string
	Transport        string
	ListenAddr       string
	Timeout          time.Duration
	Retries          int
	CoingeckoAPIKey  string
	JupiterAPIKey    string
	SolsnifferAPIKey string
	EnabledActions   []string
	LogLevel         string
}

type fileConfig struct {
	RPCURL     string   `yaml:"rpc_url"`
	Transport  string   `yaml:"transport"`
	ListenAddr string   `yaml:"listen_addr"`
	Timeout    string   `yaml:"timeout"`
	Retries    *int     `yaml:"retries"`
	LogLevel   string   `yaml:"log_level"`
	Actions    []string `yaml:"actions"`
	Providers  struct {
		Coingecko struct {
			APIKey    string `yaml:"api_key"`
			APIKeyEnv string `yaml:"api_key_env"`
		} `yaml:"coingecko"`
		Jupiter struct {
			APIKey    string `yaml:"api_key"`
			APIKeyEnv string `yaml:"api_key_env"`
		} `yaml:"jupiter"`
		Solsniffer struct {
			APIKey    string `yaml:"api_key"`
			APIKeyEnv string `yaml:"api_key_env"`
		} `yaml:"solsniffer"`
	} `yaml:"providers"`
}

type envOverrides struct {
	RPCURL           string `envconfig:"SOLANA_RPC_URL"`
	Transport        string `envconfig:"MCP_TRANSPORT"`
	ListenAddr       string `envconfig:"MCP_LISTEN_ADDR"`
	Timeout          string `envconfig:"HTTP_TIMEOUT"`
	Retries          string `envconfig:"HTTP_RETRIES"`
	CoingeckoAPIKey  string `envconfig:"COINGECKO_DEMO_API_KEY"`
	JupiterAPIKey    string `envconfig:"JUPITER_API_KEY"`
	SolsnifferAPIKey string `envconfig:"SOLSNIFFER_API_KEY"`
	EnabledActions   string `envconfig:"ENABLED_ACTIONS"`
	LogLevel         string `envconfig:"LOG_LEVEL"`
}

// Load resolves settings in precedence order: defaults, config file,
// environment, flags.
func Load(flags GlobalFlags) (Settings, error) {
	settings := defaultSettings()

	cfgPath, err := resolveConfigPath(flags.ConfigPath)
	if err != nil {
		return Settings{}, err
	}
	if err := applyFileConfig(cfgPath, &settings); err != nil {
		return Settings{}, err
	}
	if err := applyEnv(&settings); err != nil {
		return Settings{}, err
	}
	if err := applyFlags(flags, &settings); err != nil {
		return Settings{}, err
	}

	switch settings.Transport {
	case "stdio", "sse":
	default:
		return Settings{}, fmt.Errorf("unsupported transport %q (want stdio or sse)", settings.Transport)
	}
	if settings.Timeout <= 0 {
		settings.Timeout = 10 * time.Second
	}
	if settings.Retries < 0 {
		settings.Retries = 0
	}

	return settings, nil
}

func defaultSettings() Settings {
	return Settings{
		RPCURL:     "https://api.mainnet-beta.solana.com",
		Transport:  "stdio",
		ListenAddr: "localhost:7777",
		Timeout:    10 * time.Second,
		Retries:    0,
		LogLevel:   "info",
	}
}

func resolveConfigPath(input string) (string, error) {
	if strings.TrimSpace(input) != "" {
		return input, nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "mcp-solana-data", "config.yaml"), nil
}

func applyFileConfig(path string, settings *Settings) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}

	if cfg.RPCURL != "" {
		settings.RPCURL = cfg.RPCURL
	}
	if cfg.Transport != "" {
		settings.Transport = strings.ToLower(cfg.Transport)
	}
	if cfg.ListenAddr != "" {
		settings.ListenAddr = cfg.ListenAddr
	}
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return fmt.Errorf("config timeout: %w", err)
		}
		settings.Timeout = d
	}
	if cfg.Retries != nil {
		settings.Retries = *cfg.Retries
	}
	if cfg.LogLevel != "" {
		settings.LogLevel = strings.ToLower(cfg.LogLevel)
	}
	if len(cfg.Actions) > 0 {
		settings.EnabledActions = cfg.Actions
	}
	if cfg.Providers.Coingecko.APIKey != "" {
		settings.CoingeckoAPIKey = cfg.Providers.Coingecko.APIKey
	}
	if cfg.Providers.Coingecko.APIKeyEnv != "" {
		settings.CoingeckoAPIKey = os.Getenv(cfg.Providers.Coingecko.APIKeyEnv)
	}
	if cfg.Providers.Jupiter.APIKey != "" {
		settings.JupiterAPIKey = cfg.Providers.Jupiter.APIKey
	}
	if cfg.Providers.Jupiter.APIKeyEnv != "" {
		settings.JupiterAPIKey = os.Getenv(cfg.Providers.Jupiter.APIKeyEnv)
	}
	if cfg.Providers.Solsniffer.APIKey != "" {
		settings.SolsnifferAPIKey = cfg.Providers.Solsniffer.APIKey
	}
	if cfg.Providers.Solsniffer.APIKeyEnv != "" {
		settings.SolsnifferAPIKey = os.Getenv(cfg.Providers.Solsniffer.APIKeyEnv)
	}
	return nil
}

func applyEnv(settings *Settings) error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	if env.RPCURL != "" {
		settings.RPCURL = env.RPCURL
	}
	if env.Transport != "" {
		settings.Transport = strings.ToLower(env.Transport)
	}
	if env.ListenAddr != "" {
		settings.ListenAddr = env.ListenAddr
	}
	if env.Timeout != "" {
		d, err := time.ParseDuration(env.Timeout)
		if err != nil {
			return fmt.Errorf("HTTP_TIMEOUT: %w", err)
		}
		settings.Timeout = d
	}
	if env.Retries != "" {
		var retries int
		if _, err := fmt.Sscanf(env.Retries, "%d", &retries); err != nil {
			return fmt.Errorf("HTTP_RETRIES: %w", err)
		}
		settings.Retries = retries
	}
	if env.CoingeckoAPIKey != "" {
		settings.CoingeckoAPIKey = env.CoingeckoAPIKey
	}
	if env.JupiterAPIKey != "" {
		settings.JupiterAPIKey = env.JupiterAPIKey
	}
	if env.SolsnifferAPIKey != "" {
		settings.SolsnifferAPIKey = env.SolsnifferAPIKey
	}
	if env.EnabledActions != "" {
		settings.EnabledActions = splitList(env.EnabledActions)
	}
	if env.LogLevel != "" {
		settings.LogLevel = strings.ToLower(env.LogLevel)
	}
	return nil
}

func applyFlags(flags GlobalFlags, settings *Settings) error {
	if flags.RPCURL != "" {
		settings.RPCURL = flags.RPCURL
	}
	if flags.Transport != "" {
		settings.Transport = strings.ToLower(flags.Transport)
	}
	if flags.ListenAddr != "" {
		settings.ListenAddr = flags.ListenAddr
	}
	if flags.Timeout != "" {
		d, err := time.ParseDuration(flags.Timeout)
		if err != nil {
			return fmt.Errorf("--timeout: %w", err)
		}
		settings.Timeout = d
	}
	if flags.Retries > 0 {
		settings.Retries = flags.Retries
	}
	if flags.EnableActions != "" {
		settings.EnabledActions = splitList(flags.EnableActions)
	}
	if flags.LogLevel != "" {
		settings.LogLevel = strings.ToLower(flags.LogLevel)
	}
	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
