package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Gateway kinds.
const (
	GatewayMemory = "memory"
	GatewayNear   = "near"
)

type Profile struct {
	Gateway        string  `json:"gateway"`
	Network        string  `json:"network,omitempty"`
	RPCURL         string  `json:"rpc_url,omitempty"`
	ContractID     string  `json:"contract_id,omitempty"`
	AccountID      string  `json:"account_id,omitempty"`
	CredentialsDir string  `json:"credentials_dir,omitempty"`
	RateLimit      float64 `json:"rate_limit,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	LogLevel       string             `json:"log_level,omitempty"`
	currentProfile *Profile
	path           string
}

// DefaultProfile is written on first run. It needs no network access.
func DefaultProfile() Profile {
	return Profile{
		Gateway:   GatewayMemory,
		Network:   "testnet",
		AccountID: "dev.testnet",
	}
}

func LoadConfig() (*Config, error) {
	loadEnvFiles()

	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.path = configPath

	if name := os.Getenv("NEARCOUNTER_PROFILE"); name != "" {
		if _, ok := config.Profiles[name]; !ok {
			return nil, fmt.Errorf("profile '%s' from NEARCOUNTER_PROFILE does not exist", name)
		}
		config.ActiveProfile = name
	}

	// Validate and set current profile
	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

// UseProfile makes name the current profile for this process without
// saving it.
func (c *Config) UseProfile(name string) error {
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	return c.setCurrentProfile()
}

// Current returns the active profile with environment overrides applied.
func (c *Config) Current() Profile {
	if c.currentProfile == nil {
		return DefaultProfile()
	}
	p := *c.currentProfile
	if network := os.Getenv("NEAR_ENV"); network != "" {
		p.Network = network
	}
	if p.Gateway == "" {
		p.Gateway = GatewayMemory
	}
	return p
}

// Validate reports whether the profile has what its gateway needs.
func (p Profile) Validate() error {
	switch p.Gateway {
	case GatewayMemory, "":
		return nil
	case GatewayNear:
		if p.ContractID == "" {
			return fmt.Errorf("near gateway requires contract_id")
		}
		return nil
	}
	return fmt.Errorf("unknown gateway %q", p.Gateway)
}

// Dir returns the directory holding the config file.
func (c *Config) Dir() string {
	if c.path != "" {
		return filepath.Dir(c.path)
	}
	configPath, err := getConfigPath()
	if err != nil {
		return ""
	}
	return filepath.Dir(configPath)
}

// LogFile returns the default log file path.
func (c *Config) LogFile() string {
	return filepath.Join(c.Dir(), "nearcounter.log")
}

func getConfigPath() (string, error) {
	var configDir string

	// Use NEARCOUNTER_HOME if set, otherwise use user's home directory
	if home := os.Getenv("NEARCOUNTER_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".nearcounter", "config.json"), nil
}

// loadEnvFiles reads .env from the working directory. Variables already set
// in the environment win.
func loadEnvFiles() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	// Read existing config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": DefaultProfile(),
		},
		ActiveProfile: "default",
	}

	// Save default config to file
	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		var err error
		configPath, err = getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// If active profile doesn't exist, try to use the first available profile
		for name, p := range c.Profiles {
			c.ActiveProfile = name
			profile = p
			exists = true
			break
		}
	}

	if !exists {
		return fmt.Errorf("no valid profiles found")
	}

	c.currentProfile = &profile
	return nil
}
