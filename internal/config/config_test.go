package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("NEARCOUNTER_HOME", home)
	t.Setenv("NEARCOUNTER_PROFILE", "")
	t.Setenv("NEAR_ENV", "")
	return home
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	home := setHome(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.ActiveProfile)
	assert.Equal(t, DefaultProfile(), cfg.Current())
	assert.Equal(t, filepath.Join(home, ".nearcounter"), cfg.Dir())
	assert.Equal(t, filepath.Join(home, ".nearcounter", "nearcounter.log"), cfg.LogFile())

	_, err = os.Stat(filepath.Join(home, ".nearcounter", "config.json"))
	assert.NoError(t, err)
}

func TestSaveAndReload(t *testing.T) {
	setHome(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	cfg.Profiles["chain"] = Profile{
		Gateway:    GatewayNear,
		Network:    "testnet",
		ContractID: "counter.testnet",
		AccountID:  "alice.testnet",
		RateLimit:  5,
	}
	cfg.ActiveProfile = "chain"
	require.NoError(t, cfg.Save())

	reloaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "chain", reloaded.ActiveProfile)
	assert.Equal(t, "counter.testnet", reloaded.Current().ContractID)
	assert.Equal(t, 5.0, reloaded.Current().RateLimit)
}

func TestProfileEnvOverride(t *testing.T) {
	setHome(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.Profiles["other"] = Profile{Gateway: GatewayMemory, AccountID: "bob.testnet"}
	require.NoError(t, cfg.Save())

	t.Setenv("NEARCOUNTER_PROFILE", "other")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "other", cfg.ActiveProfile)
	assert.Equal(t, "bob.testnet", cfg.Current().AccountID)

	t.Setenv("NEARCOUNTER_PROFILE", "missing")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestNetworkEnvOverride(t *testing.T) {
	setHome(t)
	t.Setenv("NEAR_ENV", "mainnet")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "mainnet", cfg.Current().Network)
	assert.Equal(t, "testnet", cfg.Profiles["default"].Network)
}

func TestUseProfile(t *testing.T) {
	setHome(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Error(t, cfg.UseProfile("nope"))

	cfg.Profiles["alt"] = Profile{Gateway: GatewayMemory, AccountID: "carol.testnet"}
	require.NoError(t, cfg.UseProfile("alt"))
	assert.Equal(t, "carol.testnet", cfg.Current().AccountID)

	// not persisted
	reloaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "default", reloaded.ActiveProfile)
}

func TestMissingActiveProfileFallsBack(t *testing.T) {
	setHome(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.ActiveProfile = "gone"
	require.NoError(t, cfg.Save())

	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.ActiveProfile)
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, Profile{}.Validate())
	assert.NoError(t, DefaultProfile().Validate())
	assert.Error(t, Profile{Gateway: GatewayNear}.Validate())
	assert.NoError(t, Profile{Gateway: GatewayNear, ContractID: "c.testnet"}.Validate())
	assert.Error(t, Profile{Gateway: "ethereum"}.Validate())
}
