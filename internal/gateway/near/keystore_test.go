package near

import (
	"crypto/ed25519"
	"os"
	"path/filepath"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeyPair(t *testing.T, account string) *KeyPair {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return &KeyPair{AccountID: account, PublicKey: pub, PrivateKey: priv}
}

func TestKeyPairRoundTrip(t *testing.T) {
	dir := t.TempDir()
	kp := newKeyPair(t, "alice.testnet")
	path := CredentialsPath(dir, "testnet", "alice.testnet")

	require.NoError(t, WriteKeyPair(path, kp))
	assert.Equal(t, filepath.Join(dir, "testnet", "alice.testnet.json"), path)

	loaded, err := LoadKeyPair(path)
	require.NoError(t, err)
	assert.Equal(t, kp.AccountID, loaded.AccountID)
	assert.Equal(t, kp.PublicKey, loaded.PublicKey)
	assert.Equal(t, kp.PrivateKey, loaded.PrivateKey)
	assert.Equal(t, "ed25519:"+base58.Encode(kp.PublicKey), loaded.PublicKeyString())
}

func TestParsePrivateKey(t *testing.T) {
	kp := newKeyPair(t, "x")

	full, err := ParsePrivateKey("ed25519:" + base58.Encode(kp.PrivateKey))
	require.NoError(t, err)
	assert.Equal(t, kp.PrivateKey, full)

	seed, err := ParsePrivateKey("ed25519:" + base58.Encode(kp.PrivateKey.Seed()))
	require.NoError(t, err)
	assert.Equal(t, kp.PrivateKey, seed)

	_, err = ParsePrivateKey("secp256k1:abc")
	assert.Error(t, err)

	_, err = ParsePrivateKey("ed25519:0OIl")
	assert.Error(t, err)

	_, err = ParsePrivateKey("ed25519:" + base58.Encode([]byte{1, 2, 3}))
	assert.Error(t, err)
}

func TestLoadKeyPair_Missing(t *testing.T) {
	_, err := LoadKeyPair(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
