package near

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mr-tron/base58"
)

const ed25519Prefix = "ed25519:"

// KeyPair is a signing key for one account.
type KeyPair struct {
	AccountID  string
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// PublicKeyString returns the key in "ed25519:<base58>" form.
func (k *KeyPair) PublicKeyString() string {
	return ed25519Prefix + base58.Encode(k.PublicKey)
}

type credentialsFile struct {
	AccountID  string `json:"account_id"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// DefaultCredentialsDir returns ~/.near-credentials.
func DefaultCredentialsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".near-credentials"), nil
}

// CredentialsPath returns where near-cli stores the key for account.
func CredentialsPath(dir, network, account string) string {
	return filepath.Join(dir, network, account+".json")
}

// LoadKeyPair reads a near-cli credentials file.
func LoadKeyPair(path string) (*KeyPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds credentialsFile
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials %s: %w", path, err)
	}

	priv, err := ParsePrivateKey(creds.PrivateKey)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		AccountID:  creds.AccountID,
		PublicKey:  priv.Public().(ed25519.PublicKey),
		PrivateKey: priv,
	}, nil
}

// ParsePrivateKey decodes an "ed25519:<base58>" secret key. Both the 64 byte
// expanded form and a bare 32 byte seed are accepted.
func ParsePrivateKey(s string) (ed25519.PrivateKey, error) {
	encoded, ok := strings.CutPrefix(s, ed25519Prefix)
	if !ok {
		return nil, fmt.Errorf("unsupported key type in %q", truncateKey(s))
	}

	raw, err := base58.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid base58 key: %w", err)
	}

	switch len(raw) {
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(raw), nil
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(raw), nil
	}
	return nil, fmt.Errorf("invalid ed25519 key length %d", len(raw))
}

// WriteKeyPair stores k in the near-cli credentials layout.
func WriteKeyPair(path string, k *KeyPair) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(credentialsFile{
		AccountID:  k.AccountID,
		PublicKey:  k.PublicKeyString(),
		PrivateKey: ed25519Prefix + base58.Encode(k.PrivateKey),
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

func truncateKey(s string) string {
	if len(s) > 12 {
		return s[:12] + "..."
	}
	return s
}
