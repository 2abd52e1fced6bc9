package near

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"

	"github.com/Rorical/NearCounter/internal/gateway"
)

// Contract method names of the counter contract.
const (
	MethodGetNum    = "get_num"
	MethodIncrement = "increment"
	MethodDecrement = "decrement"
	MethodReset     = "reset"
)

// DefaultRPCURL returns the public RPC endpoint for network.
func DefaultRPCURL(network string) string {
	switch network {
	case "mainnet":
		return "https://rpc.mainnet.near.org"
	case "localnet":
		return "http://127.0.0.1:3030"
	}
	return "https://rpc.testnet.near.org"
}

// Config configures a Gateway.
type Config struct {
	RPCURL         string
	Network        string
	ContractID     string
	AccountID      string
	CredentialsDir string
	RateLimit      float64
	Timeout        time.Duration
	Gas            uint64
}

// Gateway talks to the counter contract through a NEAR node.
type Gateway struct {
	client     *Client
	contractID string
	network    string
	accountID  string
	credsDir   string
	gas        uint64
	log        logrus.FieldLogger

	mu     sync.RWMutex
	signer *KeyPair

	// Serializes nonce lookup and broadcast so concurrent change calls from
	// the same key do not reuse a nonce.
	txMu sync.Mutex
}

var _ gateway.Gateway = (*Gateway)(nil)

// New creates a signed-out gateway.
func New(cfg Config, log logrus.FieldLogger) (*Gateway, error) {
	if cfg.ContractID == "" {
		return nil, fmt.Errorf("contract id required")
	}
	if cfg.Network == "" {
		cfg.Network = "testnet"
	}
	if cfg.RPCURL == "" {
		cfg.RPCURL = DefaultRPCURL(cfg.Network)
	}
	if cfg.CredentialsDir == "" {
		dir, err := DefaultCredentialsDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get credentials dir: %w", err)
		}
		cfg.CredentialsDir = dir
	}
	if cfg.Gas == 0 {
		cfg.Gas = DefaultGas
	}

	client, err := NewClient(ClientConfig{
		RPCURL:    cfg.RPCURL,
		Timeout:   cfg.Timeout,
		RateLimit: cfg.RateLimit,
	})
	if err != nil {
		return nil, err
	}

	return &Gateway{
		client:     client,
		contractID: cfg.ContractID,
		network:    cfg.Network,
		accountID:  cfg.AccountID,
		credsDir:   cfg.CredentialsDir,
		gas:        cfg.Gas,
		log:        log.WithField("contract", cfg.ContractID),
	}, nil
}

func (g *Gateway) AccountID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.signer == nil {
		return ""
	}
	return g.signer.AccountID
}

func (g *Gateway) Counter(ctx context.Context) (int, error) {
	raw, err := g.client.CallFunction(ctx, g.contractID, MethodGetNum, []byte("{}"))
	if err != nil {
		return 0, gateway.Wrap(gateway.OpGetCounter, err)
	}

	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, gateway.Wrap(gateway.OpGetCounter, fmt.Errorf("decode %q: %w", raw, err))
	}
	return n, nil
}

func (g *Gateway) Increment(ctx context.Context) error {
	return gateway.Wrap(gateway.OpIncrement, g.change(ctx, MethodIncrement))
}

func (g *Gateway) Decrement(ctx context.Context) error {
	return gateway.Wrap(gateway.OpDecrement, g.change(ctx, MethodDecrement))
}

func (g *Gateway) Reset(ctx context.Context) error {
	return gateway.Wrap(gateway.OpReset, g.change(ctx, MethodReset))
}

// SignIn loads the near-cli key of the configured account. Failures are
// logged and leave the gateway signed out.
func (g *Gateway) SignIn() {
	if g.accountID == "" {
		g.log.Warn("Sign in requested but no account configured")
		return
	}

	path := CredentialsPath(g.credsDir, g.network, g.accountID)
	kp, err := LoadKeyPair(path)
	if err != nil {
		g.log.WithError(err).WithField("path", path).Error("Sign in failed")
		return
	}
	if kp.AccountID == "" {
		kp.AccountID = g.accountID
	}

	g.mu.Lock()
	g.signer = kp
	g.mu.Unlock()
	g.log.WithField("account_id", kp.AccountID).Info("Signed in")
}

func (g *Gateway) SignOut() {
	g.mu.Lock()
	g.signer = nil
	g.mu.Unlock()
	g.log.Info("Signed out")
}

func (g *Gateway) change(ctx context.Context, method string) error {
	g.mu.RLock()
	kp := g.signer
	g.mu.RUnlock()
	if kp == nil {
		return gateway.ErrNotSignedIn
	}

	g.txMu.Lock()
	defer g.txMu.Unlock()

	key, err := g.client.ViewAccessKey(ctx, kp.AccountID, kp.PublicKeyString())
	if err != nil {
		return err
	}

	blockHash, err := decodeHash(key.BlockHash)
	if err != nil {
		return err
	}

	tx := transaction{
		SignerID:   kp.AccountID,
		PublicKey:  kp.PublicKey,
		Nonce:      key.Nonce + 1,
		ReceiverID: g.contractID,
		BlockHash:  blockHash,
		Actions: []functionCall{{
			MethodName: method,
			Args:       []byte("{}"),
			Gas:        g.gas,
		}},
	}

	outcome, err := g.client.BroadcastTxCommit(ctx, tx.sign(kp.PrivateKey))
	if err != nil {
		return err
	}
	if outcome.Failed() {
		return fmt.Errorf("transaction %s failed: %s", outcome.TxHash, outcome.Failure)
	}

	g.log.WithFields(logrus.Fields{
		"method":  method,
		"tx_hash": outcome.TxHash,
	}).Debug("Transaction committed")
	return nil
}

func decodeHash(s string) ([32]byte, error) {
	var out [32]byte
	raw, err := base58.Decode(s)
	if err != nil {
		return out, fmt.Errorf("invalid block hash %q: %w", s, err)
	}
	if len(raw) != len(out) {
		return out, fmt.Errorf("invalid block hash length %d", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}
