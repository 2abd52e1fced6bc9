// Package near implements the counter gateway on a NEAR JSON-RPC node.
package near

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// Client provides NEAR RPC client functionality.
type Client struct {
	rpcURL     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientConfig holds client configuration.
type ClientConfig struct {
	RPCURL    string
	Timeout   time.Duration
	RateLimit float64 // Requests per second, 0 for unlimited
}

// NewClient creates a new NEAR RPC client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("RPC URL required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	return &Client{
		rpcURL: cfg.RPCURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, 1),
	}, nil
}

// Call makes an RPC call to the NEAR node.
func (c *Client) Call(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req := rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      "nearcounter",
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return nil, fmt.Errorf("unmarshal response (status %d): %w", resp.StatusCode, err)
	}

	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}

	return rpcResp.Result, nil
}

// CallFunction runs a view method and returns the raw bytes it returned.
func (c *Client) CallFunction(ctx context.Context, contractID, method string, args []byte) ([]byte, error) {
	result, err := c.Call(ctx, "query", map[string]interface{}{
		"request_type": "call_function",
		"finality":     "final",
		"account_id":   contractID,
		"method_name":  method,
		"args_base64":  base64.StdEncoding.EncodeToString(args),
	})
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(result)
	if errMsg := parsed.Get("error"); errMsg.Exists() {
		return nil, fmt.Errorf("call %s.%s: %s", contractID, method, errMsg.String())
	}

	raw := parsed.Get("result").Array()
	out := make([]byte, len(raw))
	for i, b := range raw {
		out[i] = byte(b.Int())
	}
	return out, nil
}

// ViewAccessKey returns the nonce of an access key and a recent block hash.
func (c *Client) ViewAccessKey(ctx context.Context, accountID, publicKey string) (*AccessKey, error) {
	result, err := c.Call(ctx, "query", map[string]interface{}{
		"request_type": "view_access_key",
		"finality":     "final",
		"account_id":   accountID,
		"public_key":   publicKey,
	})
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(result)
	if errMsg := parsed.Get("error"); errMsg.Exists() {
		return nil, fmt.Errorf("access key %s for %s: %s", publicKey, accountID, errMsg.String())
	}

	return &AccessKey{
		Nonce:       parsed.Get("nonce").Uint(),
		BlockHash:   parsed.Get("block_hash").String(),
		BlockHeight: parsed.Get("block_height").Uint(),
	}, nil
}

// BroadcastTxCommit submits a signed transaction and waits for its outcome.
func (c *Client) BroadcastTxCommit(ctx context.Context, signedTx []byte) (*Outcome, error) {
	result, err := c.Call(ctx, "broadcast_tx_commit", []interface{}{
		base64.StdEncoding.EncodeToString(signedTx),
	})
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(result)
	outcome := &Outcome{
		TxHash: parsed.Get("transaction.hash").String(),
	}
	if failure := parsed.Get("status.Failure"); failure.Exists() {
		outcome.Failure = failure.Raw
	}
	if success := parsed.Get("status.SuccessValue"); success.Exists() {
		outcome.SuccessValue = success.String()
	}
	return outcome, nil
}
