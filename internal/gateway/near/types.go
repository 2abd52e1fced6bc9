package near

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      string      `json:"id"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
	ID      string          `json:"id"`
}

// RPCError is an error object returned by the node.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Name    string          `json:"name"`
	Cause   json.RawMessage `json:"cause"`
	Data    json.RawMessage `json:"data"`
}

func (e *RPCError) Error() string {
	if cause := gjson.GetBytes(e.Cause, "name"); cause.Exists() {
		return fmt.Sprintf("rpc error %d: %s (%s)", e.Code, cause.String(), e.Name)
	}
	if data := gjson.ParseBytes(e.Data); data.Exists() {
		return fmt.Sprintf("rpc error %d: %s: %s", e.Code, e.Message, data.String())
	}
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// AccessKey is the part of an access key view needed to sign.
type AccessKey struct {
	Nonce       uint64
	BlockHash   string
	BlockHeight uint64
}

// Outcome is the final status of a committed transaction.
type Outcome struct {
	TxHash       string
	SuccessValue string
	Failure      string // Raw JSON of the failure, empty on success
}

// Failed reports whether the transaction execution failed.
func (o *Outcome) Failed() bool {
	return o.Failure != ""
}
