package near

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
)

const (
	keyTypeED25519     = 0
	actionFunctionCall = 2
)

// DefaultGas is attached to every change call (30 Tgas).
const DefaultGas uint64 = 30_000_000_000_000

// borshWriter encodes values in the layout the NEAR runtime expects.
type borshWriter struct {
	buf bytes.Buffer
}

func (w *borshWriter) u8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *borshWriter) u32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *borshWriter) u64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// u128 writes a value that fits in 64 bits as a little-endian u128.
func (w *borshWriter) u128(v uint64) {
	w.u64(v)
	w.u64(0)
}

func (w *borshWriter) string(s string) {
	w.u32(uint32(len(s)))
	w.buf.WriteString(s)
}

func (w *borshWriter) bytes(b []byte) {
	w.u32(uint32(len(b)))
	w.buf.Write(b)
}

func (w *borshWriter) fixed(b []byte) {
	w.buf.Write(b)
}

type functionCall struct {
	MethodName string
	Args       []byte
	Gas        uint64
	Deposit    uint64 // yoctoNEAR
}

type transaction struct {
	SignerID   string
	PublicKey  ed25519.PublicKey
	Nonce      uint64
	ReceiverID string
	BlockHash  [32]byte
	Actions    []functionCall
}

func (tx *transaction) encode() []byte {
	var w borshWriter
	w.string(tx.SignerID)
	w.u8(keyTypeED25519)
	w.fixed(tx.PublicKey)
	w.u64(tx.Nonce)
	w.string(tx.ReceiverID)
	w.fixed(tx.BlockHash[:])
	w.u32(uint32(len(tx.Actions)))
	for _, a := range tx.Actions {
		w.u8(actionFunctionCall)
		w.string(a.MethodName)
		w.bytes(a.Args)
		w.u64(a.Gas)
		w.u128(a.Deposit)
	}
	return w.buf.Bytes()
}

// sign returns the borsh encoding of the signed transaction.
func (tx *transaction) sign(key ed25519.PrivateKey) []byte {
	raw := tx.encode()
	hash := sha256.Sum256(raw)
	sig := ed25519.Sign(key, hash[:])

	w := borshWriter{}
	w.fixed(raw)
	w.u8(keyTypeED25519)
	w.fixed(sig)
	return w.buf.Bytes()
}
