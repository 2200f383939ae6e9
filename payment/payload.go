// Package payment implements the client side of the x402 pay-per-request
// protocol: given a wallet signer, it produces an HTTP transport capable of
// paying for a request and attaching proof of payment.
package payment

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// ProtocolVersion is the x402 protocol version this client speaks.
const ProtocolVersion = 1

// SchemeExact is the only payment scheme this client can satisfy.
const SchemeExact = "exact"

// PaymentHeader carries the encoded payment payload on the retried request.
const PaymentHeader = "X-PAYMENT"

// Requirements describes one payment option a resource server accepts,
// as returned in the 402 response body.
type Requirements struct {
	Scheme string `json:"scheme"`

	Network string `json:"network"`

	// Maximum amount required to pay for the resource, in atomic units of
	// the asset. A string because Go does not support uint256.
	MaxAmountRequired string `json:"maxAmountRequired"`

	// URL of the resource to pay for.
	Resource string `json:"resource"`

	Description string `json:"description"`

	MimeType string `json:"mimeType"`

	// Address to which the payment must be sent.
	PayTo string `json:"payTo"`

	// Maximum time in seconds for the resource server to respond.
	MaxTimeoutSeconds int `json:"maxTimeoutSeconds"`

	// Address of the EIP-3009 compliant ERC20 contract.
	Asset string `json:"asset"`

	// Scheme-specific extras. For `exact` on EVM this carries the EIP-712
	// domain `name` and `version` of the asset contract.
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// Required is the 402 response body listing acceptable payment options.
type Required struct {
	X402Version int            `json:"x402Version"`
	Accepts     []Requirements `json:"accepts"`
	Error       string         `json:"error"`
}

// Payload is the outer payment envelope sent in the X-PAYMENT header,
// base64-encoded JSON.
type Payload struct {
	X402Version int    `json:"x402Version"`
	Scheme      string `json:"scheme"`
	Network     string `json:"network"`

	// Base64-encoded JSON of the chain-specific payload.
	Payload string `json:"payload"`
}

// EvmPayload is the chain-specific payload for EVM networks.
type EvmPayload struct {
	Type    string          `json:"type"` // "eip3009"
	EIP3009 *EIP3009Payload `json:"eip3009,omitempty"`
}

type EIP3009Payload struct {
	// 65-byte ECDSA signature (r||s||v), hex with 0x prefix.
	Signature     string        `json:"signature"`
	Authorization Authorization `json:"authorization"`
}

// Authorization is an EIP-3009 TransferWithAuthorization message.
type Authorization struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`       // uint256, decimal string
	ValidAfter  string `json:"validAfter"`  // uint256 timestamp
	ValidBefore string `json:"validBefore"` // uint256 timestamp
	Nonce       string `json:"nonce"`       // bytes32, 0x hex
}

// Encode serializes the envelope to the X-PAYMENT header value.
func (p Payload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal payment payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodePayload parses an X-PAYMENT header value back into the envelope.
func DecodePayload(header string) (*Payload, error) {
	data, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return nil, fmt.Errorf("decode payment header: %w", err)
	}
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal payment payload: %w", err)
	}
	return &p, nil
}

// DecodeEvmPayload parses the inner base64 payload of an EVM envelope.
func (p Payload) DecodeEvmPayload() (*EvmPayload, error) {
	data, err := base64.StdEncoding.DecodeString(p.Payload)
	if err != nil {
		return nil, fmt.Errorf("decode evm payload: %w", err)
	}
	var inner EvmPayload
	if err := json.Unmarshal(data, &inner); err != nil {
		return nil, fmt.Errorf("unmarshal evm payload: %w", err)
	}
	return &inner, nil
}
