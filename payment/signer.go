package payment

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer signs EIP-712 digests on behalf of one blockchain account. It is
// the wallet-side collaborator for payment-gated calls.
type Signer interface {
	// Address returns the bound account, or the zero address when unbound.
	Address() common.Address

	// SignDigest returns a 65-byte signature (r||s||v) with v in {27,28}.
	SignDigest(digest common.Hash) ([]byte, error)
}

// HasAccount reports whether the signer is usable for payments. A nil
// signer, or one without a bound account, cannot pay.
func HasAccount(s Signer) bool {
	return s != nil && s.Address() != (common.Address{})
}

// PrivateKeySigner signs with a raw secp256k1 private key.
type PrivateKeySigner struct {
	key  *ecdsa.PrivateKey
	addr common.Address
}

func NewPrivateKeySigner(key *ecdsa.PrivateKey) *PrivateKeySigner {
	return &PrivateKeySigner{
		key:  key,
		addr: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// PrivateKeySignerFromHex parses a hex-encoded private key, with or without
// a 0x prefix.
func PrivateKeySignerFromHex(hexKey string) (*PrivateKeySigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return NewPrivateKeySigner(key), nil
}

func (s *PrivateKeySigner) Address() common.Address {
	return s.addr
}

func (s *PrivateKeySigner) SignDigest(digest common.Hash) ([]byte, error) {
	sig, err := crypto.Sign(digest.Bytes(), s.key)
	if err != nil {
		return nil, fmt.Errorf("sign digest: %w", err)
	}
	// go-ethereum yields v in {0,1}; EIP-3009 contracts expect {27,28}.
	if sig[64] < 27 {
		sig[64] += 27
	}
	return sig, nil
}
