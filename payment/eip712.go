package payment

import (
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Domain is the EIP-712 domain of the asset contract an authorization
// is signed against.
type Domain struct {
	Name              string
	Version           string
	ChainID           string // decimal string
	VerifyingContract string // 0x address
}

var (
	domainTypeHash = crypto.Keccak256Hash([]byte(
		"EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"))

	transferAuthTypeHash = crypto.Keccak256Hash([]byte(
		"TransferWithAuthorization(address from,address to,uint256 value,uint256 validAfter,uint256 validBefore,bytes32 nonce)"))
)

// pad32 left-pads a big.Int to a 32-byte word.
func pad32(i *big.Int) []byte {
	b := i.Bytes()
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

// address32 left-pads an address into a 32-byte word.
func address32(a common.Address) []byte {
	out := make([]byte, 32)
	copy(out[12:], a.Bytes())
	return out
}

func decimalToBig(s string) (*big.Int, error) {
	n := new(big.Int)
	if _, ok := n.SetString(s, 10); !ok {
		return nil, errors.New("invalid decimal integer string")
	}
	return n, nil
}

// hexToBytes32 converts hex (with or without 0x) to a 32-byte array.
func hexToBytes32(hexStr string) ([32]byte, error) {
	var out [32]byte
	if len(hexStr) >= 2 && hexStr[:2] == "0x" {
		hexStr = hexStr[2:]
	}
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return out, err
	}
	if len(b) > 32 {
		copy(out[:], b[len(b)-32:])
		return out, nil
	}
	copy(out[32-len(b):], b)
	return out, nil
}

// DomainSeparator builds the EIP-712 domain separator:
// keccak256(abi.encode(domainTypeHash, keccak256(name), keccak256(version),
// chainId, verifyingContract)).
func DomainSeparator(d Domain) (common.Hash, error) {
	if d.Name == "" || d.Version == "" || d.ChainID == "" || d.VerifyingContract == "" {
		return common.Hash{}, errors.New("incomplete EIP-712 domain")
	}

	chainID, err := decimalToBig(d.ChainID)
	if err != nil {
		return common.Hash{}, err
	}

	return crypto.Keccak256Hash(
		domainTypeHash.Bytes(),
		crypto.Keccak256Hash([]byte(d.Name)).Bytes(),
		crypto.Keccak256Hash([]byte(d.Version)).Bytes(),
		pad32(chainID),
		address32(common.HexToAddress(d.VerifyingContract)),
	), nil
}

// AuthorizationDigest builds the final EIP-712 digest for an EIP-3009
// TransferWithAuthorization message: keccak256("\x19\x01" || domainSeparator
// || structHash).
func AuthorizationDigest(domain Domain, auth Authorization) (common.Hash, error) {
	domainSep, err := DomainSeparator(domain)
	if err != nil {
		return common.Hash{}, err
	}

	value, err := decimalToBig(auth.Value)
	if err != nil {
		return common.Hash{}, err
	}
	validAfter, err := decimalToBig(auth.ValidAfter)
	if err != nil {
		return common.Hash{}, err
	}
	validBefore, err := decimalToBig(auth.ValidBefore)
	if err != nil {
		return common.Hash{}, err
	}
	nonce, err := hexToBytes32(auth.Nonce)
	if err != nil {
		return common.Hash{}, err
	}

	structHash := crypto.Keccak256Hash(
		transferAuthTypeHash.Bytes(),
		address32(common.HexToAddress(auth.From)),
		address32(common.HexToAddress(auth.To)),
		pad32(value),
		pad32(validAfter),
		pad32(validBefore),
		nonce[:],
	)

	return crypto.Keccak256Hash(
		append(append([]byte{0x19, 0x01}, domainSep.Bytes()...), structHash.Bytes()...),
	), nil
}

// RecoverSigner recovers the address that produced sig over digest.
// sig must be 65 bytes (r||s||v); v may be 0/1 or 27/28.
func RecoverSigner(digest common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != 65 {
		return common.Address{}, errors.New("signature must be 65 bytes")
	}

	s := make([]byte, 65)
	copy(s, sig)
	if s[64] >= 27 {
		s[64] -= 27
	}

	pub, err := crypto.SigToPub(digest.Bytes(), s)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}
