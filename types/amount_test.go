package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usdc() Token {
	return Token{
		Name:     "USDC",
		Address:  "0xA0b86a33E6441B63563F7eC2aB5f18b4a4D5e8E9",
		Symbol:   "USDC",
		Decimals: 6,
		PriceUSD: 1.0,
	}
}

func TestERC20Amount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"whole", "100", false},
		{"max precision", "0.000001", false},
		{"zero", "0", false},
		{"empty", "", true},
		{"negative", "-1", true},
		{"too precise", "0.0000001", true},
		{"not a number", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ERC20Amount{Amount: tt.amount, Token: usdc()}
			err := a.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestERC20Amount_Atomic(t *testing.T) {
	a := ERC20Amount{Amount: "1.5", Token: usdc()}
	atomic, err := a.Atomic()
	require.NoError(t, err)
	assert.Equal(t, "1500000", atomic)
}

func TestERC20Amount_USDValue(t *testing.T) {
	token := usdc()
	token.PriceUSD = 2.5

	v, err := ERC20Amount{Amount: "4", Token: token}.USDValue()
	require.NoError(t, err)
	assert.Equal(t, "10", v.String())
}

func TestNetwork_ChainID(t *testing.T) {
	assert.Equal(t, "1329", NetworkSei.ChainID())
	assert.Equal(t, "1328", NetworkSeiTestnet.ChainID())
	assert.Empty(t, Network("unknown").ChainID())

	assert.True(t, NetworkSeiTestnet.Supported())
	assert.False(t, Network("unknown").Supported())
}
