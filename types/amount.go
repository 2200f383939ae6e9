package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ERC20Amount pairs a decimal-string amount with the token it is denominated
// in. The amount is a non-negative decimal string whose implied precision
// must not exceed the token's decimal count.
type ERC20Amount struct {
	Amount string `json:"amount"`
	Token  Token  `json:"token"`
}

// Decimal parses the amount string.
func (a ERC20Amount) Decimal() (decimal.Decimal, error) {
	if a.Amount == "" {
		return decimal.Decimal{}, fmt.Errorf("amount cannot be empty")
	}
	d, err := decimal.NewFromString(a.Amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount format: %w", err)
	}
	return d, nil
}

// Atomic returns the amount scaled to the token's atomic units as a decimal
// integer string, e.g. "1.5" USDC (6 decimals) -> "1500000".
func (a ERC20Amount) Atomic() (string, error) {
	d, err := a.Decimal()
	if err != nil {
		return "", err
	}
	return d.Shift(int32(a.Token.Decimals)).String(), nil
}

// USDValue returns the amount multiplied by the token's USD reference price.
func (a ERC20Amount) USDValue() (decimal.Decimal, error) {
	d, err := a.Decimal()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.Mul(decimal.NewFromFloat(a.Token.PriceUSD)), nil
}

// Validate checks the amount is a non-negative decimal whose precision does
// not exceed the token's decimal count. Validation is ultimately a server
// concern, but clients should not construct invalid values.
func (a ERC20Amount) Validate() error {
	d, err := a.Decimal()
	if err != nil {
		return err
	}
	if d.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	if int(-d.Exponent()) > a.Token.Decimals {
		return fmt.Errorf("amount %s exceeds %s precision of %d decimals",
			a.Amount, a.Token.Symbol, a.Token.Decimals)
	}
	return nil
}
