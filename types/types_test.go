package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAccount_Validate(t *testing.T) {
	valid := CreateAccount{
		Owner:        "0x1234567890123456789012345678901234567890",
		EmailAddress: "a@b.com",
	}
	assert.NoError(t, valid.Validate())

	badOwner := valid
	badOwner.Owner = "not-an-address"
	assert.Error(t, badOwner.Validate())

	badEmail := valid
	badEmail.EmailAddress = "nope"
	assert.Error(t, badEmail.Validate())
}

func TestCreatePaymentLink_Validate(t *testing.T) {
	valid := CreatePaymentLink{
		Description: "Payment for service",
		Amount:      ERC20Amount{Amount: "10", Token: usdc()},
		Network:     NetworkSeiTestnet,
	}
	assert.NoError(t, valid.Validate())

	missingNetwork := valid
	missingNetwork.Network = ""
	assert.Error(t, missingNetwork.Validate())

	badAmount := valid
	badAmount.Amount.Amount = "-1"
	assert.Error(t, badAmount.Validate())

	// Recipient is optional, but when present must be an address.
	badRecipient := valid
	badRecipient.RecipientAddress = "xyz"
	assert.Error(t, badRecipient.Validate())
}

func TestCreateContract_Validate(t *testing.T) {
	valid := CreateContract{
		Name:    "Senior Engineer",
		Company: "Acme",
		Payroll: Payroll{
			Frequency: PayrollMonthly,
			Amount:    ERC20Amount{Amount: "5000", Token: usdc()},
		},
		Network: NetworkSei,
	}
	assert.NoError(t, valid.Validate())

	missingCompany := valid
	missingCompany.Company = ""
	assert.Error(t, missingCompany.Validate())
}
