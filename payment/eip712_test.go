package payment

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDomain() Domain {
	return Domain{
		Name:              "USDC",
		Version:           "2",
		ChainID:           "1328",
		VerifyingContract: "0x036CbD53842c5426634e7929541eC2318f3dCF7e",
	}
}

func testAuthorization() Authorization {
	return Authorization{
		From:        "0xE4d365a5a8fC0DCEE9E3C5985D7FcBab8B4A0fE1",
		To:          "0x384Aa214be0B279cbf211e9b2C992d8633F77848",
		Value:       "10000",
		ValidAfter:  "1763450282",
		ValidBefore: "1763451182",
		Nonce:       "0xf408d6d1f1d1bca7c6396ed30f00a46ca4e5b073fff983e42b348776a5aa651c",
	}
}

func TestDomainSeparator_Deterministic(t *testing.T) {
	a, err := DomainSeparator(testDomain())
	require.NoError(t, err)
	b, err := DomainSeparator(testDomain())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other := testDomain()
	other.ChainID = "1329"
	c, err := DomainSeparator(other)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestDomainSeparator_Incomplete(t *testing.T) {
	d := testDomain()
	d.Name = ""
	_, err := DomainSeparator(d)
	assert.Error(t, err)
}

func TestAuthorizationDigest_FieldSensitivity(t *testing.T) {
	base, err := AuthorizationDigest(testDomain(), testAuthorization())
	require.NoError(t, err)

	changed := testAuthorization()
	changed.Value = "10001"
	other, err := AuthorizationDigest(testDomain(), changed)
	require.NoError(t, err)
	assert.NotEqual(t, base, other)
}

func TestAuthorizationDigest_InvalidValue(t *testing.T) {
	auth := testAuthorization()
	auth.Value = "ten"
	_, err := AuthorizationDigest(testDomain(), auth)
	assert.Error(t, err)
}

func TestSignAndRecover(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := NewPrivateKeySigner(key)

	digest, err := AuthorizationDigest(testDomain(), testAuthorization())
	require.NoError(t, err)

	sig, err := signer.SignDigest(digest)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	assert.GreaterOrEqual(t, sig[64], byte(27))

	recovered, err := RecoverSigner(digest, sig)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), recovered)
}

func TestHasAccount(t *testing.T) {
	assert.False(t, HasAccount(nil))

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	assert.True(t, HasAccount(NewPrivateKeySigner(key)))
}
