package usecase_test

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/stores/auth/usecase"
)

const signingMsg = "Welcome to Rafflehouse!\n\nSigning as %s"

func TestSignAndParseToken(t *testing.T) {
	key, err := crypto.GenerateKey()
	assert.NoError(t, err)
	address := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex()).ToLower()

	msg := fmt.Sprintf(signingMsg, address.ToLowerStr())
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
	assert.NoError(t, err)

	c := ctx.Background()
	u := usecase.New("jwt-secret", signingMsg)
	tkn, err := u.SignToken(c, address, hexutil.Encode(sig))
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	ads, err := u.ParseToken(c, tkn)
	assert.NoError(t, err)
	assert.Equal(t, string(address), ads)
}

func TestSignTokenRejectsWrongSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	assert.NoError(t, err)
	other := domain.Address("0x00000000000000000000000000000000000eeee1")

	msg := fmt.Sprintf(signingMsg, other.ToLowerStr())
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
	assert.NoError(t, err)

	u := usecase.New("jwt-secret", signingMsg)
	_, err = u.SignToken(ctx.Background(), other, hexutil.Encode(sig))
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	key, err := crypto.GenerateKey()
	assert.NoError(t, err)
	address := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex()).ToLower()

	msg := fmt.Sprintf(signingMsg, address.ToLowerStr())
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
	assert.NoError(t, err)

	c := ctx.Background()
	tkn, err := usecase.New("secret-a", signingMsg).SignToken(c, address, hexutil.Encode(sig))
	assert.NoError(t, err)

	_, err = usecase.New("secret-b", signingMsg).ParseToken(c, tkn)
	assert.Error(t, err)
}
