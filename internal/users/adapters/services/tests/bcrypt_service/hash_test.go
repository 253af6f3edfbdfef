package bcrypt_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cryptobcrypt "golang.org/x/crypto/bcrypt"

	adapters "github.com/TimShare/SkillMap/internal/users/adapters/services"
	"github.com/TimShare/SkillMap/internal/users/domain/services"
)

const (
	msgEmptyPasswordError       = "should return error for empty password"
	msgNoErrorValidPassword     = "should not return error for valid password"
	msgHashNotEmpty             = "hash should not be empty"
	msgErrorInvalidPassword     = "error should be err invalid password"
	msgHashVerifiable           = "created hash should be verifiable"
	msgHashEmptyInvalidPassword = "hash should be empty for invalid password"
	msgHashDiffersFromPlaintext = "hash should differ from the plaintext"
	msgNoErrorFirstHash         = "should not return error for first hash"
	msgNoErrorSecondHash        = "should not return error for second hash"
	msgDifferentHashesSamePwd   = "hashes of same password should differ due to salt"
)

func TestHashSuccess(t *testing.T) {
	service := adapters.NewBcrypt(10)
	validPassword := "validPassword123"
	ctx := context.Background()

	hash, err := service.Hash(ctx, validPassword)

	require.NoError(t, err, msgNoErrorValidPassword)
	assert.NotEmpty(t, hash, msgHashNotEmpty)
	assert.NotEqual(t, validPassword, hash, msgHashDiffersFromPlaintext)

	err = cryptobcrypt.CompareHashAndPassword([]byte(hash), []byte(validPassword))
	assert.NoError(t, err, msgHashVerifiable)
}

func TestHashEmptyPassword(t *testing.T) {
	service := adapters.NewBcrypt(10)
	ctx := context.Background()

	hash, err := service.Hash(ctx, "")

	require.Error(t, err, msgEmptyPasswordError)
	assert.Empty(t, hash, msgHashEmptyInvalidPassword)
	assert.ErrorIs(t, err, services.ErrInvalidPassword, msgErrorInvalidPassword)
}

func TestHashSamePasswordDifferentHashes(t *testing.T) {
	service := adapters.NewBcrypt(10)
	password := "samePassword123"
	ctx := context.Background()

	hash1, err1 := service.Hash(ctx, password)
	hash2, err2 := service.Hash(ctx, password)

	require.NoError(t, err1, msgNoErrorFirstHash)
	require.NoError(t, err2, msgNoErrorSecondHash)
	assert.NotEqual(t, hash1, hash2, msgDifferentHashesSamePwd)

	valid1, err := service.Verify(ctx, password, hash1)
	require.NoError(t, err)
	valid2, err := service.Verify(ctx, password, hash2)
	require.NoError(t, err)
	assert.True(t, valid1, msgHashVerifiable)
	assert.True(t, valid2, msgHashVerifiable)
}

func TestHashDifferentPasswordsDifferentHashes(t *testing.T) {
	service := adapters.NewBcrypt(10)
	ctx := context.Background()

	hash1, err1 := service.Hash(ctx, "password123")
	hash2, err2 := service.Hash(ctx, "password456")

	assert.NoError(t, err1, msgNoErrorFirstHash)
	assert.NoError(t, err2, msgNoErrorSecondHash)
	assert.NotEqual(t, hash1, hash2)
}
