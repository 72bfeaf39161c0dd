package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsaputra/taskboard-api/internal/service/auth"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher()

	digest, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "correct horse battery", digest)

	assert.NoError(t, hasher.Compare(digest, "correct horse battery"))
	assert.Error(t, hasher.Compare(digest, "wrong password"))
	assert.Error(t, hasher.Compare(digest, ""))
}

func TestBcryptHasher_SaltedDigests(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	// bcrypt salts every digest; equal inputs must not produce equal output.
	assert.NotEqual(t, first, second)
	assert.NoError(t, hasher.Compare(first, "same password"))
	assert.NoError(t, hasher.Compare(second, "same password"))
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher()

	// bcrypt caps input at 72 bytes.
	_, err := hasher.Hash(strings.Repeat("x", 80))
	assert.Error(t, err)
}
