package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	hash, err := Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	c := NewChecker(hash)
	assert.NoError(t, c.Check("s3cret"))
	assert.ErrorIs(t, c.Check("wrong"), ErrMismatch)
	assert.ErrorIs(t, c.Check(""), ErrEmptyPassword)
}

func TestHash_Empty(t *testing.T) {
	_, err := Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestCheck_BrokenHash(t *testing.T) {
	err := NewChecker("not-a-bcrypt-hash").Check("s3cret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}
