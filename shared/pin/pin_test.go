package pin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxeroom/shared/pin"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := pin.Hash("8291")
	require.NoError(t, err)
	assert.NotEqual(t, "8291", hash)

	assert.NoError(t, pin.Verify("8291", hash))
	assert.ErrorIs(t, pin.Verify("0000", hash), pin.ErrInvalidPin)
}

func TestHashEmptyPin(t *testing.T) {
	_, err := pin.Hash("")
	assert.Error(t, err)
}

func TestVerifyEmptyInputs(t *testing.T) {
	assert.ErrorIs(t, pin.Verify("", "some-hash"), pin.ErrInvalidPin)
	assert.ErrorIs(t, pin.Verify("1234", ""), pin.ErrInvalidPin)
}
