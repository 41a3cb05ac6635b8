package vine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceToken(t *testing.T) {
	token := DeviceToken()

	assert.Len(t, token, 64)
	assert.Regexp(t, `^[0-9a-f]{64}$`, token)
	assert.Equal(t, token, DeviceToken(), "token is stable for the process lifetime")
}
