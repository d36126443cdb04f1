package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRateLimiter(t *testing.T) {
	l := NewUserRateLimiter(3)
	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("a"))
	}
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))

	assert.NotNil(t, NewUserRateLimiter(0))
}
