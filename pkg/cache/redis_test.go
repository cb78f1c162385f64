package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solveighty/Coffee-Blend/configs"
)

func TestNewRedisCacheFromConfigUnreachable(t *testing.T) {
	// an address that can never accept a connection
	cache := NewRedisCacheFromConfig(configs.RedisConfig{URL: "localhost:0"})

	assert.Nil(t, cache)
}
