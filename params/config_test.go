package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigByTag(t *testing.T) {
	assert.Equal(t, MainnetChainConfig, ConfigByTag(0x4a))
	assert.Equal(t, TestnetChainConfig, ConfigByTag(0x27))
	assert.Equal(t, SoloChainConfig, ConfigByTag(0xf6))
	assert.Nil(t, ConfigByTag(0x00))
}
