package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfigSingleton(t *testing.T) {
	a := GetConfig()
	b := GetConfig()
	assert.NotNil(t, a)
	assert.Same(t, a, b)
}
