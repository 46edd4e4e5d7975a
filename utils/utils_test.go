package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsString(t *testing.T) {
	values := []string{"all", "january"}
	assert.True(t, ContainsString("january", values))
	assert.False(t, ContainsString("January", values))
	assert.False(t, ContainsString("", nil))
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "new york city", NormalizeInput("  New York City\r\n"))
}
