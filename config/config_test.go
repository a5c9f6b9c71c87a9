package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(c, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "45", "BAD": "forty-five"}

	assert.Equal(t, 45, GetInt(c, "TIMEOUT", 60))
	assert.Equal(t, 60, GetInt(c, "BAD", 60))
	assert.Equal(t, 60, GetInt(c, "MISSING", 60))
	assert.Equal(t, 60, GetInt(nil, "TIMEOUT", 60))
}

func TestGetBool(t *testing.T) {
	c := map[string]string{
		"ON":  "true",
		"OFF": "0",
		"BAD": "yes please",
	}

	assert.True(t, GetBool(c, "ON", false))
	assert.False(t, GetBool(c, "OFF", true))
	assert.True(t, GetBool(c, "BAD", true), "unparseable values fall back to the default")
	assert.False(t, GetBool(c, "MISSING", false))
	assert.True(t, GetBool(nil, "ON", true))
}
