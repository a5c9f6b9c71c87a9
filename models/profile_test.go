package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileInitial(t *testing.T) {
	assert.Equal(t, "S", (&Profile{FullName: "sari"}).Initial())
	assert.Equal(t, "B", (&Profile{FullName: "Budi Santoso"}).Initial())
	assert.Equal(t, "?", (&Profile{}).Initial())
}
