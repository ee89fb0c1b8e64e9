package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidLatitude(t *testing.T) {
	assert.True(t, ValidLatitude(0))
	assert.True(t, ValidLatitude(90))
	assert.True(t, ValidLatitude(-90))
	assert.False(t, ValidLatitude(90.0001))
	assert.False(t, ValidLatitude(-91))
}

func TestValidLongitude(t *testing.T) {
	assert.True(t, ValidLongitude(0))
	assert.True(t, ValidLongitude(180))
	assert.True(t, ValidLongitude(-180))
	assert.False(t, ValidLongitude(180.0001))
	assert.False(t, ValidLongitude(-181))
}
