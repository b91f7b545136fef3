package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNullable(t *testing.T) {
	v := 14.620001

	assert.Equal(t, "", formatNullable(nil))
	assert.Equal(t, "14.620001", formatNullable(&v))
}
