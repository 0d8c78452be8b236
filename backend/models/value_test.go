package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"1", int64(1)},
		{"0", int64(0)},
		{"2.5", 2.5},
		{"3.0", int64(3)},
		{"-4", int64(-4)},
		{"", ""},
		{"hello", "hello"},
		{"12abc", "12abc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CoerceValue(tt.raw), "raw=%q", tt.raw)
	}
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(int64(0)))
	assert.False(t, Truthy(0.0))
	assert.False(t, Truthy(""))
	assert.False(t, Truthy(false))

	assert.True(t, Truthy(int64(1)))
	assert.True(t, Truthy(0.5))
	assert.True(t, Truthy("yes"))
	assert.True(t, Truthy(true))
}

func TestNumeric(t *testing.T) {
	assert.Equal(t, 42.0, Numeric(int64(42)))
	assert.Equal(t, 2.5, Numeric(2.5))
	assert.Equal(t, 7.0, Numeric("7"))
	assert.Equal(t, 0.0, Numeric("not a number"))
	assert.Equal(t, 0.0, Numeric(nil))
	assert.Equal(t, 1.0, Numeric(true))
}

func TestUserDataSetOverwrites(t *testing.T) {
	data := UserData{}
	data.Set("2026-01-05", "check", ItemObjective, int64(1))
	data.Set("2026-01-05", "check", ItemObjective, int64(0))

	assert.Equal(t, int64(0), data.Get("2026-01-05", "check"))
	assert.Nil(t, data.Get("2026-01-05", "other"))
	assert.Nil(t, data.Get("2026-01-06", "check"))
}
