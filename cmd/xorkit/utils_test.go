package xorkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickString(t *testing.T) {
	local := "local"
	global := "global"
	empty := ""

	tests := []struct {
		name     string
		cli      string
		local    *string
		global   *string
		expected string
	}{
		{name: "cli wins", cli: "cli", local: &local, global: &global, expected: "cli"},
		{name: "local beats global", cli: "", local: &local, global: &global, expected: "local"},
		{name: "global fallback", cli: "", local: nil, global: &global, expected: "global"},
		{name: "empty local is unset", cli: "", local: &empty, global: &global, expected: "global"},
		{name: "all unset", cli: "", local: nil, global: nil, expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pickString(tt.cli, tt.local, tt.global))
		})
	}
}

func TestPickBool(t *testing.T) {
	yes, no := true, false

	assert.True(t, pickBool(true, nil, nil))
	assert.True(t, pickBool(false, &yes, &no))
	assert.False(t, pickBool(false, &no, &yes), "local false overrides global true")
	assert.True(t, pickBool(false, nil, &yes))
	assert.False(t, pickBool(false, nil, nil))
}

func TestOptStrPtr(t *testing.T) {
	assert.Nil(t, optStrPtr("  "))
	if p := optStrPtr(" hex "); assert.NotNil(t, p) {
		assert.Equal(t, "hex", *p)
	}
}
