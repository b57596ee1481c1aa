package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptEdges(t *testing.T) {
	s := NewScript(
		Frame{Jump: true},
		Frame{Jump: true, Right: true},
		Frame{},
		Frame{Jump: true},
	)

	type step struct {
		held, pressed, right bool
	}
	want := []step{
		{true, true, false},
		{true, false, true},
		{false, false, false},
		{true, true, false},
		{false, false, false},
	}
	for i, w := range want {
		assert.Equal(t, w.held, s.IsHeld(Jump), "tick %d held", i)
		assert.Equal(t, w.pressed, s.IsPressed(Jump), "tick %d pressed", i)
		assert.Equal(t, w.right, s.IsHeld(MoveRight), "tick %d right", i)
		// querying twice must not change the answer
		assert.Equal(t, w.pressed, s.IsPressed(Jump), "tick %d pressed again", i)
		s.Advance()
	}
}

func TestParseScript(t *testing.T) {
	tests := []struct {
		src     string
		want    []Frame
		wantErr bool
	}{
		{"R*2,RJ,.", []Frame{{Right: true}, {Right: true}, {Right: true, Jump: true}, {}}, false},
		{" l , lr ", []Frame{{Left: true}, {Left: true, Right: true}}, false},
		{"", nil, false},
		{".*0,J", []Frame{{Jump: true}}, false},
		{"X", nil, true},
		{"R*x", nil, true},
		{"R*-1", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s, err := ParseScript(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tt.want), s.Len())
			for i, f := range tt.want {
				assert.Equal(t, f, s.frame(i))
			}
		})
	}
}

func TestNoneAndActionNames(t *testing.T) {
	var src Source = None{}
	assert.False(t, src.IsHeld(Jump))
	assert.False(t, src.IsPressed(MoveLeft))
	assert.Equal(t, "move_left", MoveLeft.String())
	assert.Equal(t, "move_right", MoveRight.String())
	assert.Equal(t, "jump", Jump.String())
	assert.Equal(t, "unknown", Action(9).String())
}
