package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Frame is the set of actions held during one tick.
type Frame struct {
	Left  bool
	Right bool
	Jump  bool
}

func (f Frame) held(a Action) bool {
	switch a {
	case MoveLeft:
		return f.Left
	case MoveRight:
		return f.Right
	case Jump:
		return f.Jump
	}
	return false
}

// Script replays recorded frames, one per tick. Presses are derived as the
// edge between consecutive frames. After the last frame nothing is held.
type Script struct {
	frames []Frame
	tick   int
}

func NewScript(frames ...Frame) *Script {
	return &Script{frames: append([]Frame(nil), frames...)}
}

func (s *Script) frame(i int) Frame {
	if i < 0 || i >= len(s.frames) {
		return Frame{}
	}
	return s.frames[i]
}

func (s *Script) IsHeld(a Action) bool {
	return s.frame(s.tick).held(a)
}

func (s *Script) IsPressed(a Action) bool {
	return s.frame(s.tick).held(a) && !s.frame(s.tick-1).held(a)
}

func (s *Script) Advance() {
	s.tick++
}

func (s *Script) Len() int {
	return len(s.frames)
}

// Repeat returns n copies of f.
func Repeat(f Frame, n int) []Frame {
	out := make([]Frame, n)
	for i := range out {
		out[i] = f
	}
	return out
}

// ParseScript reads a comma separated list of frames. Each token holds the
// letters L, R and J for the held actions, or "." for none, optionally
// followed by *N to repeat it. "R*20,RJ,.*5" holds right for 20 ticks,
// jumps while still holding right, then idles for 5 ticks.
func ParseScript(src string) (*Script, error) {
	var frames []Frame
	for _, tok := range strings.Split(src, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		body, count := tok, 1
		if i := strings.IndexByte(tok, '*'); i >= 0 {
			n, err := strconv.Atoi(tok[i+1:])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("input: bad repeat in %q", tok)
			}
			body, count = tok[:i], n
		}
		var f Frame
		for _, r := range strings.ToUpper(body) {
			switch r {
			case 'L':
				f.Left = true
			case 'R':
				f.Right = true
			case 'J':
				f.Jump = true
			case '.':
			default:
				return nil, fmt.Errorf("input: unknown action %q in %q", r, tok)
			}
		}
		frames = append(frames, Repeat(f, count)...)
	}
	return NewScript(frames...), nil
}
