package charstream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s *Stream) string {
	t.Helper()
	var sb strings.Builder
	for {
		r, ok := s.Advance()
		if !ok {
			break
		}
		sb.WriteRune(r)
	}
	require.Nil(t, s.Err())
	return sb.String()
}

func TestStreamAppendsSyntheticNewline(t *testing.T) {
	s := New(strings.NewReader("def foo"))
	got := drain(t, s)
	assert.Equal(t, "def foo\n", got)
	assert.True(t, s.EOF())
}

func TestStreamPreservesExistingNewlines(t *testing.T) {
	s := New(strings.NewReader("a\nb\n"))
	got := drain(t, s)
	assert.Equal(t, "a\nb\n", got)
}

func TestStreamPositionTracksLineAndColumn(t *testing.T) {
	s := New(strings.NewReader("ab\ncd"))

	r, ok := s.Advance()
	require.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 0, s.Position().GetLine())
	assert.Equal(t, 1, s.Position().Column)

	_, _ = s.Advance() // 'b'
	_, _ = s.Advance() // '\n'
	assert.Equal(t, 1, s.Position().GetLine())
	assert.Equal(t, 0, s.Position().Column)
}

func TestStreamPeekDoesNotAdvance(t *testing.T) {
	s := New(strings.NewReader("x"))
	r1, ok1 := s.Peek()
	r2, ok2 := s.Peek()
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, r1, r2)
}

func TestPositionString(t *testing.T) {
	p := NewPosition(3, 7)
	assert.Equal(t, "3:7", p.String())

	var unknown Position
	assert.Equal(t, "?:0", unknown.String())
}
