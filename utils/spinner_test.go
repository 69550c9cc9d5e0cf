package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_StopMessageIsLast(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner(&buf, "working", time.Millisecond, false)
	s.StopMsg = "done\n"
	s.Start()
	s.Start()
	time.Sleep(10 * time.Millisecond)
	s.Stop()
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "working")
	assert.True(t, strings.HasSuffix(out, "done\n"))
	assert.Equal(t, 1, strings.Count(out, "done\n"))
}

func TestSpinner_StopWithoutStart(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner(&buf, "working", time.Millisecond, false)
	s.StopMsg = "done\n"
	s.Stop()
	assert.Zero(t, buf.Len())
}
