package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetSimpleTextEmptyEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(rdr(""), "Name?", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestArgOrPrompt(t *testing.T) {
	var out bytes.Buffer

	got, err := argOrPrompt(context.Background(), []string{"a.txt", "u1"}, 1, rdr(""), "User ID?", &out)
	require.NoError(t, err)
	assert.Equal(t, "u1", got)
	assert.Empty(t, out.String())

	got, err = argOrPrompt(context.Background(), []string{"a.txt"}, 1, rdr(" u2 \n"), "User ID?", &out)
	require.NoError(t, err)
	assert.Equal(t, "u2", got)
	assert.Contains(t, out.String(), "User ID?")
}

func TestPromptLine_GivesUpWhenContextDone(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	_, err := promptLine(ctx, bufio.NewReader(pr), "Name?", &out)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
