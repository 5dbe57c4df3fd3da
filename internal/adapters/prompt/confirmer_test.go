package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modup/internal/adapters/prompt"
)

func newConfirmer(t *testing.T, input string) (*prompt.Confirmer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	out := &bytes.Buffer{}
	return prompt.NewWithIO(strings.NewReader(input), out, func() bool { return true }), out
}

func TestConfirmer_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "yes long", input: "Yes\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty defaults to no", input: "\n", want: false},
		{name: "end of input declines", input: "", want: false},
		{name: "answer without newline", input: "y", want: true},
		{name: "unrecognized asks again", input: "maybe\ny\n", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newConfirmer(t, tt.input)
			got, err := c.Confirm("Install module Pester version 5.5.0")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirmer_Confirm_Prompt(t *testing.T) {
	c, out := newConfirmer(t, "y\n")
	_, err := c.Confirm("Remove module Pester version 4.10.1")
	require.NoError(t, err)

	assert.Equal(t, "• Remove module Pester version 4.10.1? [y]es / [n]o / [a]ll: ", out.String())
}

func TestConfirmer_Confirm_All(t *testing.T) {
	c, out := newConfirmer(t, "a\n")

	ok, err := c.Confirm("first")
	require.NoError(t, err)
	assert.True(t, ok)
	out.Reset()

	ok, err = c.Confirm("second")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, out.String(), "no prompt after answering all")
}

func TestConfirmer_Interactive(t *testing.T) {
	c := prompt.NewWithIO(strings.NewReader(""), &bytes.Buffer{}, func() bool { return false })
	assert.False(t, c.Interactive())
}
