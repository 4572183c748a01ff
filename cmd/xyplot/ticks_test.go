package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicksCommand(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"ticks", "--", "-10", "10", "-10", "10", "600", "600"})
	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "origin at pixel (299.5, 299.5)", lines[0])
	assert.Equal(t, "x division 2", lines[1])
	assert.Contains(t, out.String(), "y division 2")
	assert.Len(t, lines, 1+2*(1+9)+1)
}

func TestTicksCommandInvalid(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"ticks", "--", "1", "1", "-10", "10", "600", "600"})
	assert.Error(t, rootCmd.Execute())
}
