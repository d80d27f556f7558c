package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storewalk/storewalk/internal/cli"
	"github.com/storewalk/storewalk/pkg/version"
)

func TestRootCommandHelp(t *testing.T) {
	cmd := cli.NewRootCmd(version.GetVersion())
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "storewalk")
	for _, sub := range []string{"browse", "products", "serve", "version"} {
		assert.Contains(t, out, sub)
	}
}
