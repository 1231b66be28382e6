package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errs bytes.Buffer
	cmd := command()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	err := cmd.Execute()
	return out.String(), errs.String(), err
}

func TestArgs(t *testing.T) {
	out, errs, err := run(t, "", "1+2", "7/2", "2 + 3 * (4 - 1)")
	require.NoError(t, err)
	assert.Equal(t, "3\n3.5\n11\n", out)
	assert.Empty(t, errs)
}

func TestNegativeArg(t *testing.T) {
	out, _, err := run(t, "", "--", "-2.5 + 3*(4-1)")
	require.NoError(t, err)
	assert.Equal(t, "6.5\n", out)
}

func TestStdin(t *testing.T) {
	out, _, err := run(t, "1+1\n\n  2*3  \n10/4\n")
	require.NoError(t, err)
	assert.Equal(t, "2\n6\n2.5\n", out)
}

func TestInFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "exprs")
	require.NoError(t, os.WriteFile(name, []byte("6/3\n0.1+0.2\n"), 0o600))
	out, _, err := run(t, "ignored", "--in", name, "5")
	require.NoError(t, err)
	assert.Equal(t, "5\n2\n0.3\n", out)

	_, _, err = run(t, "", "--in", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestEcho(t *testing.T) {
	out, _, err := run(t, "", "--echo", "1+2*3")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 * + : 7\n", out)
}

func TestErrors(t *testing.T) {
	out, errs, err := run(t, "", "1/0", "4*2", "(1+2")
	require.Error(t, err)
	assert.Equal(t, "2 of 3 expressions failed", err.Error())
	assert.Equal(t, "8\n", out)
	assert.Contains(t, errs, "1/0: 2: division by zero")
	assert.Contains(t, errs, "(1+2: 1: unbalanced brackets")
}

func TestModes(t *testing.T) {
	out, _, err := run(t, "", "--float", "0.1+0.2")
	require.NoError(t, err)
	assert.Equal(t, "0.30000000000000004\n", out)

	out, _, err = run(t, "", "--prec", "3", "2/3")
	require.NoError(t, err)
	assert.Equal(t, "0.667\n", out)

	out, _, err = run(t, "", "--bits", "64", "1/4", "6/3")
	require.NoError(t, err)
	assert.Equal(t, "0.25\n2\n", out)

	out, _, err = run(t, "", "--prec", "4294967295", "1.5*1.5")
	assert.Error(t, err)
	assert.Empty(t, out)
}
