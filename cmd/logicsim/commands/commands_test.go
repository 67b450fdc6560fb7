package commands

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/circuitfile"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRoot()
	var out, log bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&log)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), log.String(), err
}

func TestParts(t *testing.T) {
	out, _, err := execute(t, "parts")
	require.NoError(t, err)
	assert.Contains(t, out, "SRLatch")
	assert.Contains(t, out, "(s, r) -> (q, nq)")
	assert.Contains(t, out, "NOT")
}

func TestTable(t *testing.T) {
	out, _, err := execute(t, "table", filepath.Join("testdata", "nand.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "a b | out\n0 0 | 1  \n0 1 | 1  \n1 0 | 1  \n1 1 | 0  \n", out)
}

func TestEval(t *testing.T) {
	path := filepath.Join("testdata", "nand.yaml")
	out, _, err := execute(t, "eval", path, "--set", "a=1", "--set", "b=1")
	require.NoError(t, err)
	assert.Equal(t, "out=0\n", out)

	out, _, err = execute(t, "eval", path, "--set", "a=1")
	require.NoError(t, err)
	assert.Equal(t, "out=1\n", out)

	_, _, err = execute(t, "eval", path, "--set", "c=1")
	assert.Error(t, err)
	_, _, err = execute(t, "eval", path, "--set", "a=x")
	assert.Error(t, err)
	_, _, err = execute(t, "eval", path, "--set", "a")
	assert.Error(t, err)
}

func TestEval_sequential(t *testing.T) {
	path := filepath.Join("testdata", "latch.yaml")
	out, _, err := execute(t, "eval", path, "--set", "r=1", "--set", "r=0")
	require.NoError(t, err)
	assert.Equal(t, "q=0\nnq=1\n", out)
}

func TestOscillation(t *testing.T) {
	_, log, err := execute(t, "--max-depth", "64", "eval", filepath.Join("testdata", "ring.yaml"))
	assert.Equal(t, logicsim.ErrOscillation, errors.Cause(err))
	assert.Contains(t, log, "propagation depth exceeded")
}

func TestDebug(t *testing.T) {
	_, log, err := execute(t, "--debug", "eval", filepath.Join("testdata", "nand.yaml"))
	require.NoError(t, err)
	assert.Contains(t, log, "chip added")
	assert.Contains(t, log, "wire connected")
	assert.Contains(t, log, "circuit loaded")

	_, log, err = execute(t, "eval", filepath.Join("testdata", "nand.yaml"))
	require.NoError(t, err)
	assert.Empty(t, log)
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	cb := filepath.Join(dir, "nand.cbor")
	_, _, err := execute(t, "convert", filepath.Join("testdata", "nand.yaml"), cb)
	require.NoError(t, err)

	d, err := circuitfile.Load(cb)
	require.NoError(t, err)
	assert.Equal(t, "Nand", d.Name)

	out, _, err := execute(t, "table", cb)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "1 1 | 0  \n"))

	_, _, err = execute(t, "convert", cb, filepath.Join(dir, "nand.txt"))
	assert.Error(t, err)
}

func TestShell_setup(t *testing.T) {
	o := &options{maxDepth: logicsim.DefaultMaxDepth, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	sh, err := o.shell(nil, []string{"x", "y"}, []string{"z"})
	require.NoError(t, err)
	var buf bytes.Buffer
	sh.SetOutput(&buf)
	require.NoError(t, sh.Exec("show"))
	assert.Equal(t, "x=0 y=0 | z=0\n", buf.String())

	sh, err = o.shell([]string{filepath.Join("testdata", "nand.yaml")}, nil, nil)
	require.NoError(t, err)
	buf.Reset()
	sh.SetOutput(&buf)
	require.NoError(t, sh.Exec("set a=1 b=1"))
	assert.Equal(t, "a=1 b=1 | out=0\n", buf.String())

	sh, err = o.shell([]string{filepath.Join("testdata", "and.yaml")}, nil, nil)
	require.NoError(t, err)
	buf.Reset()
	sh.SetOutput(&buf)
	require.NoError(t, sh.Exec("set a=1 b=1"))
	assert.Equal(t, "a=1 b=1 | out=1\n", buf.String())
	require.NoError(t, sh.Exec("place MyNand"))

	path := filepath.Join(t.TempDir(), "and.cbor")
	require.NoError(t, sh.Exec("save "+path))
	out, _, err := execute(t, "table", path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "1 1 | 1  \n"), out)
}
