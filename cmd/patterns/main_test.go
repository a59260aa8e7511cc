package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunPattern(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--pattern", "composite"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "4 children\nLeaf\nLeaf\nLeaf2\n2 children\nLeaf\nLeaf2\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunAll(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "== composite\n4 children\n")
	assert.Contains(t, stdout.String(), "== decorator\noriginal coffee\n")
	assert.Contains(t, stdout.String(), "== visitor\nConcreteVisitor1 visit concrete element1\n")
	assert.Contains(t, stdout.String(), "== command\naction 1\naction 2\n")
	assert.Contains(t, stdout.String(), "== abstract-factory\nproductB\nproduct2B\n")
	assert.Contains(t, stdout.String(), "== builder\nAgreat, Agreat, Agreat\n")
}

func TestRunEnv(t *testing.T) {
	t.Setenv("PATTERNS_PATTERN", "visitor")
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, 4, bytes.Count(stdout.Bytes(), []byte("\n")))
}

func TestRunVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-v", "-p", "decorator"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "running demo")
}

func TestRunUnknown(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-p", "singleton"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), `unknown pattern "singleton"`)
	assert.Empty(t, stdout.String())
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"--nope"}, &stdout, &stderr))
	assert.Equal(t, 0, run([]string{"--help"}, &stdout, &stderr))
}
