package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/epicycle"
	"honnef.co/go/epicycle/fourier"
	"honnef.co/go/epicycle/internal/server"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestAnalyzeAndReconstruct(t *testing.T) {
	t.Cleanup(func() { epicycle.SetLogger(nil) })

	out, err := runCmd(t, "", "analyze", "-samples", "128", "M 0,0 L 2,0 L 2,2 L 0,2 L 0,0")
	require.NoError(t, err)
	var terms []fourier.Term
	require.NoError(t, json.Unmarshal([]byte(out), &terms))
	require.NotEmpty(t, terms)

	out, err = runCmd(t, out, "reconstruct", "-segments", "8")
	require.NoError(t, err)
	p, err := epicycle.ParsePath(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, 9, p.Len())
	// With all terms, t = 0 lands on the first sample.
	assert.InDelta(t, 0, p.Start().X, 1e-6)
	assert.InDelta(t, 0, p.Start().Y, 1e-6)
}

func TestSchedule(t *testing.T) {
	t.Cleanup(func() { epicycle.SetLogger(nil) })

	out, err := runCmd(t, "", "schedule", "-max-groups", "2", "M 0,0 L 1,0 L 1,1 L 0,0")
	require.NoError(t, err)
	var script []server.ScriptEntry
	require.NoError(t, json.Unmarshal([]byte(out), &script))
	require.NotEmpty(t, script)
	assert.LessOrEqual(t, len(script), 2*2+1)
	assert.Equal(t, 1.0, script[len(script)-1].Offset)
}

func TestPolygon(t *testing.T) {
	out, err := runCmd(t, "", "polygon", "-sides", "5", "-skip", "1")
	require.NoError(t, err)
	p, err := epicycle.ParsePath(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, 6, p.Len())
}

func TestErrors(t *testing.T) {
	_, err := runCmd(t, "")
	assert.ErrorIs(t, err, errUsage)

	_, err = runCmd(t, "", "transmogrify")
	assert.ErrorIs(t, err, errUsage)

	_, err = runCmd(t, "", "analyze")
	assert.Error(t, err)

	_, err = runCmd(t, "", "analyze", "-samples", "100", "M 0,0 L 1,1")
	assert.ErrorIs(t, err, fourier.ErrNotPowerOfTwo)

	_, err = runCmd(t, "[]", "reconstruct")
	assert.ErrorIs(t, err, fourier.ErrNoTerms)
}
