package applier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExecRunner(t *testing.T) {
	r := NewExecRunner()
	require.NotNil(t, r)
	assert.NotNil(t, r.Stdout)
	assert.NotNil(t, r.Stderr)
}

func TestExecRunner_Run_ExitCodes(t *testing.T) {
	r := NewExecRunner()

	code, err := r.Run("/bin/sh", "-c", "exit 0")
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = r.Run("/bin/sh", "-c", "exit 7")
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}

func TestExecRunner_Run_LaunchFailure(t *testing.T) {
	r := NewExecRunner()

	code, err := r.Run("/definitely-not-exists")
	require.Error(t, err)
	assert.Equal(t, -1, code)
}
