//go:build !windows

package launch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/nvtrim/internal/config"
	"github.com/conn-castle/nvtrim/internal/testutil"
)

func TestLaunchExecutesInstallerStub(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubExpectArg(t, dir, "setup.exe", "-passive")

	res, err := New(config.Default().Installer).Launch(context.Background(), dir)
	require.NoError(t, err)
	assert.True(t, res.Success())
}

func TestLaunchReportsInstallerExitCode(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithExit(t, dir, "setup.exe", 3)

	res, err := New(config.Default().Installer).Launch(context.Background(), dir)
	require.Error(t, err)
	assert.Equal(t, 3, res.ExitCode)
}
