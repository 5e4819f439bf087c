package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "shieldlab", cmd.Use)
	assert.Contains(t, cmd.Long, "floor load")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"materials", "transmission", "load", "compare", "target", "export", "batch", "history"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestHistorySubcommands(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"list", "show"} {
		subCmd, _, err := cmd.Find([]string{"history", name})
		require.NoError(t, err)
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	for _, name := range []string{"config", "materials", "model", "db"} {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "missing --%s", name)
		assert.Equal(t, "", flag.DefValue)
	}
}

func TestLoadCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	loadCmd, _, err := cmd.Find([]string{"load"})
	require.NoError(t, err)

	for _, name := range []string{"height", "width", "thickness", "capacity", "save"} {
		assert.NotNil(t, loadCmd.Flags().Lookup(name), "missing --%s", name)
	}
}

func TestExportCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	exportCmd, _, err := cmd.Find([]string{"export"})
	require.NoError(t, err)

	outputFlag := exportCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
}

func TestExecute_InvalidFormat(t *testing.T) {
	isolateConfig(t)
	var stdout, stderr bytes.Buffer

	code := Execute([]string{"materials", "--format", "yaml"}, &stdout, &stderr)

	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr.String(), `format "yaml" must be one of`)
	assert.Empty(t, stdout.String())
}

func TestExecute_MissingRequiredFlag(t *testing.T) {
	isolateConfig(t)
	var stdout, stderr bytes.Buffer

	code := Execute([]string{"load", "Concrete", "--height", "2"}, &stdout, &stderr)

	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr.String(), "required flag")
}

func TestExecute_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := Execute([]string{"shield"}, &stdout, &stderr)

	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr.String(), "unknown command")
}

func TestExecute_ReportedErrorKeepsExitCode(t *testing.T) {
	isolateConfig(t)
	var stdout, stderr bytes.Buffer

	code := Execute([]string{"load", "Concrete", "--height", "2", "--width", "3", "--thickness", "0"}, &stdout, &stderr)

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stdout.String(), "Error [E203]")
	assert.Empty(t, stderr.String(), "reported errors are not printed twice")
}
