package main

import (
	"testing"

	"greetcard/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCommand returns a command with the same flags as rootCmd but its
// own flag set, so tests do not share parse state.
func newTestCommand(t *testing.T) *cobra.Command {
	t.Helper()
	flags = flagValues{}
	cmd := &cobra.Command{Use: "greetcard"}
	cmd.Flags().AddFlagSet(rootCmd.Flags())
	t.Cleanup(func() {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
		flags = flagValues{}
	})
	return cmd
}

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	cmd := newTestCommand(t)
	require.NoError(t, cmd.Flags().Parse([]string{"--name", "Zed", "--overflow", "intro", "--no-mouse"}))

	cfg := config.Default()
	cfg.Message = "from the card file"
	applyFlags(cmd, cfg)

	assert.Equal(t, "Zed", cfg.Name)
	assert.Equal(t, "from the card file", cfg.Message, "unset flag keeps the loaded value")
	assert.Equal(t, "intro", cfg.Overflow)
	assert.True(t, cfg.NoMouse)
	assert.False(t, cfg.NoAltScreen)
	require.NoError(t, cfg.Validate())
}

func TestApplyFlags_EmptyValueStillOverrides(t *testing.T) {
	cmd := newTestCommand(t)
	require.NoError(t, cmd.Flags().Parse([]string{"--image="}))

	cfg := config.Default()
	applyFlags(cmd, cfg)

	assert.Empty(t, cfg.Image)
}
