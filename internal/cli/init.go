package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration file and data directory",
		Long:  "Create the configuration directory with a default config.yaml and the data directory used by dump.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	dataDir, err := a.dataDir()
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	configPath := filepath.Join(configDir, configFileExt)
	created, err := writeConfigIfMissing(configPath, a.flags.dataDir)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create data directory: %w", err))
	}
	a.logger.Info("initialized", "config", configPath, "created", created)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Rolodex initialized successfully")
	fmt.Fprintln(out, "  config:", configPath)
	fmt.Fprintln(out, "  data:  ", dataDir)
	return nil
}
