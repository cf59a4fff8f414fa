package cli

import (
	"fmt"
	"os"

	"github.com/lc-soft/lcui-release/internal/config"
	clierrors "github.com/lc-soft/lcui-release/internal/errors"
	"github.com/lc-soft/lcui-release/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configInitForceFlag  bool
	configInitStdoutFlag bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lcui-release configuration",
	Long: `Manage lcui-release configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (LCUI_RELEASE_*, "__" separates nested keys)
  2. Project config (.lcui-release.yml, or .lcui-release.json)
  3. Built-in defaults`,
	Example: `  # Show the effective configuration
  lcui-release config show

  # Create .lcui-release.yml with every option documented
  lcui-release config init`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return clierrors.Wrap(err, clierrors.Runtime)
		}
		return enc.Close()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented project config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configCmd.GroupID = GroupUtility
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd)

	configInitCmd.Flags().BoolVarP(&configInitForceFlag, "force", "f", false, "Overwrite an existing config file")
	configInitCmd.Flags().BoolVar(&configInitStdoutFlag, "stdout", false, "Print the template instead of writing it")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	template := config.GetDefaultConfigTemplate()
	if configInitStdoutFlag {
		fmt.Fprint(cmd.OutOrStdout(), template)
		return nil
	}

	path := configPath
	if path == "" {
		path = config.ProjectConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !configInitForceFlag {
		return clierrors.NewArgumentError(
			fmt.Sprintf("config file %s already exists", path),
			"Use --force to overwrite it",
		)
	}

	if err := os.WriteFile(path, []byte(template), 0o644); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "writing config file")
	}
	output.PrintSuccess(cmd.OutOrStdout(), "created", path)
	return nil
}
