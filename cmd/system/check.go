package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/exitthree/formgate/config"
)

func NewCheckCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate configuration and required secrets",
		Long: `Check reads the configuration the same way the server does and reports
missing required settings. With --strict the production-level checks run
regardless of the configured environment, which is useful in CI before a
deploy.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			if strict && !cfg.IsProduction() {
				strictCfg := *cfg
				strictCfg.Server.Environment = "production"
				cfg = &strictCfg
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			for _, w := range cfg.Warnings() {
				fmt.Println("warning:", w)
			}

			fmt.Println("Configuration OK")
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Run production-level checks regardless of environment")

	return cmd
}
