package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/exitthree/formgate/cmd/http"
	systemcmd "github.com/exitthree/formgate/cmd/system"
	"github.com/exitthree/formgate/pkg/logs"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "formgate",
	Short: "Form gateway for the marketing site's lead and contact endpoints.",
	Long: `Formgate sits at the network edge in front of the marketing site's forms.
It validates and sanitizes untrusted submissions, then relays them to the
internal leads API or to the notification mailbox over SMTP.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Structured logging before any config is loaded; http start swaps
		// in the configured logger once the config is read.
		slog.SetDefault(logs.Default())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
