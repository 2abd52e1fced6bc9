package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/NearCounter/internal/app"
)

var appOptions app.Options

var rootCmd = &cobra.Command{
	Use:   "nearcounter",
	Short: "A counter on the NEAR blockchain",
	Long:  `NearCounter shows and changes a counter stored in a NEAR smart contract.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: run the terminal UI
		application, err := app.NewApplication(appOptions)
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&appOptions.Profile, "profile", "p", "", "profile to use instead of the active one")
	flags.StringVar(&appOptions.LogFile, "log-file", "", "log file (default ~/.nearcounter/nearcounter.log)")
	flags.StringVar(&appOptions.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&appOptions.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	// Add subcommands
	rootCmd.AddCommand(profileCmd)
}
