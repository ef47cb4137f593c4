package actions

import "os"
import "github.com/spf13/cobra"
import "github.com/cwacek/ngramengine/logging"

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "ngramengine",
	Short: "Extract, index, and serve n-grams from document collections",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetupLogging(verbosity)
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0,
		"Be verbose [1, 2, 3]")

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(indexCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(benchCmd())
}
