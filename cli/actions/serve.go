package actions

import "github.com/spf13/cobra"
import "github.com/cwacek/ngramengine/engine"

func serveCmd() *cobra.Command {

	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer n-gram extraction requests over ZeroMQ",
		RunE: func(cmd *cobra.Command, args []string) error {

			eng := new(engine.ZeroMQEngine)
			if err := eng.Init(port); err != nil {
				return err
			}

			return eng.Start()
		},
	}

	cmd.Flags().IntVar(&port, "port", 10800, "The port to listen on")

	return cmd
}
