package main

import (
	"github.com/spf13/cobra"

	"civicpulse/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API until SIGINT or SIGTERM",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.New(appCfg)
		if err != nil {
			return err
		}
		return application.Run()
	},
}
