package cmd

import (
	"github.com/birmacher/content-gen/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generation API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		port := cfg.HTTPPort
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}

		return server.New(port, client, st).Start(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on (overrides HTTP_PORT)")
	rootCmd.AddCommand(serveCmd)
}
