/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calberts/binascii/pkg/api"
	"github.com/calberts/binascii/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the binascii REST API server.

The server exposes the hex, base64 and crc32 operations under /api/v1,
protected by an X-API-Key header, plus Prometheus metrics on /metrics.

Examples:
  binascii serve --config ./binascii.yaml
  binascii serve --api-key=mysecretkey --port=8080`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		port, _ := cmd.Flags().GetInt("port")
		bind, _ := cmd.Flags().GetString("bind")
		apiKey, _ := cmd.Flags().GetString("api-key")

		cfg := config.DefaultConfig()
		if configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				cmd.Printf("Error loading config: %v\n", err)
				return
			}
			cfg = loaded
		}

		// Flags override the config file
		if port != 0 {
			cfg.Port = port
		}
		if bind != "" {
			cfg.Bind = bind
		}
		if apiKey != "" {
			cfg.Security.APIKey = apiKey
		}

		if cfg.Security.APIKey == "" || cfg.Security.APIKey == "auto" {
			cmd.Println("Error: an API key is required (run 'binascii init' or pass --api-key)")
			return
		}

		serverConfig := api.ServerConfig{
			Bind:         cfg.Bind,
			Port:         cfg.Port,
			APIKey:       cfg.Security.APIKey,
			MaxBodyBytes: cfg.Limits.MaxBodyBytes,
		}

		if err := api.StartServer(serverConfig); err != nil {
			fmt.Printf("Server error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "Path to the configuration file")
	serveCmd.Flags().Int("port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().String("bind", "", "Address to bind to (overrides config)")
	serveCmd.Flags().String("api-key", "", "API key for protected routes (overrides config)")
}
