/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/calberts/binascii/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a server configuration file",
	Long: `Initialize a configuration file for the binascii API server.

This command will:
- Create the config directory if needed
- Write a default configuration
- Generate a secure API key for the server

Existing configuration files are left untouched.

Example:
  binascii init --config ./binascii.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.BootstrapConfig(configPath)
		if err != nil {
			cmd.Printf("Error initializing config: %v\n", err)
			os.Exit(1)
		}

		cmd.Printf("Configuration written to %s\n", configPath)
		cmd.Printf("Bind: %s:%d\n", cfg.Bind, cfg.Port)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("config", "./binascii.yaml", "Path to the configuration file")
}
