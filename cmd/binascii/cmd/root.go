/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "binascii",
	Short: "binascii - binary/text conversion toolkit",
	Long: `binascii converts binary data to and from text-safe representations
and computes CRC-32 integrity checksums.

Each subcommand takes its input from the first argument, or from stdin
when no argument is given.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
