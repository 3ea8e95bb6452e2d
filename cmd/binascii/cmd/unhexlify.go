/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calberts/binascii/pkg/binascii"
)

// unhexlifyCmd represents the unhexlify command
var unhexlifyCmd = &cobra.Command{
	Use:     "unhexlify [hex]",
	Aliases: []string{"a2b_hex"},
	Short:   "Decode hex text into raw bytes",
	Long: `Decode hexadecimal text (either case) into raw bytes on stdout.

Example:
  binascii unhexlify 68656c6c6f
  binascii unhexlify DeadBeef > out.bin`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(args)
		if err != nil {
			fmt.Printf("Error reading input: %v\n", err)
			return
		}

		out, err := binascii.Unhexlify(data)
		if err != nil {
			fmt.Printf("Error decoding hex: %v\n", err)
			return
		}

		if _, err := os.Stdout.Write(out); err != nil {
			fmt.Printf("Error writing output: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(unhexlifyCmd)
}
