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

// b64decodeCmd represents the b64decode command
var b64decodeCmd = &cobra.Command{
	Use:     "b64decode [text]",
	Aliases: []string{"a2b_base64"},
	Short:   "Decode base64 text into raw bytes",
	Long: `Decode standard base64 text into raw bytes on stdout.

Example:
  binascii b64decode Zm9v
  binascii b64decode Zm9v > out.bin`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(args)
		if err != nil {
			fmt.Printf("Error reading input: %v\n", err)
			return
		}

		out, err := binascii.A2BBase64(data)
		if err != nil {
			fmt.Printf("Error decoding base64: %v\n", err)
			return
		}

		if _, err := os.Stdout.Write(out); err != nil {
			fmt.Printf("Error writing output: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(b64decodeCmd)
}
