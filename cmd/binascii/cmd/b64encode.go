/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calberts/binascii/pkg/binascii"
)

// b64encodeCmd represents the b64encode command
var b64encodeCmd = &cobra.Command{
	Use:     "b64encode [data]",
	Aliases: []string{"b2a_base64"},
	Short:   "Encode data as standard base64",
	Long: `Encode data as standard base64 text with padding and no line wrapping.

Example:
  binascii b64encode foo
  cat file.bin | binascii b64encode`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(args)
		if err != nil {
			fmt.Printf("Error reading input: %v\n", err)
			return
		}

		out, err := binascii.B2ABase64(data)
		if err != nil {
			fmt.Printf("Error encoding base64: %v\n", err)
			return
		}

		cmd.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(b64encodeCmd)
}
