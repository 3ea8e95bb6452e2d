/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calberts/binascii/pkg/binascii"
)

// hexlifyCmd represents the hexlify command
var hexlifyCmd = &cobra.Command{
	Use:     "hexlify [data]",
	Aliases: []string{"b2a_hex"},
	Short:   "Encode data as lowercase hex",
	Long: `Encode data as lowercase hexadecimal text, two characters per byte.

Example:
  binascii hexlify hello
  printf '\x00\xff' | binascii hexlify`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(args)
		if err != nil {
			fmt.Printf("Error reading input: %v\n", err)
			return
		}

		out, err := binascii.Hexlify(data)
		if err != nil {
			fmt.Printf("Error encoding hex: %v\n", err)
			return
		}

		cmd.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(hexlifyCmd)
}
