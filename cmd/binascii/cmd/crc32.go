/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calberts/binascii/pkg/binascii"
)

var crcSeed uint32

// crc32Cmd represents the crc32 command
var crc32Cmd = &cobra.Command{
	Use:   "crc32 [data]",
	Short: "Compute the IEEE CRC-32 of data",
	Long: `Compute the IEEE CRC-32 checksum of data, printed as decimal and hex.

Pass --seed with a previous checksum to continue it across chunks:
the chained result equals the checksum of the concatenated input.

Example:
  binascii crc32 123456789
  binascii crc32 56789 --seed $(binascii crc32 1234 --quiet)`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(args)
		if err != nil {
			fmt.Printf("Error reading input: %v\n", err)
			return
		}

		sum, err := binascii.CRC32(data, crcSeed)
		if err != nil {
			fmt.Printf("Error computing checksum: %v\n", err)
			return
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		if quiet {
			cmd.Printf("%d\n", sum)
			return
		}
		cmd.Printf("%d (0x%08x)\n", sum, sum)
	},
}

func init() {
	rootCmd.AddCommand(crc32Cmd)
	crc32Cmd.Flags().Uint32Var(&crcSeed, "seed", 0, "Previous checksum to continue from")
	crc32Cmd.Flags().Bool("quiet", false, "Print only the decimal checksum")
}
