/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/calberts/binascii/cmd/binascii/cmd"
)

func main() {
	cmd.Execute()
}
