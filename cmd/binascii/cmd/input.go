package cmd

import (
	"fmt"
	"io"
	"os"
)

// readInput returns the first argument's bytes, or all of stdin when no
// argument was given
func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}
