package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render(errorStyle, fmt.Sprintf(MsgErrorPrefix, err)))
		os.Exit(1)
	}
}
