package main

import (
	"os"

	"github.com/wrensuite/wren/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.CheckCmd())
	rootCmd.AddCommand(commands.FixCmd())
	rootCmd.AddCommand(commands.InitCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
