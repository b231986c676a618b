package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pixeldraw"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the library version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pixeldraw %s\n", pixeldraw.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
