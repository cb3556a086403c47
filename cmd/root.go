package cmd

import (
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Ótica Isis storefront tools",
	Long:  "Maintenance and scheduler tools for the Ótica Isis storefront. The HTTP server runs as the main binary.",
}

// Execute runs the CLI.
func Execute() {
	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("Otica Isis", fonts[rand.Intn(len(fonts))], true)
	fig.Print()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
