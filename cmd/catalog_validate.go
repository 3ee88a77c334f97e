package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"carolinebride.GO/config"
	catalogService "carolinebride.GO/service/catalog"
)

var validatePath string

var catalogValidateCmd = &cobra.Command{
	Use:   "catalog:validate",
	Short: "Validate a catalog JSON data file",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		path := validatePath
		if path == "" {
			path = config.AppConfig.CatalogPath
		}

		res, err := catalogService.ValidateFile(path)
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}
		for _, e := range res.Errors {
			fmt.Printf("  [error] %s\n", e)
		}

		fmt.Printf(`
=== Catalog Report ===
File:        %s
Items:       %d
On sale:     %d
Categories:  %d
Looks:       %d
Warnings:    %d
Errors:      %d
`, path, res.Items, res.OnSale, res.Categories, res.Looks, len(res.Warnings), len(res.Errors))

		if len(res.Errors) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	catalogValidateCmd.Flags().StringVarP(&validatePath, "file", "f", "", "Catalog JSON path (defaults to CATALOG_PATH)")
	rootCmd.AddCommand(catalogValidateCmd)
}
