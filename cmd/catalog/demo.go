package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"MiniCatalog/internal/catalog"
)

var (
	demoName  string
	demoPrice float64
	demoFind  string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Add a product, look it up and print the catalog size",
	Long: `Demo exercises the catalog in-process and prints:

  Added: <name> at $<price>
  Found: <name>   (or "Not found")
  Total products: <count>`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout(), catalog.NewService(), demoName, demoPrice, demoFind)
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoName, "name", "Widget", "name of the product to add")
	demoCmd.Flags().Float64Var(&demoPrice, "price", 9.99, "price of the product to add")
	demoCmd.Flags().StringVar(&demoFind, "find", "Widget", "name to look up after adding")
}

func runDemo(out io.Writer, svc *catalog.Service, name string, price float64, find string) error {
	p := svc.AddProduct(name, price)
	if _, err := fmt.Fprintf(out, "Added: %s at %s\n", p.Name, p.DisplayPrice()); err != nil {
		return err
	}

	if found, ok := svc.FindByName(find); ok {
		if _, err := fmt.Fprintf(out, "Found: %s\n", found.Name); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(out, "Not found"); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "Total products: %d\n", len(svc.ListProducts()))
	return err
}
