package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/quocthai179/my-succulent-store/internal/core/models"
)

var productCategories []string

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the product catalog",
	Long: `List the shop's products grouped by category.

Falls back to the bundled catalog when the backend is unreachable.

Examples:
  senda products
  senda products --category Echeveria --category Haworthia`,
	RunE: runProducts,
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.Flags().StringArrayVarP(&productCategories, "category", "c", nil, "Only show these categories (repeatable)")
}

func runProducts(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.catalog.Load(cmd.Context())
	if a.catalog.Degraded() {
		fmt.Println("Không thể kết nối backend, hiển thị dữ liệu mẫu.")
	} else {
		fmt.Printf("Tìm thấy %d sản phẩm\n", a.catalog.Count())
	}
	fmt.Println()

	products := a.catalog.Filter(productCategories)
	var lastCategory string
	for _, p := range products {
		if p.Category != lastCategory {
			if lastCategory != "" {
				fmt.Println()
			}
			fmt.Printf("%s\n", p.Category)
			lastCategory = p.Category
		}
		fmt.Printf("  [%d] %s — %s\n", p.ID, p.Name, models.FormatVND(p.Price))
		if p.Description != "" {
			fmt.Printf("      %s\n", p.Description)
		}
	}
	if len(products) == 0 {
		fmt.Println("Không có sản phẩm trong nhóm này.")
	}
	return nil
}
