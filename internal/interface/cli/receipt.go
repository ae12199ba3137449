package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/quocthai179/my-succulent-store/internal/core/receipt"
)

var receiptOutput string

var receiptCmd = &cobra.Command{
	Use:   "receipt",
	Short: "Render the current cart as a receipt",
	Long: `Render the current cart through the receipt template and print it.

The template can be customized at ~/.config/senda/receipt_template.txt.

Examples:
  senda receipt
  senda receipt --output phieu.txt`,
	RunE: runReceipt,
}

func init() {
	rootCmd.AddCommand(receiptCmd)
	receiptCmd.Flags().StringVarP(&receiptOutput, "output", "o", "", "Write the receipt to a file instead of stdout")
}

func runReceipt(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	cart, gwErr := a.carts.LoadOrCreate(cmd.Context())
	if gwErr != nil {
		fmt.Fprintln(os.Stderr, "Mất kết nối — phiếu dựa trên giỏ hàng trống.")
	}

	text, err := receipt.Render(a.cfg.ReceiptTemplate, cart, time.Now())
	if err != nil {
		return err
	}

	if receiptOutput != "" {
		if err := os.WriteFile(receiptOutput, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write receipt: %w", err)
		}
		fmt.Printf("Đã ghi phiếu vào %s\n", receiptOutput)
		return nil
	}

	fmt.Println(text)
	return nil
}
