package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/quocthai179/my-succulent-store/internal/core/models"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and edit the shopping cart",
	RunE:  runCartShow,
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart",
	RunE:  runCartShow,
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id> [quantity]",
	Short: "Add a product to the cart",
	Long: `Add a product to the cart. The backend merges duplicate lines and
computes the total; a first add establishes the cart session.

Examples:
  senda cart add 3
  senda cart add 3 2`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCartAdd,
}

var cartSetCmd = &cobra.Command{
	Use:   "set <item-id> <quantity>",
	Short: "Set the quantity of a cart line",
	Args:  cobra.ExactArgs(2),
	RunE:  runCartSet,
}

var cartRemoveCmd = &cobra.Command{
	Use:     "rm <item-id>",
	Aliases: []string{"remove"},
	Short:   "Remove a line from the cart",
	Args:    cobra.ExactArgs(1),
	RunE:    runCartRemove,
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartSetCmd)
	cartCmd.AddCommand(cartRemoveCmd)
}

func printCart(cart models.Cart, offline bool) {
	if offline {
		fmt.Println("Mất kết nối — giỏ hàng chưa được cập nhật.")
	}
	if cart.ID != 0 {
		fmt.Printf("Giỏ hàng #%d\n", cart.ID)
	}
	if cart.IsEmpty() {
		fmt.Println("Giỏ hàng đang trống.")
	} else {
		for _, item := range cart.Items {
			fmt.Printf("  [%d] %d x %s — %s\n",
				item.ID, item.Quantity, item.Product.Name, models.FormatVND(item.Product.Price))
		}
	}
	fmt.Printf("Tổng cộng: %s\n", models.FormatVND(cart.DerivedTotal()))
}

func runCartShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	cart, err := a.carts.LoadOrCreate(cmd.Context())
	printCart(cart, err != nil)
	return nil
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	productID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}
	quantity := 1
	if len(args) == 2 {
		quantity, err = strconv.Atoi(args[1])
		if err != nil || quantity < 1 {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	cart, err := a.carts.AddItem(cmd.Context(), productID, quantity)
	printCart(cart, err != nil)
	return nil
}

func runCartSet(cmd *cobra.Command, args []string) error {
	itemID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", args[0])
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity %q", args[1])
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	// Pull the current cart first so a guarded no-op still prints something
	// meaningful.
	if _, err := a.carts.LoadOrCreate(cmd.Context()); err != nil {
		printCart(a.carts.Current(), true)
		return nil
	}

	cart, err := a.carts.UpdateItemQuantity(cmd.Context(), itemID, quantity)
	printCart(cart, err != nil)
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	itemID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", args[0])
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	cart, err := a.carts.RemoveItem(cmd.Context(), itemID)
	printCart(cart, err != nil)
	return nil
}
