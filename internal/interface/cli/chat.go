package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Send one message to the ordering assistant",
	Long: `Send a message to the shop's ordering assistant and print the reply.
The assistant can change your cart; the resulting cart is printed after
the reply.

Examples:
  senda chat "cho tôi xem các loại sen đá Echeveria"
  senda chat "thêm 2 chậu đất nung vào giỏ"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	reply, err := a.bridge.Send(cmd.Context(), message)
	fmt.Println(reply)

	if err == nil {
		fmt.Println()
		printCart(a.carts.Current(), false)
	}
	return nil
}
