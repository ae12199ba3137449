package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/quocthai179/my-succulent-store/internal/core/cart"
	"github.com/quocthai179/my-succulent-store/internal/core/catalog"
	"github.com/quocthai179/my-succulent-store/internal/core/models"
)

// ListProductsArgs defines arguments for the list_products tool
type ListProductsArgs struct {
	Categories []string `json:"categories,omitempty" jsonschema:"description=Only return products in these category labels (case-insensitive)"`
}

// AddToCartArgs defines arguments for the add_to_cart tool
type AddToCartArgs struct {
	ProductID int64 `json:"product_id" jsonschema:"description=Product id to add,required"`
	Quantity  int   `json:"quantity,omitempty" jsonschema:"description=Quantity to add (default: 1)"`
}

// CartView is the cart shape returned to the assistant
type CartView struct {
	CartID   int64      `json:"cart_id"`
	Items    []CartLine `json:"items"`
	Total    int64      `json:"total"`
	TotalVND string     `json:"total_vnd"`
}

// CartLine is one cart row in a tool result
type CartLine struct {
	ItemID   int64  `json:"item_id"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

func cartView(c models.Cart) CartView {
	view := CartView{
		CartID:   c.ID,
		Items:    []CartLine{},
		Total:    c.DerivedTotal(),
		TotalVND: models.FormatVND(c.DerivedTotal()),
	}
	for _, item := range c.Items {
		view.Items = append(view.Items, CartLine{
			ItemID:   item.ID,
			Product:  item.Product.Name,
			Quantity: item.Quantity,
			Price:    item.Product.Price,
		})
	}
	return view
}

// StartServer starts the MCP server on stdio. Tools operate on the same
// persisted cart session as the TUI and CLI.
func StartServer(cache *catalog.Cache, carts *cart.Synchronizer) error {
	s := server.NewMCPServer(
		"Senda",
		"1.0.0",
	)

	// Register list_products tool
	productsTool := mcp.NewTool("list_products",
		mcp.WithDescription("List the shop's product catalog, optionally filtered by category. Falls back to the bundled catalog when the backend is unreachable."),
		mcp.WithArray("categories",
			mcp.Description("Only return products in these category labels (case-insensitive)")),
	)
	s.AddTool(productsTool, makeListProductsHandler(cache))

	// Register get_cart tool
	cartTool := mcp.NewTool("get_cart",
		mcp.WithDescription("Get the current shopping cart with item lines and total"),
	)
	s.AddTool(cartTool, makeGetCartHandler(carts))

	// Register add_to_cart tool
	addTool := mcp.NewTool("add_to_cart",
		mcp.WithDescription("Add a product to the shopping cart. The backend merges duplicate lines and computes the total."),
		mcp.WithNumber("product_id",
			mcp.Required(),
			mcp.Description("Product id to add")),
		mcp.WithNumber("quantity",
			mcp.Description("Quantity to add (default: 1)")),
	)
	s.AddTool(addTool, makeAddToCartHandler(carts))

	return server.ServeStdio(s)
}

func makeListProductsHandler(cache *catalog.Cache) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ListProductsArgs
		argsBytes, _ := json.Marshal(request.Params.Arguments)
		if err := json.Unmarshal(argsBytes, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		// Fresh load on every call so the assistant sees current stock
		cache.Load(ctx)
		products := cache.Filter(args.Categories)

		resultJSON, err := json.Marshal(map[string]interface{}{
			"degraded": cache.Degraded(),
			"products": products,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}

func makeGetCartHandler(carts *cart.Synchronizer) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		c, err := carts.LoadOrCreate(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("backend unavailable: %v", err)), nil
		}

		resultJSON, err := json.Marshal(cartView(c))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal cart: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}

func makeAddToCartHandler(carts *cart.Synchronizer) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args AddToCartArgs
		argsBytes, _ := json.Marshal(request.Params.Arguments)
		if err := json.Unmarshal(argsBytes, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.ProductID == 0 {
			return mcp.NewToolResultError("product_id is required"), nil
		}

		quantity := args.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 1 {
			return mcp.NewToolResultError("quantity must be at least 1"), nil
		}

		c, err := carts.AddItem(ctx, args.ProductID, quantity)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("backend unavailable: %v", err)), nil
		}

		resultJSON, err := json.Marshal(cartView(c))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal cart: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}
