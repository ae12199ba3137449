package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/quocthai179/my-succulent-store/internal/core/cart"
	"github.com/quocthai179/my-succulent-store/internal/core/catalog"
	"github.com/quocthai179/my-succulent-store/internal/core/chat"
	"github.com/quocthai179/my-succulent-store/internal/core/config"
	"github.com/quocthai179/my-succulent-store/internal/core/gateway"
	"github.com/quocthai179/my-succulent-store/internal/core/session"
)

var (
	apiBaseURL  string
	dbPath      string
	versionInfo string
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "senda",
	Short: "Sen Đá Shop storefront",
	Long: `senda - browse the Sen Đá plant shop, manage your cart, and talk to
the ordering assistant from the terminal.

The cart lives on the shop backend; senda remembers your cart across runs
and keeps working with a bundled catalog when the backend is unreachable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to TUI if no subcommand specified
		return tuiCmd.RunE(cmd, args)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "", "Backend base URL (default from config)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DefaultDBPath(), "Session database path")
}

// app bundles the wired core components behind every command.
type app struct {
	cfg     *config.Config
	store   *session.Store
	gw      *gateway.Client
	catalog *catalog.Cache
	carts   *cart.Synchronizer
	bridge  *chat.Bridge
}

func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if apiBaseURL != "" {
		cfg.APIBaseURL = apiBaseURL
	}

	store, err := session.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	gw := gateway.New(cfg.APIBaseURL, cfg.Timeout)
	carts := cart.NewSynchronizer(gw, store)

	return &app{
		cfg:     cfg,
		store:   store,
		gw:      gw,
		catalog: catalog.New(gw),
		carts:   carts,
		bridge:  chat.NewBridge(gw, carts),
	}, nil
}

func (a *app) Close() {
	_ = a.store.Close()
}
