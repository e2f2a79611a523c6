package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"neonmart/cmd/neonmart/shop"
	"neonmart/internal/auth"
	"neonmart/internal/cart"
	"neonmart/internal/catalog"
	"neonmart/internal/config"
	"neonmart/internal/logging"
	"neonmart/internal/storage"
	"neonmart/internal/view"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	catalogPath string

	// Logger for non-interactive commands
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "neonmart",
	Short: "neonmart - futuristic gear storefront for your terminal",
	Long: `neonmart is a terminal storefront: browse the gear catalog, filter and
sort it, stock a cart that survives restarts, and check out.

Run without arguments to start the interactive storefront.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Interactive mode has its own UI; skip the zap logger there.
		if cmd.Use == "neonmart" && cmd.CalledAs() == "neonmart" {
			return nil
		}
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStorefront()
	},
}

// listCmd runs a one-shot catalog query and prints the result
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Query the catalog without the interactive UI",
	RunE:  runList,
}

// resetCmd clears persisted state
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the persisted cart and session label",
	RunE:  runReset,
}

var (
	listTerm     string
	listCategory string
	listSort     string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <state-dir>/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog JSON file (default embedded catalog)")

	listCmd.Flags().StringVar(&listTerm, "search", "", "search term")
	listCmd.Flags().StringVar(&listCategory, "category", catalog.CategoryAll, "category filter")
	listCmd.Flags().StringVar(&listSort, "sort", "none", "sort mode: none, price-asc, price-desc")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(resetCmd)
}

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}
	return cfg, nil
}

func loadCatalog(cfg config.Config) *catalog.Store {
	if cfg.CatalogPath != "" {
		return catalog.LoadFile(cfg.CatalogPath)
	}
	return catalog.LoadDefault()
}

func runStorefront() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.StateDir, cfg.Logging.Enabled, cfg.Logging.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logging.CloseAll()
	logging.Boot("starting interactive storefront")

	store := storage.NewFileStore(cfg.StateDir)
	model := shop.New(cfg, loadCatalog(cfg), store)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("storefront terminated: %w", err)
	}
	logging.Boot("storefront closed")
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	state := catalog.QueryState{
		Term:     listTerm,
		Category: listCategory,
		Sort:     catalog.ParseSortMode(listSort),
	}
	cat := loadCatalog(cfg)
	results := catalog.Query(cat.Products(), state)

	logger.Debug("catalog query",
		zap.String("term", state.Term),
		zap.String("category", state.Category),
		zap.String("sort", state.Sort.String()),
		zap.Int("catalog_size", cat.Len()),
		zap.Int("results", len(results)))

	if len(results) == 0 {
		fmt.Println("No gear found in this sector.")
		return nil
	}
	for _, c := range view.Cards(results) {
		badge := ""
		if c.Badge != "" {
			badge = " [" + c.Badge + "]"
		}
		fmt.Printf("%-28s %s  %s%s\n", c.Title, c.Price, c.Stars, badge)
	}
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := storage.NewFileStore(cfg.StateDir)
	cartStore := cart.New(store, nil)
	if err := cartStore.Clear(); err != nil {
		logger.Warn("cart reset failed", zap.Error(err))
		return err
	}
	if err := auth.NewSession(store).Logout(); err != nil {
		logger.Warn("session reset failed", zap.Error(err))
		return err
	}

	logger.Info("persisted state cleared", zap.String("state_dir", cfg.StateDir))
	fmt.Println("Cart and session cleared.")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
