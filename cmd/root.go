package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamal-hamza/sx-cli/internal/adapters/cache"
	"github.com/kamal-hamza/sx-cli/internal/adapters/source"
	"github.com/kamal-hamza/sx-cli/internal/core/ports"
	"github.com/kamal-hamza/sx-cli/internal/core/services"
	"github.com/kamal-hamza/sx-cli/pkg/config"
	"github.com/kamal-hamza/sx-cli/pkg/logging"
	"github.com/kamal-hamza/sx-cli/pkg/ui"
	"github.com/kamal-hamza/sx-cli/pkg/workspace"
)

// DebugEnv forces debug mode when set to a truthy value
const DebugEnv = "SX_DEBUG"

var (
	// Global state
	appWorkspace *workspace.Workspace
	appConfig    *config.Config
	appLogger    *zap.Logger
	appDebug     bool

	// Adapters
	cacheStore  cache.Store
	libraryDirs []string

	// Services
	libraryService *services.LibraryService

	// Global flags
	flagDebug  bool
	flagConfig string
	flagDirs   []string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sx",
	Short: "SX - An SVG asset library",
	Long: ui.StyleTitle.Render("SX") + " - SVG Asset Library\n\n" +
		"Loads a directory tree of SVG files into a normalized library keyed by\n" +
		"stable identifiers, and serves sized, inline-ready markup and sprite sheets.",
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: shutdownApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	// PersistentPostRunE is skipped when a command fails
	_ = shutdownApp(rootCmd, nil)

	if err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(embedCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(rawCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Bypass caches and emit diagnostic comments")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().StringSliceVarP(&flagDirs, "dir", "d", nil, "Library directory (repeatable, overrides library_dirs)")
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// version needs nothing
	if cmd.Name() == "version" {
		return nil
	}

	ws, err := workspace.New()
	if err != nil {
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}
	appWorkspace = ws
	if flagConfig != "" {
		appWorkspace.ConfigPath = flagConfig
	}

	cfg, err := config.Load(appWorkspace.ConfigPath)
	if err != nil {
		return err
	}
	appConfig = cfg
	appDebug = cfg.Debug || flagDebug || isTruthy(os.Getenv(DebugEnv))

	ui.SetTheme(cfg.ColorTheme)

	logger, err := logging.New(cfg.LogLevel, appDebug, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	appLogger = logger

	store, err := cache.Open(cfg.CacheBackend, appWorkspace.CachePath)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	cacheStore = store

	libraryDirs = resolveLibraryDirs()
	sources := make([]ports.AssetSource, 0, len(libraryDirs)+1)
	if len(cfg.InlineAssets) > 0 {
		sources = append(sources, source.NewInlineSource(cfg.InlineAssets))
	}
	for _, dir := range libraryDirs {
		sources = append(sources, source.NewDirectorySource(dir, cfg.MaxWorkers, appLogger))
	}

	var persistent ports.CacheStore
	if cacheStore != nil {
		persistent = cacheStore
	}
	renderCache := services.NewRenderCache(persistent, cfg.CacheTTL(), appDebug, appLogger)
	libraryService = services.NewLibraryService(renderCache, appLogger, sources...)

	appLogger.Debug("Initialized",
		zap.Strings("library_dirs", libraryDirs),
		zap.String("cache_backend", cfg.CacheBackend),
		zap.String("config", appWorkspace.ConfigPath))

	return nil
}

// shutdownApp releases the cache store and flushes the logger
func shutdownApp(cmd *cobra.Command, args []string) error {
	var err error
	if cacheStore != nil {
		err = cacheStore.Close()
		cacheStore = nil
	}
	if appLogger != nil {
		_ = appLogger.Sync()
	}
	return err
}

// resolveLibraryDirs picks the --dir flags, then library_dirs, then the
// workspace default
func resolveLibraryDirs() []string {
	if len(flagDirs) > 0 {
		cwd, _ := os.Getwd()
		dirs := make([]string, 0, len(flagDirs))
		for _, dir := range flagDirs {
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(cwd, dir)
			}
			dirs = append(dirs, filepath.Clean(dir))
		}
		return dirs
	}

	if dirs := appConfig.ResolveDirs(filepath.Dir(appWorkspace.ConfigPath)); len(dirs) > 0 {
		return dirs
	}
	return []string{appWorkspace.LibraryPath}
}

// getContext returns a context for operations
func getContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
