package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName names the per-user directories
const AppName = "sx"

// ConfigEnv overrides the config file location
const ConfigEnv = "SX_CONFIG"

// Workspace represents the per-user directories used by sx
type Workspace struct {
	RootPath    string
	LibraryPath string
	CachePath   string
	ConfigPath  string
}

// New creates a new Workspace instance with XDG-compliant paths
func New() (*Workspace, error) {
	rootPath, rootErr := getDataRoot()
	if rootErr != nil {
		return nil, fmt.Errorf("failed to determine data root: %w", rootErr)
	}
	cachePath, cacheErr := getCacheRoot()
	if cacheErr != nil {
		return nil, fmt.Errorf("failed to determine cache directory: %w", cacheErr)
	}
	configPath, configErr := getConfigPath()
	if configErr != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", configErr)
	}

	return &Workspace{
		RootPath:    rootPath,
		LibraryPath: filepath.Join(rootPath, "svg"),
		CachePath:   cachePath,
		ConfigPath:  configPath,
	}, nil
}

// getDataRoot follows the XDG Base Directory specification on Unix and
// uses AppData on Windows
func getDataRoot() (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, AppName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, AppName), nil
	}

	return filepath.Join(homeDir, ".local", "share", AppName), nil
}

func getCacheRoot() (string, error) {
	if xdgCacheHome := os.Getenv("XDG_CACHE_HOME"); xdgCacheHome != "" {
		return filepath.Join(xdgCacheHome, AppName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		return filepath.Join(localAppData, AppName, "cache"), nil
	}

	return filepath.Join(homeDir, ".cache", AppName), nil
}

func getConfigPath() (string, error) {
	if override := os.Getenv(ConfigEnv); override != "" {
		return filepath.Abs(override)
	}

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, AppName+"-config", "config.yaml"), nil
	}

	return filepath.Join(homeDir, ".config", AppName, "config.yaml"), nil
}

// Initialize creates the directory structure if it doesn't exist
func (w *Workspace) Initialize() error {
	directories := []string{
		w.RootPath,
		w.LibraryPath,
		w.CachePath,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// Exists checks if the workspace has been initialized
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.RootPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// GetCachePath returns the full path for a cached file
func (w *Workspace) GetCachePath(filename string) string {
	return filepath.Join(w.CachePath, filename)
}

// CleanCache removes everything inside the cache directory and returns the
// number of entries removed. A missing directory is not an error.
func (w *Workspace) CleanCache() (int, error) {
	entries, err := os.ReadDir(w.CachePath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read cache directory: %w", err)
	}

	for i, entry := range entries {
		path := filepath.Join(w.CachePath, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return i, fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	return len(entries), nil
}
