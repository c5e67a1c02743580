package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Config holds the application configuration
type Config struct {
	RecentFiles   []string `json:"recent_files,omitempty"`   // Most-recently opened files, newest first
	RecentFolders []string `json:"recent_folders,omitempty"` // Most-recently opened sidebar folders, newest first

	// Boolean preferences must not carry omitempty: Load pre-seeds the
	// defaults, so a dropped false would silently reset to the default on
	// the next launch.
	NotificationsEnabled bool   `json:"notifications_enabled"`
	SidebarVisible       bool   `json:"sidebar_visible"`
	LastFolder           string `json:"last_folder,omitempty"` // Folder open in the sidebar last session

	// Layout of the previous run, restored at startup
	Session *Session `json:"session,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// maxRecent bounds the recent-files and recent-folders lists.
const maxRecent = 10

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".trine"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		RecentFiles:    []string{},
		RecentFolders:  []string{},
		SidebarVisible: true,
		filePath:       path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Ensure slices are initialized (not nil) after unmarshaling
	// This must happen before Validate() since Validate() only reads
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized ensures all slices are initialized (not nil).
//
// Thread-safety: This method is NOT thread-safe and must only be called
// during single-threaded initialization (i.e., from Load() before the Config
// is shared across goroutines).
func (c *Config) ensureInitialized() {
	if c.RecentFiles == nil {
		c.RecentFiles = []string{}
	}
	if c.RecentFolders == nil {
		c.RecentFolders = []string{}
	}
}

// Validate checks that the config is internally consistent.
// This is a read-only operation - call ensureInitialized() first if needed.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, f := range c.RecentFiles {
		if f == "" {
			return fmt.Errorf("empty path in recent files")
		}
	}
	for _, f := range c.RecentFolders {
		if f == "" {
			return fmt.Errorf("empty path in recent folders")
		}
	}

	if c.Session != nil {
		if err := c.Session.validate(); err != nil {
			return err
		}
	}

	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir, err := configDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath, data, 0644)
}

// AddRecentFile moves path to the front of the recent-files list,
// deduplicating and trimming to the cap.
func (c *Config) AddRecentFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.RecentFiles = pushRecent(c.RecentFiles, path)
}

// AddRecentFolder moves path to the front of the recent-folders list.
func (c *Config) AddRecentFolder(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.RecentFolders = pushRecent(c.RecentFolders, path)
}

func pushRecent(list []string, path string) []string {
	if path == "" {
		return list
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, path)
	for _, p := range list {
		if p != path {
			out = append(out, p)
		}
	}
	if len(out) > maxRecent {
		out = out[:maxRecent]
	}
	return out
}

// GetRecentFiles returns a copy of the recent-files list
func (c *Config) GetRecentFiles() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	files := make([]string, len(c.RecentFiles))
	copy(files, c.RecentFiles)
	return files
}

// GetRecentFolders returns a copy of the recent-folders list
func (c *Config) GetRecentFolders() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	folders := make([]string, len(c.RecentFolders))
	copy(folders, c.RecentFolders)
	return folders
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetSidebarVisible returns whether the folder sidebar is shown
func (c *Config) GetSidebarVisible() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SidebarVisible
}

// SetSidebarVisible sets whether the folder sidebar is shown
func (c *Config) SetSidebarVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SidebarVisible = visible
}

// GetLastFolder returns the folder the sidebar showed last session
func (c *Config) GetLastFolder() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastFolder
}

// SetLastFolder records the folder open in the sidebar
func (c *Config) SetLastFolder(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastFolder = path
}

// GetSession returns a copy of the saved session layout, or nil if none
func (c *Config) GetSession() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Session == nil {
		return nil
	}
	return c.Session.clone()
}

// SetSession records the session layout to restore next run. Pass nil to
// clear it.
func (c *Config) SetSession(s *Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s == nil {
		c.Session = nil
		return
	}
	c.Session = s.clone()
}
