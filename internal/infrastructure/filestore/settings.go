package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings are the persisted app preferences, stored as plain JSON next to
// the user's other config. The document key never goes here.
type Settings struct {
	Language    string   `json:"language,omitempty"`
	BranchName  string   `json:"branchName,omitempty"`
	RecentFiles []string `json:"recentFiles,omitempty"`
}

const maxRecentFiles = 10

// SettingsPath returns the per-user settings file location.
func SettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ahbsales", "settings.json"), nil
}

// LoadSettings reads settings, tolerating a missing or unreadable file by
// returning defaults.
func LoadSettings(path string) Settings {
	var s Settings
	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}
	}
	return s
}

// SaveSettings writes settings, creating the directory when needed.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// TouchRecent moves path to the front of the recent-files list.
func (s *Settings) TouchRecent(path string) {
	out := []string{path}
	for _, p := range s.RecentFiles {
		if p != path {
			out = append(out, p)
		}
	}
	if len(out) > maxRecentFiles {
		out = out[:maxRecentFiles]
	}
	s.RecentFiles = out
}
