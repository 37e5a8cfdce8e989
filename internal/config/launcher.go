package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Launcher is the optional clearvm.toml document: CLI-layer preferences
// only, never VM semantics (those are fixed by the compile-time debug
// build tags, spec §6.3). Grounded in chazu-maggie's manifest.Manifest /
// vovakirdan-surge's project manifest loader, both BurntSushi/toml.
type Launcher struct {
	Color     string `toml:"color"`      // "auto" (default), "on", "off"
	MemReport string `toml:"mem_report"` // path to write the DEBUG_MEM yaml report, empty disables
}

// DefaultLauncher is returned when no config file is found.
func DefaultLauncher() Launcher {
	return Launcher{Color: "auto"}
}

// LoadLauncher looks for ./clearvm.toml, then ~/.config/clearvm/clearvm.toml,
// returning DefaultLauncher() if neither exists. A malformed file that does exist is
// a hard error — silently ignoring it would mask a typo.
func LoadLauncher() (Launcher, error) {
	l := DefaultLauncher()

	for _, path := range candidatePaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return l, err
		}
		if err := toml.Unmarshal(data, &l); err != nil {
			return l, err
		}
		return l, nil
	}
	return l, nil
}

func candidatePaths() []string {
	paths := []string{ConfigFileName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "clearvm", ConfigFileName))
	}
	return paths
}
