// config.go defines the core's own resource configuration, loadable
// from a TOML file via github.com/BurntSushi/toml. This does not reach
// into search or evaluation tuning (out of core scope); it only
// configures the TT's size and whether debug-assertion checks run.
package engine

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Options configures the core's own resources.
type Options struct {
	// HashSizeMB is the transposition table size in megabytes.
	HashSizeMB int `toml:"hash_size_mb"`
	// DebugAssertions is the toggle for Board.Verify() debug checks. The
	// core itself never reads it; Verify runs only where a caller invokes
	// it. Verify walks every invariant in §3 and is not free.
	DebugAssertions bool `toml:"debug_assertions"`
}

// DefaultOptions returns the configuration used when no file is loaded.
func DefaultOptions() Options {
	return Options{HashSizeMB: 64, DebugAssertions: false}
}

// LoadOptions reads Options from a TOML file at path, starting from
// DefaultOptions so an incomplete file still yields a valid configuration.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	elog.Infof("loaded options from %s: hash=%dMB debug_assertions=%v", path, opts.HashSizeMB, opts.DebugAssertions)
	return opts, nil
}
