// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import "runtime"

// Config is the configurable parameters of the state. Zero values are replaced by defaults.
type Config struct {
	KeyCacheSize int `json:"keyCacheSize"` // number of hashed trie keys (addresses and slots) to memoize.
	RootWorkers  int `json:"rootWorkers"`  // max goroutines computing storage roots.
}

// DefaultConfig returns the default parameters.
func DefaultConfig() Config {
	return Config{
		KeyCacheSize: 64 * 1024,
		RootWorkers:  runtime.NumCPU(),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.KeyCacheSize <= 0 {
		c.KeyCacheSize = def.KeyCacheSize
	}
	if c.RootWorkers <= 0 {
		c.RootWorkers = def.RootWorkers
	}
	return c
}
