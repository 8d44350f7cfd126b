// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import "github.com/vechain/layerstate/thor"

// Stater is the state creator.
// States created by one stater share the config and the trie key cache,
// and are otherwise independent.
type Stater struct {
	cfg  Config
	keys *keyHasher
}

// NewStater create a new stater.
func NewStater(cfg Config) *Stater {
	cfg = cfg.withDefaults()
	return &Stater{
		cfg:  cfg,
		keys: newKeyHasher(cfg.KeyCacheSize),
	}
}

// NewState create a new state object with the genesis accounts in its base layer.
func (s *Stater) NewState(genesis map[thor.Address]AccountInfo) *State {
	return newState(s.cfg, s.keys, NewGenesisLayer(genesis))
}
