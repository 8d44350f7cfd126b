// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"
	"sync/atomic"

	"github.com/vechain/layerstate/cache"
	"github.com/vechain/layerstate/thor"
)

// keyHasher memoizes the keccak-256 of secure trie keys.
// Hashes are pure functions of the key, so one hasher can serve many states.
type keyHasher struct {
	cache    *cache.LRU
	reported struct{ hit, miss atomic.Int64 }
}

func newKeyHasher(size int) *keyHasher {
	c, err := cache.NewLRU(size)
	if err != nil {
		panic(err) // size is validated by Config
	}
	return &keyHasher{cache: c}
}

func hashKey(key any) (any, error) {
	switch k := key.(type) {
	case thor.Address:
		return thor.Keccak256(k[:]), nil
	case thor.Bytes32:
		return thor.Keccak256(k[:]), nil
	}
	return nil, fmt.Errorf("unexpected key type %T", key)
}

func (h *keyHasher) hash(key any) thor.Bytes32 {
	v, err := h.cache.GetOrLoad(key, hashKey)
	if err != nil {
		panic(err)
	}
	return v.(thor.Bytes32)
}

// Address returns the secure trie key of an account.
func (h *keyHasher) Address(addr thor.Address) thor.Bytes32 {
	return h.hash(addr)
}

// Slot returns the secure trie key of a storage slot.
func (h *keyHasher) Slot(slot thor.Bytes32) thor.Bytes32 {
	return h.hash(slot)
}

// report pushes hit/miss counts since the last report into metrics
// and logs when the hit rate moved.
func (h *keyHasher) report() {
	stats := h.cache.Stats()
	changed, hit, miss := stats.Stats()
	if d := hit - h.reported.hit.Swap(hit); d > 0 {
		metricKeyCache().AddWithLabel(d, map[string]string{"event": "hit"})
	}
	if d := miss - h.reported.miss.Swap(miss); d > 0 {
		metricKeyCache().AddWithLabel(d, map[string]string{"event": "miss"})
	}
	if changed {
		logger.Debug("key cache stats", "hit", hit, "miss", miss, "hitrate", fmt.Sprintf("%.3f", stats.HitRate()))
	}
}
