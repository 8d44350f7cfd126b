// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethereum/go-ethereum/trie"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vechain/layerstate/thor"
)

type trieLeaf struct {
	key   thor.Bytes32
	value []byte
}

// deriveRoot builds the trie root of the leaves. Leaves are sorted by key first,
// which the stack trie requires and which makes the root independent of input order.
func deriveRoot(leaves []trieLeaf) (thor.Bytes32, error) {
	slices.SortFunc(leaves, func(a, b trieLeaf) int {
		return a.key.Compare(b.key)
	})

	st := trie.NewStackTrie(nil)
	for _, leaf := range leaves {
		if err := st.Update(leaf.key[:], leaf.value); err != nil {
			return thor.Bytes32{}, err
		}
	}
	return thor.Bytes32(st.Hash()), nil
}

// storageRoot computes the root of the secure storage trie.
func storageRoot(keys *keyHasher, storage Storage) (thor.Bytes32, error) {
	if len(storage) == 0 {
		return thor.EmptyRoot, nil
	}

	leaves := make([]trieLeaf, 0, len(storage))
	for slot, value := range storage {
		if value.IsZero() {
			continue
		}
		enc, err := rlp.EncodeToBytes(value.Bytes())
		if err != nil {
			return thor.Bytes32{}, err
		}
		leaves = append(leaves, trieLeaf{keys.Slot(slot), enc})
	}
	return deriveRoot(leaves)
}

func encodeAccount(info *AccountInfo, storageRoot thor.Bytes32) ([]byte, error) {
	codeHash := info.CodeHash
	if codeHash.IsZero() {
		codeHash = thor.EmptyCodeHash
	}
	return rlp.EncodeToBytes(&types.StateAccount{
		Nonce:    info.Nonce,
		Balance:  new(uint256.Int).Set(&info.Balance),
		Root:     common.Hash(storageRoot),
		CodeHash: codeHash[:],
	})
}

// merged folds the layers top-down. The first entry of an address wins,
// tombstones included, and tombstoned addresses are dropped.
func (s *State) merged() map[thor.Address]*Account {
	merged := make(map[thor.Address]*Account)
	for _, layer := range s.layers.TopDown() {
		for addr, acc := range layer.accounts {
			if _, seen := merged[addr]; !seen {
				merged[addr] = acc
			}
		}
	}
	for addr, acc := range merged {
		if acc == nil {
			delete(merged, addr)
		}
	}
	return merged
}

// StateRoot computes the state root over all visible accounts.
func (s *State) StateRoot() (thor.Bytes32, error) {
	start := time.Now()

	type entry struct {
		addr thor.Address
		acc  *Account
		root thor.Bytes32
	}

	merged := s.merged()
	entries := make([]entry, 0, len(merged))
	for addr, acc := range merged {
		entries = append(entries, entry{addr: addr, acc: acc})
	}

	var g errgroup.Group
	g.SetLimit(s.cfg.RootWorkers)
	for i := range entries {
		e := &entries[i]
		g.Go(func() (err error) {
			e.root, err = storageRoot(s.keys, e.acc.Storage)
			return errors.Wrapf(err, "storage root of %v", e.addr)
		})
	}
	if err := g.Wait(); err != nil {
		return thor.Bytes32{}, err
	}

	leaves := make([]trieLeaf, 0, len(entries))
	for _, e := range entries {
		enc, err := encodeAccount(&e.acc.Info, e.root)
		if err != nil {
			return thor.Bytes32{}, errors.Wrapf(err, "encode account %v", e.addr)
		}
		leaves = append(leaves, trieLeaf{s.keys.Address(e.addr), enc})
	}

	root, err := deriveRoot(leaves)
	if err != nil {
		return thor.Bytes32{}, errors.Wrap(err, "state root")
	}

	elapsed := time.Since(start)
	metricRootDuration().Observe(elapsed.Milliseconds())
	s.keys.report()
	logger.Trace("computed state root", "root", root, "accounts", len(entries), "layers", s.layers.Depth(), "elapsed", common.PrettyDuration(elapsed))
	return root, nil
}

// AccountStorageRoot computes the storage root of the account at addr.
// ok is false if the account does not exist.
func (s *State) AccountStorageRoot(addr thor.Address) (root thor.Bytes32, ok bool, err error) {
	acc := s.Account(addr)
	if acc == nil {
		return thor.Bytes32{}, false, nil
	}
	root, err = storageRoot(s.keys, acc.Storage)
	if err != nil {
		return thor.Bytes32{}, false, errors.Wrapf(err, "storage root of %v", addr)
	}
	return root, true, nil
}
