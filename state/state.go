// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"maps"
	"slices"

	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"

	"github.com/vechain/layerstate/stackedmap"
	"github.com/vechain/layerstate/thor"
)

var logger = log.New("pkg", "state")

// State manages the world state in layers.
// It is not safe for concurrent use.
type State struct {
	cfg       Config
	keys      *keyHasher
	layers    *stackedmap.StackedMap[*Layer]
	snapshots map[thor.Bytes32]*stackedmap.StackedMap[*Layer]
}

// New create a state with default config and the genesis accounts in its base layer.
func New(genesis map[thor.Address]AccountInfo) *State {
	return NewStater(DefaultConfig()).NewState(genesis)
}

func newState(cfg Config, keys *keyHasher, base *Layer) *State {
	return &State{
		cfg:       cfg,
		keys:      keys,
		layers:    stackedmap.New(base, NewLayer),
		snapshots: make(map[thor.Bytes32]*stackedmap.StackedMap[*Layer]),
	}
}

// Depth returns the number of layers.
func (s *State) Depth() int {
	return s.layers.Depth()
}

// Copy returns an independent copy of the state, snapshots included.
func (s *State) Copy() *State {
	snapshots := make(map[thor.Bytes32]*stackedmap.StackedMap[*Layer], len(s.snapshots))
	for root, snapshot := range s.snapshots {
		snapshots[root] = snapshot.Copy()
	}
	return &State{
		cfg:       s.cfg,
		keys:      s.keys,
		layers:    s.layers.Copy(),
		snapshots: snapshots,
	}
}

// top returns the top layer for modification. A cached root no longer holds
// once the layer changes, so it is dropped.
func (s *State) top() *Layer {
	top := s.layers.Top()
	top.open()
	return top
}

// Account returns the visible account at addr, or nil if it does not exist.
// The returned account must not be modified.
func (s *State) Account(addr thor.Address) *Account {
	for _, layer := range s.layers.TopDown() {
		if acc, found := layer.lookup(addr); found {
			return acc
		}
	}
	return nil
}

// AccountMut returns the account at addr in the top layer for modification,
// copying it up from lower layers if needed. It returns nil if the account
// does not exist, and nothing is inserted in that case.
// The returned account must not be modified after Checkpoint, MakeSnapshot
// or SetStateRoot.
func (s *State) AccountMut(addr thor.Address) *Account {
	if acc, found := s.layers.Top().lookup(addr); found {
		if acc != nil {
			s.top()
		}
		return acc
	}

	acc := s.Account(addr)
	if acc == nil {
		return nil
	}
	cpy := acc.Copy()
	s.top().accounts[addr] = cpy
	return cpy
}

// AccountOrInsertMut is like AccountMut, but inserts a default account in the
// top layer when none is visible. The same validity rule applies to the returned account.
func (s *State) AccountOrInsertMut(addr thor.Address) *Account {
	top := s.top()
	if acc, _ := top.lookup(addr); acc != nil {
		return acc
	}

	var acc *Account
	if visible := s.Account(addr); visible != nil {
		acc = visible.Copy()
	} else {
		acc = newAccount(DefaultAccountInfo())
	}
	top.accounts[addr] = acc
	return acc
}

// Basic returns the account info at addr.
// Every address implicitly exists, so a default info is returned for unknown accounts.
func (s *State) Basic(addr thor.Address) (AccountInfo, error) {
	if acc := s.Account(addr); acc != nil {
		return acc.Info, nil
	}
	return DefaultAccountInfo(), nil
}

// CodeByHash returns the code stored under hash in the nearest layer holding it.
func (s *State) CodeByHash(hash thor.Bytes32) (*Bytecode, error) {
	for _, layer := range s.layers.TopDown() {
		if code, ok := layer.Code(hash); ok {
			return code, nil
		}
	}
	return nil, &CodeNotFoundError{hash}
}

// Storage returns the value of slot of the account at addr. Unset slots are zero.
func (s *State) Storage(addr thor.Address, slot thor.Bytes32) (uint256.Int, error) {
	if acc := s.Account(addr); acc != nil {
		return acc.Storage[slot], nil
	}
	return uint256.Int{}, nil
}

// InsertAccount puts the account info at addr in the top layer, replacing the
// visible account and its storage.
func (s *State) InsertAccount(addr thor.Address, info AccountInfo) {
	s.top().InsertAccount(addr, newAccount(info))
}

// RemoveAccount deletes the account at addr and returns its info.
// ok is false if the account did not exist.
func (s *State) RemoveAccount(addr thor.Address) (info *AccountInfo, ok bool) {
	acc := s.Account(addr)
	if acc == nil {
		return nil, false
	}
	prev := acc.Info

	top := s.top()
	if prev.CodeHash != thor.EmptyCodeHash && !prev.CodeHash.IsZero() {
		// code of the removed account resolves to empty code from now on
		top.contracts[prev.CodeHash] = EmptyBytecode()
	}
	top.tombstone(addr)
	return &prev, true
}

// Commit applies the changes produced by execution to the top layer.
func (s *State) Commit(changes map[thor.Address]*AccountDiff) {
	if len(changes) == 0 {
		return
	}
	for addr, diff := range changes {
		if diff.IsEmpty() || diff.Destroyed {
			s.RemoveAccount(addr)
			continue
		}

		acc := s.AccountOrInsertMut(addr)
		acc.Info = diff.Info
		s.top().normalize(acc)

		if diff.StorageCleared {
			clear(acc.Storage)
		}
		for slot, value := range diff.Storage {
			acc.SetStorage(slot, &value.Present)
		}
	}
	countOp("commit")
	metricCommitAccounts().Add(int64(len(changes)))
}

// SetAccountStorageSlot sets the value of slot of the account at addr, creating the account if needed.
func (s *State) SetAccountStorageSlot(addr thor.Address, slot thor.Bytes32, value *uint256.Int) {
	s.AccountOrInsertMut(addr).SetStorage(slot, value)
}

// AccountFields is the modifiable view of an account passed to ModifyAccount.
type AccountFields struct {
	Balance uint256.Int
	Nonce   uint64
	// Code is nil if the account has code that no layer holds.
	// Leaving it nil then clears the code.
	Code *Bytecode
}

// ModifyAccount calls modify with the fields of the account at addr and applies
// the result. Replaced code is stored in the top layer, and its old hash then
// resolves to empty code.
func (s *State) ModifyAccount(addr thor.Address, modify func(fields *AccountFields)) {
	info, _ := s.Basic(addr)

	code := info.Code
	if code == nil {
		var err error
		if code, err = s.CodeByHash(info.CodeHash); err != nil {
			logger.Debug("modify account without code", "addr", addr, "err", err)
		}
	}
	fields := AccountFields{
		Balance: info.Balance,
		Nonce:   info.Nonce,
		Code:    code,
	}
	modify(&fields)

	acc := s.AccountOrInsertMut(addr)
	acc.Info.Balance = fields.Balance
	acc.Info.Nonce = fields.Nonce
	if code != nil && fields.Code == code {
		return
	}

	top := s.top()
	oldHash := acc.Info.CodeHash
	newHash := fields.Code.Hash()

	acc.Info.CodeHash = newHash
	if newHash == thor.EmptyCodeHash {
		acc.Info.Code = EmptyBytecode()
	} else {
		acc.Info.Code = nil
		top.contracts[newHash] = fields.Code
	}
	if oldHash != thor.EmptyCodeHash && !oldHash.IsZero() && oldHash != newHash {
		top.contracts[oldHash] = EmptyBytecode()
	}
}

// Checkpoint seals the top layer with the current state root and opens a new layer.
func (s *State) Checkpoint() error {
	root, err := s.sealTop()
	if err != nil {
		return err
	}
	depth, _ := s.layers.PushDefault()

	countOp("checkpoint")
	metricLayerDepth().Set(int64(depth + 1))
	logger.Debug("checkpoint", "root", root, "depth", depth+1)
	return nil
}

// Revert discards the top layer. The base layer can't be reverted.
func (s *State) Revert() error {
	top := s.layers.TopIndex()
	if top == 0 {
		return ErrCannotRevert
	}
	s.layers.TruncateTo(top - 1)

	countOp("revert")
	metricLayerDepth().Set(int64(top))
	logger.Debug("revert", "depth", top)
	return nil
}

// sealTop computes the state root and seals the top layer with it.
// The cached root of the top layer is never reused, since accounts handed out
// by AccountMut may have changed the layer after it was sealed.
func (s *State) sealTop() (thor.Bytes32, error) {
	root, err := s.StateRoot()
	if err != nil {
		return thor.Bytes32{}, err
	}
	s.layers.Top().seal(root)
	return root, nil
}

// MakeSnapshot records a copy of the current layers under the current state root.
// existed is true if a snapshot of that root was already recorded, which is then kept.
func (s *State) MakeSnapshot() (root thor.Bytes32, existed bool, err error) {
	if root, err = s.sealTop(); err != nil {
		return thor.Bytes32{}, false, err
	}
	if _, existed = s.snapshots[root]; !existed {
		s.snapshots[root] = s.layers.Copy()
		countOp("snapshot")
	}
	logger.Debug("make snapshot", "root", root, "existed", existed, "snapshots", len(s.snapshots))
	return root, existed, nil
}

// RemoveSnapshot deletes the snapshot of root, returning whether there was one.
func (s *State) RemoveSnapshot(root thor.Bytes32) bool {
	_, ok := s.snapshots[root]
	delete(s.snapshots, root)
	if ok {
		logger.Debug("remove snapshot", "root", root, "snapshots", len(s.snapshots))
	}
	return ok
}

// SetStateRoot restores the state to root. A snapshot of root is preferred,
// otherwise the layers are truncated down to the layer sealed with root.
func (s *State) SetStateRoot(root thor.Bytes32) error {
	if snapshot, ok := s.snapshots[root]; ok {
		s.layers = snapshot.Copy()
		s.restored("snapshot", root)
		return nil
	}

	if _, err := s.sealTop(); err != nil {
		return err
	}

	for i := range s.layers.Depth() {
		layerRoot, ok := s.layers.At(i).Root()
		if !ok {
			panic("state: layer below the top is not sealed")
		}
		if layerRoot == root {
			s.layers.TruncateTo(i)
			s.restored("checkpoint", root)
			return nil
		}
	}
	return &UnknownStateRootError{root}
}

func (s *State) restored(from string, root thor.Bytes32) {
	countOp("restore")
	metricLayerDepth().Set(int64(s.layers.Depth()))
	logger.Debug("set state root", "root", root, "from", from, "depth", s.layers.Depth())
}

// Snapshots returns the roots of recorded snapshots, in no particular order.
func (s *State) Snapshots() []thor.Bytes32 {
	return slices.Collect(maps.Keys(s.snapshots))
}
