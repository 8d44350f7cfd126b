// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"maps"

	"github.com/vechain/layerstate/thor"
)

// Layer is one copy-on-write delta of the state.
type Layer struct {
	// accounts overlay. A nil value is a tombstone: the account was deleted
	// in this layer and lower layers must not be consulted.
	accounts map[thor.Address]*Account
	// contracts is keyed by code hash.
	contracts map[thor.Bytes32]*Bytecode
	// root is the cached state root, set when the layer is sealed.
	root *thor.Bytes32
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{
		accounts:  make(map[thor.Address]*Account),
		contracts: make(map[thor.Bytes32]*Bytecode),
	}
}

// NewGenesisLayer creates a layer holding the genesis accounts.
// Code carried by the accounts is moved into the contract table.
func NewGenesisLayer(accounts map[thor.Address]AccountInfo) *Layer {
	l := NewLayer()
	for addr, info := range accounts {
		l.InsertAccount(addr, newAccount(info))
	}
	return l
}

// InsertAccount puts the account at addr.
// A zero code hash is treated as empty code. Accounts without code carry
// the empty code marker, the others have their code moved into the contract table.
func (l *Layer) InsertAccount(addr thor.Address, acc *Account) {
	l.normalize(acc)
	if acc.Storage == nil {
		acc.Storage = make(Storage)
	}
	l.accounts[addr] = acc
}

func (l *Layer) normalize(acc *Account) {
	if acc.Info.CodeHash.IsZero() {
		acc.Info.CodeHash = thor.EmptyCodeHash
	}

	if acc.Info.CodeHash == thor.EmptyCodeHash {
		acc.Info.Code = EmptyBytecode()
	} else if code := acc.detachCode(); code != nil {
		l.contracts[code.Hash()] = code
	}
}

// HasRoot returns whether the layer is sealed with a state root.
func (l *Layer) HasRoot() bool {
	return l.root != nil
}

// Root returns the cached state root.
func (l *Layer) Root() (thor.Bytes32, bool) {
	if l.root == nil {
		return thor.Bytes32{}, false
	}
	return *l.root, true
}

// Code returns the code stored under hash in this layer.
func (l *Layer) Code(hash thor.Bytes32) (*Bytecode, bool) {
	code, ok := l.contracts[hash]
	return code, ok
}

// Copy returns a deep copy of the layer.
func (l *Layer) Copy() *Layer {
	accounts := make(map[thor.Address]*Account, len(l.accounts))
	for addr, acc := range l.accounts {
		if acc == nil {
			accounts[addr] = nil
		} else {
			accounts[addr] = acc.Copy()
		}
	}

	cpy := &Layer{
		accounts: accounts,
		// bytecode is immutable, sharing is fine
		contracts: maps.Clone(l.contracts),
	}
	if l.root != nil {
		root := *l.root
		cpy.root = &root
	}
	return cpy
}

// lookup returns the entry for addr. found is true for tombstones too.
func (l *Layer) lookup(addr thor.Address) (acc *Account, found bool) {
	acc, found = l.accounts[addr]
	return
}

func (l *Layer) tombstone(addr thor.Address) {
	l.accounts[addr] = nil
}

func (l *Layer) seal(root thor.Bytes32) {
	l.root = &root
}

// open drops the cached root since the layer is about to change.
func (l *Layer) open() {
	l.root = nil
}
