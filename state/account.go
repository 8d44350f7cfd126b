// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"maps"

	"github.com/holiman/uint256"
	"github.com/vechain/layerstate/thor"
)

// AccountInfo is the ledger visible part of an account.
type AccountInfo struct {
	Balance  uint256.Int
	Nonce    uint64
	CodeHash thor.Bytes32
	// Code is nil once the code is kept in a layer's contract table.
	Code *Bytecode
}

// DefaultAccountInfo returns the info every unknown address implicitly has:
// zero balance, zero nonce and empty code.
func DefaultAccountInfo() AccountInfo {
	return AccountInfo{
		CodeHash: thor.EmptyCodeHash,
		Code:     EmptyBytecode(),
	}
}

// IsEmpty returns if an account is empty.
// An empty account has zero balance, zero nonce and no code.
func (a *AccountInfo) IsEmpty() bool {
	return a.Balance.IsZero() &&
		a.Nonce == 0 &&
		(a.CodeHash == thor.EmptyCodeHash || a.CodeHash.IsZero())
}

// Storage maps storage slots to values. Zero values are never kept.
type Storage map[thor.Bytes32]uint256.Int

// Copy returns an independent copy of the storage.
func (s Storage) Copy() Storage {
	if s == nil {
		return make(Storage)
	}
	return maps.Clone(s)
}

// Account is an account record kept in a layer.
type Account struct {
	Info    AccountInfo
	Storage Storage
}

func newAccount(info AccountInfo) *Account {
	return &Account{
		Info:    info,
		Storage: make(Storage),
	}
}

// Copy returns a deep copy of the account.
func (a *Account) Copy() *Account {
	return &Account{
		Info:    a.Info,
		Storage: a.Storage.Copy(),
	}
}

// SetStorage sets the value of slot, removing the slot when value is zero.
func (a *Account) SetStorage(slot thor.Bytes32, value *uint256.Int) {
	if value.IsZero() {
		delete(a.Storage, slot)
		return
	}
	if a.Storage == nil {
		a.Storage = make(Storage)
	}
	a.Storage[slot] = *value
}

// detachCode takes out the inline code, so that it can be kept in a contract table.
// It returns nil if the account has no code to detach.
func (a *Account) detachCode() *Bytecode {
	if a.Info.CodeHash == thor.EmptyCodeHash || a.Info.Code.IsEmpty() {
		return nil
	}
	code := a.Info.Code
	a.Info.Code = nil
	a.Info.CodeHash = code.Hash()
	return code
}
