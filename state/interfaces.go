// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/holiman/uint256"
	"github.com/vechain/layerstate/thor"
)

// Reader is the read access used by program execution.
type Reader interface {
	Basic(addr thor.Address) (AccountInfo, error)
	CodeByHash(hash thor.Bytes32) (*Bytecode, error)
	Storage(addr thor.Address, slot thor.Bytes32) (uint256.Int, error)
}

// Committer applies the changes produced by program execution.
type Committer interface {
	Commit(changes map[thor.Address]*AccountDiff)
}

// Debugger is the administrative access used by tooling.
type Debugger interface {
	InsertAccount(addr thor.Address, info AccountInfo)
	RemoveAccount(addr thor.Address) (*AccountInfo, bool)
	SetAccountStorageSlot(addr thor.Address, slot thor.Bytes32, value *uint256.Int)
	ModifyAccount(addr thor.Address, modify func(fields *AccountFields))
	AccountStorageRoot(addr thor.Address) (thor.Bytes32, bool, error)
	Checkpoint() error
	Revert() error
	MakeSnapshot() (thor.Bytes32, bool, error)
	RemoveSnapshot(root thor.Bytes32) bool
	SetStateRoot(root thor.Bytes32) error
	StateRoot() (thor.Bytes32, error)
}

var (
	_ Reader    = (*State)(nil)
	_ Committer = (*State)(nil)
	_ Debugger  = (*State)(nil)
)
