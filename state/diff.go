// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/holiman/uint256"
	"github.com/vechain/layerstate/thor"
)

// StorageSlot is a storage change produced by execution.
type StorageSlot struct {
	Original uint256.Int
	Present  uint256.Int
}

// IsChanged returns whether the present value differs from the original one.
func (s *StorageSlot) IsChanged() bool {
	return s.Original != s.Present
}

// AccountDiff is the change of one account produced by execution.
type AccountDiff struct {
	Info    AccountInfo
	Storage map[thor.Bytes32]*StorageSlot
	// StorageCleared is set when all previous storage must be dropped
	// before Storage is applied.
	StorageCleared bool
	Destroyed      bool
}

// IsEmpty returns whether the account ends up empty, see AccountInfo.IsEmpty.
func (d *AccountDiff) IsEmpty() bool {
	return d.Info.IsEmpty()
}
