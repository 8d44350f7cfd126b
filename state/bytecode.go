// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"

	"github.com/vechain/layerstate/thor"
)

// Bytecode is immutable contract code together with its keccak-256 hash.
// Since it is never modified after creation, a *Bytecode may be shared freely.
type Bytecode struct {
	code []byte
	hash thor.Bytes32
}

// NewBytecode creates bytecode from a copy of code.
func NewBytecode(code []byte) *Bytecode {
	if len(code) == 0 {
		return EmptyBytecode()
	}
	cpy := bytes.Clone(code)
	return &Bytecode{code: cpy, hash: thor.Keccak256(cpy)}
}

// EmptyBytecode returns the zero-length code marker.
func EmptyBytecode() *Bytecode {
	return &Bytecode{hash: thor.EmptyCodeHash}
}

// Bytes returns the code. The returned slice must not be modified.
func (b *Bytecode) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.code
}

// Hash returns the keccak-256 hash of the code.
func (b *Bytecode) Hash() thor.Bytes32 {
	if b == nil {
		return thor.EmptyCodeHash
	}
	return b.hash
}

// Len returns the code length.
func (b *Bytecode) Len() int {
	if b == nil {
		return 0
	}
	return len(b.code)
}

// IsEmpty returns if the code is absent or has zero length.
func (b *Bytecode) IsEmpty() bool {
	return b.Len() == 0
}
