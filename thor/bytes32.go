// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Bytes32 is a 32-byte value: a hash, a state root or a storage slot.
type Bytes32 [32]byte

// String returns the 0x-prefixed hex form.
func (b Bytes32) String() string {
	return hexutil.Encode(b[:])
}

// Bytes returns byte slice form of Bytes32.
func (b Bytes32) Bytes() []byte {
	return b[:]
}

// IsZero returns if Bytes32 has all zero bytes.
func (b Bytes32) IsZero() bool {
	return b == Bytes32{}
}

// Compare returns -1, 0 or 1 as b sorts before, equal to or after other.
func (b Bytes32) Compare(other Bytes32) int {
	return bytes.Compare(b[:], other[:])
}

// MustParseBytes32 converts a 0x-prefixed hex string of exactly 32 bytes, panic on error.
func MustParseBytes32(s string) Bytes32 {
	b := hexutil.MustDecode(s)
	if len(b) != len(Bytes32{}) {
		panic(fmt.Sprintf("thor: bytes32 needs 32 bytes, got %d", len(b)))
	}
	return Bytes32(b)
}

// BytesToBytes32 converts bytes slice into Bytes32.
// Longer input is cropped from the left, shorter input is left padded with zeros.
func BytesToBytes32(b []byte) Bytes32 {
	return Bytes32(common.BytesToHash(b))
}
