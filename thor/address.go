// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AddressLength length of address in bytes.
const AddressLength = common.AddressLength

// Address address of account.
type Address common.Address

// String returns the 0x-prefixed hex form.
func (a Address) String() string {
	return hexutil.Encode(a[:])
}

// Bytes returns byte slice form of address.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero returns if address has all zero bytes.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Compare returns -1, 0 or 1 as a sorts before, equal to or after b.
func (a Address) Compare(b Address) int {
	return bytes.Compare(a[:], b[:])
}

// BytesToAddress converts bytes slice into address.
// Longer input is cropped from the left, shorter input is left padded with zeros.
func BytesToAddress(b []byte) Address {
	return Address(common.BytesToAddress(b))
}
