// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vechain/layerstate/thor"
)

func TestGenesisLayer(t *testing.T) {
	eoa := thor.BytesToAddress([]byte("eoa"))
	contract := thor.BytesToAddress([]byte("contract"))
	code := NewBytecode([]byte{0x60, 0x01})

	l := NewGenesisLayer(map[thor.Address]AccountInfo{
		eoa:      {Balance: u256(100)},
		contract: {Balance: u256(1), CodeHash: code.Hash(), Code: code},
	})

	acc, found := l.lookup(eoa)
	require.True(t, found)
	assert.Equal(t, u256(100), acc.Info.Balance)
	assert.Equal(t, thor.EmptyCodeHash, acc.Info.CodeHash, "zero code hash should be normalized")
	assert.NotNil(t, acc.Info.Code)
	assert.True(t, acc.Info.Code.IsEmpty())

	acc, found = l.lookup(contract)
	require.True(t, found)
	assert.Nil(t, acc.Info.Code, "code should be moved to the contract table")
	assert.Equal(t, code.Hash(), acc.Info.CodeHash)

	stored, ok := l.Code(code.Hash())
	require.True(t, ok)
	assert.Equal(t, code.Bytes(), stored.Bytes())

	assert.False(t, l.HasRoot())
}

func TestLayerInsertAccount(t *testing.T) {
	l := NewLayer()
	addr := thor.BytesToAddress([]byte("addr"))

	l.InsertAccount(addr, &Account{Info: AccountInfo{CodeHash: thor.EmptyCodeHash}})
	acc, _ := l.lookup(addr)
	assert.NotNil(t, acc.Info.Code, "empty code should carry the empty code marker")
	assert.NotNil(t, acc.Storage)
	assert.Empty(t, l.contracts)

	code := NewBytecode([]byte{1})
	l.InsertAccount(addr, newAccount(AccountInfo{CodeHash: code.Hash(), Code: code}))
	acc, _ = l.lookup(addr)
	assert.Nil(t, acc.Info.Code)
	assert.Len(t, l.contracts, 1)

	l.tombstone(addr)
	acc, found := l.lookup(addr)
	assert.True(t, found, "tombstone is an entry")
	assert.Nil(t, acc)

	l.InsertAccount(addr, newAccount(DefaultAccountInfo()))
	acc, _ = l.lookup(addr)
	assert.NotNil(t, acc, "insert should replace a tombstone")
}

func TestLayerRoot(t *testing.T) {
	l := NewLayer()
	_, ok := l.Root()
	assert.False(t, ok)

	root := thor.Bytes32{1}
	l.seal(root)
	got, ok := l.Root()
	assert.True(t, ok)
	assert.Equal(t, root, got)

	l.open()
	assert.False(t, l.HasRoot())
}

func TestLayerCopy(t *testing.T) {
	addr := thor.BytesToAddress([]byte("addr"))
	gone := thor.BytesToAddress([]byte("gone"))

	l := NewGenesisLayer(map[thor.Address]AccountInfo{addr: {Balance: u256(1)}})
	l.tombstone(gone)
	l.seal(thor.Bytes32{9})

	cpy := l.Copy()

	acc, _ := l.lookup(addr)
	acc.Info.Balance = u256(2)
	v := u256(3)
	acc.SetStorage(thor.Bytes32{1}, &v)
	l.open()

	cpyAcc, _ := cpy.lookup(addr)
	assert.Equal(t, u256(1), cpyAcc.Info.Balance)
	assert.Empty(t, cpyAcc.Storage)

	tomb, found := cpy.lookup(gone)
	assert.True(t, found)
	assert.Nil(t, tomb)

	root, ok := cpy.Root()
	assert.True(t, ok)
	assert.Equal(t, thor.Bytes32{9}, root)
}
