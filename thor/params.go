// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

var (
	// EmptyCodeHash is the keccak-256 digest of zero-length code.
	EmptyCodeHash = Keccak256(nil)

	// EmptyRoot is the root of an empty merkle patricia trie.
	EmptyRoot = MustParseBytes32("0x56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421")
)
