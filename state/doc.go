// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package state keeps the in-memory account state of an execution context.
// It follows the flow as bellow:
//
//	         o
//	         |
//	[ reads / commits ]
//	         |
//	  [ open top layer ]  <- checkpoint seals it with a root and pushes a new one
//	         |
//	 [ sealed layers ]    <- revert / set state root truncate down to one of them
//	         |
//	   [ base layer ]     <- genesis accounts, never reverted
//
// Reads walk the layers from top to base and stop at the first layer that
// mentions an address. A deleted account is kept as a tombstone so it shadows
// the layers below. Code is stored once per layer in a table keyed by its hash.
//
// The state root is a secure merkle patricia trie root over the merged view,
// compatible with Ethereum's account and storage tries.
package state
