// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vechain/layerstate/thor"
)

// ErrCannotRevert is returned when reverting with only the base layer left.
var ErrCannotRevert = errors.New("state: cannot revert the base layer")

// CodeNotFoundError is returned when no layer holds code for the hash.
type CodeNotFoundError struct {
	CodeHash thor.Bytes32
}

func (e *CodeNotFoundError) Error() string {
	return fmt.Sprintf("state: code not found: %v", e.CodeHash)
}

// UnknownStateRootError is returned when a state root matches neither a snapshot nor a checkpoint.
type UnknownStateRootError struct {
	Root thor.Bytes32
}

func (e *UnknownStateRootError) Error() string {
	return fmt.Sprintf("state: unknown state root: %v", e.Root)
}

// IsCodeNotFound returns whether the error is caused by missing code.
func IsCodeNotFound(err error) bool {
	var e *CodeNotFoundError
	return errors.As(err, &e)
}

// IsUnknownStateRoot returns whether the error is caused by an unknown state root.
func IsUnknownStateRoot(err error) bool {
	var e *UnknownStateRootError
	return errors.As(err, &e)
}
