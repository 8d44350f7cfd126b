// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stackedmap

import (
	"fmt"
	"iter"
)

// Copier is implemented by layers that can produce an independent deep copy.
type Copier[L any] interface {
	Copy() L
}

// StackedMap maintains layers in a stack.
// Each layer shadows the layers below it, so lookups walk the stack from top to base.
// It acts as a map with save-restore/snapshot-revert manner.
type StackedMap[L Copier[L]] struct {
	newLayer func() L
	levels   []L
}

// New creates an instance of StackedMap with base at the bottom.
// newLayer is used by PushDefault to build empty layers.
func New[L Copier[L]](base L, newLayer func() L) *StackedMap[L] {
	return &StackedMap[L]{
		newLayer: newLayer,
		levels:   []L{base},
	}
}

// NewDefault creates an instance of StackedMap with an empty base layer.
func NewDefault[L Copier[L]](newLayer func() L) *StackedMap[L] {
	return New(newLayer(), newLayer)
}

// Depth returns depth of stack.
func (sm *StackedMap[L]) Depth() int {
	return len(sm.levels)
}

// TopIndex returns the index of the top layer.
func (sm *StackedMap[L]) TopIndex() int {
	return len(sm.levels) - 1
}

// Push pushes a layer on stack.
// It returns the index of the new top and the layer itself.
func (sm *StackedMap[L]) Push(layer L) (int, L) {
	sm.levels = append(sm.levels, layer)
	return len(sm.levels) - 1, layer
}

// PushDefault pushes an empty layer on stack.
func (sm *StackedMap[L]) PushDefault() (int, L) {
	return sm.Push(sm.newLayer())
}

// Top returns the layer at top of stack.
// It will panic if stack is empty, which never happens for stacks built by New.
func (sm *StackedMap[L]) Top() L {
	if len(sm.levels) == 0 {
		panic("stackedmap: empty stack")
	}
	return sm.levels[len(sm.levels)-1]
}

// At returns the layer at index i, 0 being the base.
func (sm *StackedMap[L]) At(i int) L {
	sm.checkIndex(i)
	return sm.levels[i]
}

// TruncateTo removes every layer above index i.
func (sm *StackedMap[L]) TruncateTo(i int) {
	sm.checkIndex(i)
	clear(sm.levels[i+1:])
	sm.levels = sm.levels[:i+1]
}

// TopDown returns a sequence over layers from top to base, with their indexes.
func (sm *StackedMap[L]) TopDown() iter.Seq2[int, L] {
	return func(yield func(int, L) bool) {
		for i := len(sm.levels) - 1; i >= 0; i-- {
			if !yield(i, sm.levels[i]) {
				return
			}
		}
	}
}

// Copy returns a deep copy of the stack. Layers are copied via their Copy method.
func (sm *StackedMap[L]) Copy() *StackedMap[L] {
	levels := make([]L, len(sm.levels))
	for i, l := range sm.levels {
		levels[i] = l.Copy()
	}
	return &StackedMap[L]{
		newLayer: sm.newLayer,
		levels:   levels,
	}
}

func (sm *StackedMap[L]) checkIndex(i int) {
	if i < 0 || i >= len(sm.levels) {
		panic(fmt.Sprintf("stackedmap: layer index %d out of range [0, %d)", i, len(sm.levels)))
	}
}
