// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stackedmap_test

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vechain/layerstate/stackedmap"
)

type kvLayer map[string]string

func (l kvLayer) Copy() kvLayer {
	return maps.Clone(l)
}

func newKV() kvLayer { return make(kvLayer) }

func get(sm *stackedmap.StackedMap[kvLayer], key string) (string, bool) {
	for _, l := range sm.TopDown() {
		if v, ok := l[key]; ok {
			return v, true
		}
	}
	return "", false
}

func M(a ...any) []any {
	return a
}

func TestStackedMap(t *testing.T) {
	assert := assert.New(t)

	sm := stackedmap.New(kvLayer{"foo": "bar"}, newKV)

	tests := []struct {
		f         func()
		depth     int
		putKey    string
		putValue  string
		getKey    string
		getReturn []any
	}{
		{func() {}, 1, "", "", "foo", M("bar", true)},
		{func() { sm.PushDefault() }, 2, "foo", "baz", "foo", M("baz", true)},
		{func() {}, 2, "foo", "baz1", "foo", M("baz1", true)},
		{func() { sm.PushDefault() }, 3, "foo", "qux", "foo", M("qux", true)},
		{func() { sm.TruncateTo(1) }, 2, "", "", "foo", M("baz1", true)},
		{func() { sm.TruncateTo(0) }, 1, "", "", "foo", M("bar", true)},
		{func() {}, 1, "", "", "missing", M("", false)},

		{func() { sm.PushDefault(); sm.PushDefault() }, 3, "", "", "", nil},
		{func() { sm.TruncateTo(0) }, 1, "", "", "", nil},
	}

	for _, test := range tests {
		test.f()
		assert.Equal(test.depth, sm.Depth())
		assert.Equal(test.depth-1, sm.TopIndex())
		if test.putKey != "" {
			sm.Top()[test.putKey] = test.putValue
		}
		if test.getKey != "" {
			assert.Equal(test.getReturn, M(get(sm, test.getKey)))
		}
	}
}

func TestStackedMapPush(t *testing.T) {
	sm := stackedmap.NewDefault(newKV)

	idx, l := sm.Push(kvLayer{"a": "1"})
	assert.Equal(t, 1, idx)
	assert.Equal(t, "1", l["a"])
	assert.Equal(t, "1", sm.At(1)["a"])

	idx, l = sm.PushDefault()
	assert.Equal(t, 2, idx)
	assert.Empty(t, l)
}

func TestStackedMapTopDown(t *testing.T) {
	sm := stackedmap.New(kvLayer{"l": "0"}, newKV)
	sm.Push(kvLayer{"l": "1"})
	sm.Push(kvLayer{"l": "2"})

	var seen []int
	for i, l := range sm.TopDown() {
		assert.Equal(t, l["l"], string(rune('0'+i)))
		seen = append(seen, i)
	}
	assert.Equal(t, []int{2, 1, 0}, seen)

	// restartable and stoppable
	seen = seen[:0]
	for i := range sm.TopDown() {
		seen = append(seen, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{2, 1}, seen)
}

func TestStackedMapCopy(t *testing.T) {
	sm := stackedmap.New(kvLayer{"foo": "bar"}, newKV)
	sm.PushDefault()
	sm.Top()["foo"] = "baz"

	cpy := sm.Copy()
	sm.Top()["foo"] = "qux"
	sm.TruncateTo(0)
	sm.Top()["foo"] = "changed"

	assert.Equal(t, 2, cpy.Depth())
	assert.Equal(t, M("baz", true), M(get(cpy, "foo")))
	assert.Equal(t, "bar", cpy.At(0)["foo"])
}

func TestStackedMapInvalidIndex(t *testing.T) {
	sm := stackedmap.NewDefault(newKV)

	assert.Panics(t, func() { sm.TruncateTo(1) })
	assert.Panics(t, func() { sm.TruncateTo(-1) })
	assert.Panics(t, func() { sm.At(3) })
	assert.NotPanics(t, func() { sm.TruncateTo(0) })
}
