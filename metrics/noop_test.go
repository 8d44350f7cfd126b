// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoopMetrics(t *testing.T) {
	noop := defaultNoopMetrics()

	for _, a := range []any{
		noop.GetOrCreateGaugeMeter("noopGauge"),
		noop.GetOrCreateCountMeter("noopCounter"),
		noop.GetOrCreateCountVecMeter("noopCounter", nil),
		noop.GetOrCreateHistogramMeter("noopHist", nil),
	} {
		require.IsType(t, &noopMeters{}, a)
	}

	require.NotPanics(t, func() {
		noop.GetOrCreateCountMeter("count1").Add(1)
		noop.GetOrCreateCountVecMeter("countVec1", []string{"op"}).AddWithLabel(1, map[string]string{"thisIsNonsense": "butDoesntBreak"})
		noop.GetOrCreateGaugeMeter("gauge1").Set(3)
		noop.GetOrCreateHistogramMeter("hist1", nil).Observe(7)
	})
}
