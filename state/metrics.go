// Copyright (c) 2024 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import "github.com/vechain/layerstate/metrics"

var (
	metricLayerOps     = metrics.LazyLoadCounterVec("state_layer_ops_count", []string{"op"})
	metricLayerDepth   = metrics.LazyLoadGauge("state_layer_depth")
	metricRootDuration = metrics.LazyLoadHistogram("state_root_duration_ms", metrics.BucketRootMillis)
	metricKeyCache     = metrics.LazyLoadCounterVec("state_key_cache_count", []string{"event"})

	metricCommitAccounts = metrics.LazyLoadCounter("state_commit_accounts_count")
)

func countOp(op string) {
	metricLayerOps().AddWithLabel(1, map[string]string{"op": op})
}
