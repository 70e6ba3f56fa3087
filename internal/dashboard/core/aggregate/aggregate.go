// Package aggregate groups fact rows by dimension tuples and sums their facts.
//
// Grouping keeps the casing of the first row seen for a key; only filter
// predicates compare strings case-insensitively.
package aggregate

import (
	"strings"

	"chain-usage-dashboard/internal/dashboard/core/domain"
)

// KeyFunc picks the grouping tuple of a row.
type KeyFunc func(r domain.FactRow) domain.Key

// Buckets is an insertion-ordered map of aggregate buckets.
type Buckets struct {
	index map[domain.Key]int
	items []domain.AggregateBucket
}

func newBuckets() *Buckets {
	return &Buckets{index: make(map[domain.Key]int)}
}

// Aggregate folds rows into buckets keyed by keyFn. Pure; rows are not modified.
func Aggregate(rows []domain.FactRow, keyFn KeyFunc) *Buckets {
	b := newBuckets()
	for _, r := range rows {
		b.bucket(keyFn(r)).Add(r)
	}
	return b
}

func (b *Buckets) bucket(k domain.Key) *domain.AggregateBucket {
	i, ok := b.index[k]
	if !ok {
		i = len(b.items)
		b.index[k] = i
		b.items = append(b.items, domain.AggregateBucket{Key: k})
	}
	return &b.items[i]
}

func (b *Buckets) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Get returns the bucket for k and whether it exists.
func (b *Buckets) Get(k domain.Key) (domain.AggregateBucket, bool) {
	if b == nil {
		return domain.AggregateBucket{}, false
	}
	i, ok := b.index[k]
	if !ok {
		return domain.AggregateBucket{}, false
	}
	return b.items[i], true
}

// Items returns the buckets in first-seen order. The slice is a copy.
func (b *Buckets) Items() []domain.AggregateBucket {
	if b == nil {
		return nil
	}
	out := make([]domain.AggregateBucket, len(b.items))
	copy(out, b.items)
	return out
}

// Total sums every bucket into one with an empty key.
func (b *Buckets) Total() domain.AggregateBucket {
	var t domain.AggregateBucket
	if b == nil {
		return t
	}
	for _, it := range b.items {
		t.Merge(it)
	}
	return t
}

// Sum folds all rows into a single bucket.
func Sum(rows []domain.FactRow) domain.AggregateBucket {
	var t domain.AggregateBucket
	for _, r := range rows {
		t.Add(r)
	}
	return t
}

// PeerValueMap maps a peer (chain or category) to its summed metric within one group.
type PeerValueMap map[string]float64

// PeerGroups builds, for every group key, the peer->value map of its rows.
// group picks the grouping tuple and peer the peer identifier. With fold set,
// peers differing only by case are merged under the casing of the first row seen.
func PeerGroups(rows []domain.FactRow, group KeyFunc, peer func(domain.FactRow) string, metric domain.Metric, fold bool) map[domain.Key]PeerValueMap {
	type pair struct {
		group domain.Key
		peer  string
	}

	canon := make(map[pair]string)
	out := make(map[domain.Key]PeerValueMap)
	for _, r := range rows {
		gk := group(r)
		p := peer(r)
		if fold {
			id := pair{group: gk, peer: strings.ToLower(p)}
			c, ok := canon[id]
			if !ok {
				c = p
				canon[id] = p
			}
			p = c
		}
		if out[gk] == nil {
			out[gk] = make(PeerValueMap)
		}
		var b domain.AggregateBucket
		b.Add(r)
		out[gk][p] += metric.Value(b)
	}
	return out
}

// MergeCaseInsensitive folds peers whose identifiers differ only by case.
// The folded peer keeps the casing that appears first in peers.
func MergeCaseInsensitive(peers []domain.PeerValue) PeerValueMap {
	canon := make(map[string]string, len(peers))
	out := make(PeerValueMap, len(peers))
	for _, p := range peers {
		folded := strings.ToLower(p.Peer)
		c, seen := canon[folded]
		if !seen {
			c = p.Peer
			canon[folded] = p.Peer
		}
		out[c] += p.Value
	}
	return out
}
