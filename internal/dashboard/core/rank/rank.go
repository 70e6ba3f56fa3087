// Package rank computes the competitive position of one peer within a group.
//
// A peer's rank is one plus the number of peers with a strictly greater
// value. Equal values share a rank and ranks after a tie are not renumbered,
// so several peers can report the same rank at once.
package rank

import (
	"sort"
	"strings"

	"chain-usage-dashboard/internal/dashboard/core/aggregate"
	"chain-usage-dashboard/internal/dashboard/core/domain"
)

// subjectValue resolves subject case-insensitively against the peer keys.
// When unmerged case variants exist their values are summed, so the result
// does not depend on the casing of subject.
func subjectValue(peers aggregate.PeerValueMap, subject string) (float64, bool) {
	var (
		sum   float64
		found bool
	)
	for p, v := range peers {
		if isSubject(p, subject) {
			sum += v
			found = true
		}
	}
	return sum, found
}

func isSubject(peer, subject string) bool {
	return strings.EqualFold(peer, subject)
}

// Rank returns 1 + the number of peers whose value is strictly greater than
// the subject's. A subject missing from peers has value 0. An empty peer set
// yields 1, which carries no comparative meaning.
func Rank(peers aggregate.PeerValueMap, subject string) int {
	v, _ := subjectValue(peers, subject)
	r := 1
	for p, pv := range peers {
		if isSubject(p, subject) {
			continue
		}
		if pv > v {
			r++
		}
	}
	return r
}

// RankGlobal is Rank for "among all chains" views: a subject with no
// representation at all reports the peer count instead.
func RankGlobal(peers aggregate.PeerValueMap, subject string) int {
	if _, ok := subjectValue(peers, subject); !ok {
		if len(peers) == 0 {
			return 1
		}
		return len(peers)
	}
	return Rank(peers, subject)
}

// PeerCount counts distinct peers after folding case.
func PeerCount(peers aggregate.PeerValueMap) int {
	seen := make(map[string]struct{}, len(peers))
	for p := range peers {
		seen[strings.ToLower(p)] = struct{}{}
	}
	return len(seen)
}

// Meaningful reports whether a rank over peerCount peers is worth showing.
// Callers render a dash otherwise.
func Meaningful(peerCount int) bool {
	return peerCount > 1
}

// Breakdown lists peers by value descending, ties by name.
func Breakdown(peers aggregate.PeerValueMap) []domain.PeerValue {
	out := make([]domain.PeerValue, 0, len(peers))
	for p, v := range peers {
		out = append(out, domain.PeerValue{Peer: p, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Peer < out[j].Peer
	})
	return out
}
