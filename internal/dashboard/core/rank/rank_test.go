package rank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chain-usage-dashboard/internal/dashboard/core/aggregate"
	"chain-usage-dashboard/internal/dashboard/core/domain"
	"chain-usage-dashboard/internal/dashboard/core/rank"
)

func TestRank_StrictlyGreaterCount(t *testing.T) {
	peers := aggregate.PeerValueMap{
		"ethereum": 100,
		"polygon":  300,
		"solana":   100,
		"base":     50,
	}

	assert.Equal(t, 1, rank.Rank(peers, "polygon"))
	assert.Equal(t, 2, rank.Rank(peers, "ethereum"))
	assert.Equal(t, 2, rank.Rank(peers, "solana"))
	// no renumbering after the tie
	assert.Equal(t, 4, rank.Rank(peers, "base"))
}

func TestRank_AllTied(t *testing.T) {
	peers := aggregate.PeerValueMap{"a": 7, "b": 7, "c": 7}
	for p := range peers {
		assert.Equal(t, 1, rank.Rank(peers, p))
	}
}

func TestRank_CaseInsensitiveSubject(t *testing.T) {
	peers := aggregate.PeerValueMap{"ethereum": 100, "polygon": 300, "arbitrum": 10}

	for _, subject := range []string{"ethereum", "Ethereum", "ETHEREUM", "eThErEuM"} {
		assert.Equal(t, 2, rank.Rank(peers, subject), subject)
	}
}

func TestRank_CaseVariantsDoNotCompeteWithSubject(t *testing.T) {
	peers := aggregate.PeerValueMap{"ethereum": 10, "Ethereum": 5, "polygon": 12}

	assert.Equal(t, 1, rank.Rank(peers, "ETHEREUM"))
	assert.Equal(t, rank.Rank(peers, "ethereum"), rank.Rank(peers, "Ethereum"))
}

func TestRank_MissingSubjectIsZero(t *testing.T) {
	peers := aggregate.PeerValueMap{"ethereum": 100, "polygon": 0}

	assert.Equal(t, 2, rank.Rank(peers, "solana"))
}

func TestRank_EmptyPeers(t *testing.T) {
	assert.Equal(t, 1, rank.Rank(aggregate.PeerValueMap{}, "ethereum"))
	assert.Equal(t, 1, rank.Rank(nil, "ethereum"))
}

func TestRank_ZeroSubjectBelowNonZeroPeers(t *testing.T) {
	peers := aggregate.PeerValueMap{"a": 1, "b": 2, "me": 0}
	assert.Equal(t, 3, rank.Rank(peers, "me"))
}

func TestRankGlobal(t *testing.T) {
	peers := aggregate.PeerValueMap{"ethereum": 100, "polygon": 300, "base": 20}

	assert.Equal(t, 2, rank.RankGlobal(peers, "Ethereum"))
	assert.Equal(t, 3, rank.RankGlobal(peers, "solana"))
	assert.Equal(t, 1, rank.RankGlobal(aggregate.PeerValueMap{}, "solana"))
}

func TestPeerCountAndMeaningful(t *testing.T) {
	peers := aggregate.PeerValueMap{"ethereum": 1, "Ethereum": 2, "polygon": 3}

	assert.Equal(t, 2, rank.PeerCount(peers))
	assert.True(t, rank.Meaningful(2))
	assert.False(t, rank.Meaningful(1))
	assert.False(t, rank.Meaningful(0))
}

func TestBreakdown_Ordering(t *testing.T) {
	got := rank.Breakdown(aggregate.PeerValueMap{"b": 5, "a": 5, "c": 9})

	assert.Equal(t, []domain.PeerValue{
		{Peer: "c", Value: 9},
		{Peer: "a", Value: 5},
		{Peer: "b", Value: 5},
	}, got)
}

func TestRank_EndToEnd_CountryCategory(t *testing.T) {
	rows := []domain.FactRow{
		{Date: "2025-06-01", Country: "US", Chain: "ethereum", Category: "defi", TotalRequests: ptr(100)},
		{Date: "2025-06-01", Country: "US", Chain: "polygon", Category: "defi", TotalRequests: ptr(300)},
	}

	groups := aggregate.PeerGroups(rows, aggregate.ByCountryCategory, aggregate.ChainOf, domain.MetricRequests, true)
	peers := groups[domain.Key{Country: "US", Category: "defi"}]

	assert.Equal(t, 2, rank.Rank(peers, "Ethereum"))
}

func ptr(v int64) *int64 { return &v }
