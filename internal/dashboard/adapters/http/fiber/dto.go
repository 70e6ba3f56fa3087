package fiber

import (
	"github.com/shopspring/decimal"

	"chain-usage-dashboard/internal/dashboard/core/domain"
	"chain-usage-dashboard/internal/dashboard/core/slider"
)

type TotalsResponse struct {
	TotalRequests int64           `json:"total_requests"`
	UniqueUsers   int64           `json:"unique_users"`
	TxVolumeUSD   decimal.Decimal `json:"tx_volume_usd" swaggertype:"string" example:"1250.50"`
	Rows          int             `json:"rows"`
}

type PeerResponse struct {
	Chain string  `json:"chain"`
	Value float64 `json:"value"`
}

type DimensionResponse struct {
	Key       string         `json:"key"`
	Totals    TotalsResponse `json:"totals"`
	Rank      int            `json:"rank"`
	PeerCount int            `json:"peer_count"`
	Ranked    bool           `json:"ranked"`
	Peers     []PeerResponse `json:"peers"`
}

type SeriesPointResponse struct {
	Date   string         `json:"date"`
	Chain  string         `json:"chain"`
	Totals TotalsResponse `json:"totals"`
}

type RegionResponse struct {
	Numeric string          `json:"numeric"`
	Alpha2  string          `json:"alpha2"`
	Name    string          `json:"name"`
	Found   bool            `json:"found"`
	Totals  *TotalsResponse `json:"totals,omitempty"`
}

type GrowthResponse struct {
	CurrentTotal  float64 `json:"current_total"`
	PriorTotal    float64 `json:"prior_total"`
	PercentChange float64 `json:"percent_change"`
}

type GrowthCandidateResponse struct {
	Key string `json:"key"`
	GrowthResponse
}

type GrowthSummaryResponse struct {
	PriorFrom       string                   `json:"prior_from"`
	PriorTo         string                   `json:"prior_to"`
	Overall         GrowthResponse           `json:"overall"`
	FastestCategory *GrowthCandidateResponse `json:"fastest_category,omitempty"`
	FastestCountry  *GrowthCandidateResponse `json:"fastest_country,omitempty"`
	CrossFilter     domain.CrossFilter       `json:"cross_filter"`
}

type RangeResponse struct {
	From   string             `json:"from" example:"2025-06-01"`
	To     string             `json:"to" example:"2025-06-30"`
	Slider domain.SliderRange `json:"slider"`
}

type DashboardResponse struct {
	Chain       string                `json:"chain"`
	Metric      string                `json:"metric"`
	Range       RangeResponse         `json:"range"`
	Totals      TotalsResponse        `json:"totals"`
	GlobalRank  int                   `json:"global_rank"`
	ChainCount  int                   `json:"chain_count"`
	Series      []SeriesPointResponse `json:"series"`
	Countries   []DimensionResponse   `json:"countries"`
	Categories  []DimensionResponse   `json:"categories"`
	Regions     []RegionResponse      `json:"regions"`
	Growth      GrowthSummaryResponse `json:"growth"`
	SourceError string                `json:"source_error,omitempty"`
}

type CrossFilterRequest struct {
	FilteredByCategory string `json:"filtered_by_category"`
	FilteredByCountry  string `json:"filtered_by_country"`
	Action             string `json:"action" example:"select_category"`
	Value              string `json:"value" example:"defi"`
}

type SliderResponse struct {
	Left  int    `json:"left"`
	Right int    `json:"right"`
	Mode  string `json:"mode"`
	From  string `json:"from"`
	To    string `json:"to"`
}

type SliderEventsRequest struct {
	Left   int            `json:"left"`
	Right  int            `json:"right"`
	Events []slider.Event `json:"events"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid date range"`
}

func totals(b domain.AggregateBucket) TotalsResponse {
	return TotalsResponse{
		TotalRequests: b.TotalRequests,
		UniqueUsers:   b.UniqueUsers,
		TxVolumeUSD:   b.TxVolumeUSD,
		Rows:          b.Rows,
	}
}

func growth(g domain.GrowthResult) GrowthResponse {
	return GrowthResponse{
		CurrentTotal:  g.CurrentTotal,
		PriorTotal:    g.PriorTotal,
		PercentChange: g.PercentChange,
	}
}

func candidate(c *domain.GrowthCandidate) *GrowthCandidateResponse {
	if c == nil {
		return nil
	}
	return &GrowthCandidateResponse{Key: c.Key, GrowthResponse: growth(c.GrowthResult)}
}

func dimensions(views []domain.DimensionView) []DimensionResponse {
	out := make([]DimensionResponse, 0, len(views))
	for _, v := range views {
		peers := make([]PeerResponse, 0, len(v.Peers))
		for _, p := range v.Peers {
			peers = append(peers, PeerResponse{Chain: p.Peer, Value: p.Value})
		}
		out = append(out, DimensionResponse{
			Key:       v.Key,
			Totals:    totals(v.Totals),
			Rank:      v.Rank,
			PeerCount: v.PeerCount,
			Ranked:    v.Ranked,
			Peers:     peers,
		})
	}
	return out
}

func newDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Chain:  d.Chain,
		Metric: string(d.Metric),
		Range: RangeResponse{
			From:   d.Range.Range.From(),
			To:     d.Range.Range.To(),
			Slider: d.Range.Slider,
		},
		Totals:     totals(d.Totals),
		GlobalRank: d.GlobalRank,
		ChainCount: d.ChainCount,
		Series:     make([]SeriesPointResponse, 0, len(d.Series)),
		Countries:  dimensions(d.Countries),
		Categories: dimensions(d.Categories),
		Regions:    make([]RegionResponse, 0, len(d.Regions)),
		Growth: GrowthSummaryResponse{
			PriorFrom:       d.Growth.Prior.From(),
			PriorTo:         d.Growth.Prior.To(),
			Overall:         growth(d.Growth.Overall),
			FastestCategory: candidate(d.Growth.FastestCategory),
			FastestCountry:  candidate(d.Growth.FastestCountry),
			CrossFilter:     d.Growth.Cross,
		},
		SourceError: d.SourceError,
	}

	for _, p := range d.Series {
		resp.Series = append(resp.Series, SeriesPointResponse{Date: p.Date, Chain: p.Chain, Totals: totals(p.Totals)})
	}
	for _, r := range d.Regions {
		region := RegionResponse{Numeric: r.Numeric, Alpha2: r.Alpha2, Name: r.Name, Found: r.Found}
		if r.Found {
			t := totals(r.Totals)
			region.Totals = &t
		}
		resp.Regions = append(resp.Regions, region)
	}
	return resp
}
