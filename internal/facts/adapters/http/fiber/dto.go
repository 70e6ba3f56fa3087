package fiber

import "github.com/shopspring/decimal"

// CreateFactRequest represents one daily usage row
// @Description Fact ingestion DTO
type CreateFactRequest struct {
	Date          string           `json:"date" example:"2025-06-01"`
	Country       string           `json:"country" example:"US"`
	Chain         string           `json:"chain" example:"ethereum"`
	Category      string           `json:"category" example:"defi"`
	TotalRequests *int64           `json:"total_requests,omitempty" example:"1200"`
	UniqueUsers   *int64           `json:"unique_users,omitempty" example:"310"`
	TxVolumeUSD   *decimal.Decimal `json:"tx_volume_usd,omitempty" swaggertype:"string" example:"15234.50"`
}

type CreateFactResponse struct {
	Status string `json:"status"`
}

type BulkCreateFactsRequest struct {
	Facts []CreateFactRequest `json:"facts"`
}

type BulkCreateFactsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_fact"`
	Message string `json:"message,omitempty" example:"Fact payload is invalid"`
}
