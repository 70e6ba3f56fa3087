package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"chain-usage-dashboard/internal/dashboard/core/domain"
	"chain-usage-dashboard/internal/dashboard/core/ports"
	"chain-usage-dashboard/internal/observability"
)

const keyPrefix = "chaindash:facts:"

// cachedRow is the JSON form of a fact row. Null facts stay null.
type cachedRow struct {
	Date          string           `json:"date"`
	Country       string           `json:"country"`
	Chain         string           `json:"chain"`
	Category      string           `json:"category"`
	TotalRequests *int64           `json:"total_requests"`
	UniqueUsers   *int64           `json:"unique_users"`
	TxVolumeUSD   *decimal.Decimal `json:"tx_volume_usd"`
}

// CachedFactReader is a read-through cache in front of another row source.
// Cache failures are logged and the next source is used as if the key were absent.
type CachedFactReader struct {
	next    ports.FactReaderPort
	cache   Cache
	ttl     time.Duration
	log     *zap.Logger
	metrics *observability.Metrics
}

func NewCachedFactReader(next ports.FactReaderPort, cache Cache, ttl time.Duration, log *zap.Logger, metrics *observability.Metrics) *CachedFactReader {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedFactReader{
		next:    next,
		cache:   cache,
		ttl:     ttl,
		log:     log.Named("row_cache"),
		metrics: metrics,
	}
}

var _ ports.FactReaderPort = (*CachedFactReader)(nil)

func (r *CachedFactReader) QueryFacts(ctx context.Context, f ports.RowFilter) ([]domain.FactRow, error) {
	key := CacheKey(f)

	b, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		rows, decodeErr := decodeRows(b)
		if decodeErr == nil {
			r.metrics.CacheLookup("hit")
			return rows, nil
		}
		r.metrics.CacheLookup("error")
		r.log.Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(decodeErr))
	case errors.Is(err, ErrCacheMiss):
		r.metrics.CacheLookup("miss")
	default:
		r.metrics.CacheLookup("error")
		r.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
	}

	rows, err := r.next.QueryFacts(ctx, f)
	if err != nil {
		return nil, err
	}

	payload, err := encodeRows(rows)
	if err != nil {
		r.log.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return rows, nil
	}
	if err := r.cache.Set(ctx, key, payload, r.ttl); err != nil {
		r.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return rows, nil
}

// CacheKey normalizes the filter so that case variants share one entry.
func CacheKey(f ports.RowFilter) string {
	part := func(s *string) string {
		if s == nil {
			return "*"
		}
		return strings.ToLower(strings.TrimSpace(*s))
	}
	return keyPrefix + strings.Join([]string{
		f.From.UTC().Format(domain.DateLayout),
		f.To.UTC().Format(domain.DateLayout),
		part(f.Chain),
		part(f.Country),
		part(f.Category),
	}, "|")
}

func encodeRows(rows []domain.FactRow) ([]byte, error) {
	out := make([]cachedRow, len(rows))
	for i, r := range rows {
		out[i] = cachedRow(r)
	}
	return json.Marshal(out)
}

func decodeRows(b []byte) ([]domain.FactRow, error) {
	var in []cachedRow
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, err
	}
	rows := make([]domain.FactRow, len(in))
	for i, r := range in {
		rows[i] = domain.FactRow(r)
	}
	return rows, nil
}
