package features

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/cache"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

// Computer computes a feature vector from the durable store.
type Computer interface {
	Compute(ctx context.Context, customerID string, asOf time.Time) (domain.FeatureVector, error)
}

// Provider is the read-through online feature cache. A miss computes the
// vector synchronously in the caller's path and populates the cache for TTL.
// Cache failures degrade to recomputation, never to a failed read.
type Provider struct {
	cache  cache.FeatureCache
	engine Computer
	ttl    time.Duration
	log    *zap.Logger
}

// NewProvider creates a new read-through feature provider.
func NewProvider(featureCache cache.FeatureCache, engine Computer, ttl time.Duration, log *zap.Logger) *Provider {
	return &Provider{
		cache:  featureCache,
		engine: engine,
		ttl:    ttl,
		log:    log,
	}
}

func cacheKey(customerID string) string {
	return "features:" + customerID
}

// Features returns the feature vector for customerID, from cache when a
// fresh entry exists, otherwise computed as of asOf.
func (p *Provider) Features(ctx context.Context, customerID string, asOf time.Time) (domain.FeatureVector, error) {
	raw, hit, err := p.cache.Get(ctx, cacheKey(customerID))
	if err != nil {
		p.log.Warn("Feature cache read failed, recomputing",
			zap.String("customer_id", customerID),
			zap.Error(err))
	} else if hit {
		var entry domain.CachedFeatures
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			p.log.Warn("Discarding undecodable cache entry",
				zap.String("customer_id", customerID),
				zap.Error(err))
		} else {
			return entry.Features, nil
		}
	}

	fv, err := p.engine.Compute(ctx, customerID, asOf)
	if err != nil {
		return domain.FeatureVector{}, err
	}

	entry, err := json.Marshal(domain.CachedFeatures{Features: fv, ComputedAt: asOf})
	if err == nil {
		if err := p.cache.SetWithTTL(ctx, cacheKey(customerID), string(entry), p.ttl); err != nil {
			p.log.Warn("Feature cache write failed",
				zap.String("customer_id", customerID),
				zap.Error(err))
		}
	}

	return fv, nil
}

// Invalidate removes the cached vector for customerID so the next read
// recomputes.
func (p *Provider) Invalidate(ctx context.Context, customerID string) error {
	return p.cache.Delete(ctx, cacheKey(customerID))
}

// Invalidator deletes cached feature vectors without being able to compute
// them. The ingestion side uses it to mark vectors stale.
type Invalidator struct {
	cache cache.FeatureCache
}

// NewInvalidator creates a cache-only invalidator.
func NewInvalidator(featureCache cache.FeatureCache) *Invalidator {
	return &Invalidator{cache: featureCache}
}

// Invalidate removes the cached vector for customerID.
func (i *Invalidator) Invalidate(ctx context.Context, customerID string) error {
	return i.cache.Delete(ctx, cacheKey(customerID))
}
