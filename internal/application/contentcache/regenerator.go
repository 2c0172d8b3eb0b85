package contentcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pawpath/pawpath/internal/application/contentcache/dto"
	"github.com/pawpath/pawpath/internal/domain/contentcache"
	"github.com/pawpath/pawpath/internal/infrastructure/metrics"
	"github.com/pawpath/pawpath/internal/shared/errors"
	"github.com/pawpath/pawpath/internal/shared/logger"
)

const MaxLeaseTTL = 30 * time.Minute

// Generated is what a Generator produces for one key.
type Generated struct {
	Payload          json.RawMessage
	GeneratorVersion string
	GeneratedAt      *time.Time
}

// Generator produces fresh content for a key. Generation itself lives
// outside this service.
type Generator interface {
	Generate(ctx context.Context, key contentcache.Key) (*Generated, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, key contentcache.Key) (*Generated, error)

func (f GeneratorFunc) Generate(ctx context.Context, key contentcache.Key) (*Generated, error) {
	return f(ctx, key)
}

// Regenerator refreshes missing or stale entries while holding a
// regeneration lease, so at most one caller regenerates a key at a time.
type Regenerator struct {
	store    *Service
	leases   contentcache.LeaseManager
	leaseTTL time.Duration
	metrics  *metrics.Metrics
	logger   logger.Interface
}

func NewRegenerator(
	store *Service,
	leases contentcache.LeaseManager,
	leaseTTL time.Duration,
	m *metrics.Metrics,
	logger logger.Interface,
) *Regenerator {
	return &Regenerator{
		store:    store,
		leases:   leases,
		leaseTTL: leaseTTL,
		metrics:  m,
		logger:   logger,
	}
}

// Refresh returns the entry for a key, regenerating it first when it is
// missing or stale. A ConflictError means another caller holds the lease;
// the caller may keep serving what it has.
func (r *Regenerator) Refresh(ctx context.Context, in dto.KeyInput, gen Generator) (*dto.LookupResponse, error) {
	key, err := toKey(in)
	if err != nil {
		return nil, err
	}

	lookup, err := r.store.lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if lookup.Status == contentcache.StatusHit {
		return dto.ToLookupResponse(lookup), nil
	}

	lease, err := r.acquire(ctx, key, r.leaseTTL)
	if err != nil {
		return nil, err
	}
	defer r.release(context.WithoutCancel(ctx), lease)

	// Another holder may have finished between the first read and the lease.
	lookup, err = r.store.lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if lookup.Status == contentcache.StatusHit {
		return dto.ToLookupResponse(lookup), nil
	}

	ct := key.ContentType.String()
	generated, err := gen.Generate(ctx, key)
	if err != nil {
		r.metrics.Regeneration(ct, "failed")
		r.logger.Errorw("content generation failed", "key", key.String(), "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("content generation failed")
	}
	if generated == nil {
		r.metrics.Regeneration(ct, "failed")
		return nil, errors.NewInternalError("content generation returned nothing")
	}

	entry, _, err := r.store.put(ctx, dto.PutRequest{
		Key:              in,
		Payload:          generated.Payload,
		GeneratorVersion: generated.GeneratorVersion,
		GeneratedAt:      generated.GeneratedAt,
	})
	if err != nil {
		r.metrics.Regeneration(ct, "failed")
		return nil, err
	}

	r.metrics.Regeneration(ct, "succeeded")
	return dto.ToLookupResponse(r.store.policy.Classify(entry, r.store.now())), nil
}

// AcquireLease hands a lease to an external generation pipeline.
func (r *Regenerator) AcquireLease(ctx context.Context, in dto.KeyInput, ttl time.Duration) (*dto.LeaseResponse, error) {
	key, err := toKey(in)
	if err != nil {
		return nil, err
	}
	if ttl < 0 || ttl > MaxLeaseTTL {
		return nil, errors.NewValidationError("invalid lease ttl",
			fmt.Sprintf("ttl must be between 1s and %s", MaxLeaseTTL))
	}
	if ttl == 0 {
		ttl = r.leaseTTL
	}

	lease, err := r.acquire(ctx, key, ttl)
	if err != nil {
		return nil, err
	}
	return &dto.LeaseResponse{Token: lease.Token, ExpiresAt: lease.ExpiresAt}, nil
}

// ReleaseLease reports false when the token no longer holds the lease.
func (r *Regenerator) ReleaseLease(ctx context.Context, in dto.KeyInput, token string) (bool, error) {
	key, err := toKey(in)
	if err != nil {
		return false, err
	}
	if token == "" {
		return false, errors.NewValidationError("lease token is required")
	}

	released, err := r.leases.Release(ctx, contentcache.Lease{Key: key, Token: token})
	if err != nil {
		r.logger.Errorw("failed to release regeneration lease", "key", key.String(), "error", err)
		return false, errors.NewStorageError("regeneration lease unavailable", err)
	}
	return released, nil
}

func (r *Regenerator) acquire(ctx context.Context, key contentcache.Key, ttl time.Duration) (contentcache.Lease, error) {
	lease, acquired, err := r.leases.Acquire(ctx, key, ttl)
	if err != nil {
		r.logger.Errorw("failed to acquire regeneration lease", "key", key.String(), "error", err)
		return contentcache.Lease{}, errors.NewStorageError("regeneration lease unavailable", err)
	}
	if !acquired {
		r.metrics.LeaseConflict(key.ContentType.String())
		r.logger.Warnw("regeneration lease held elsewhere", "key", key.String())
		return contentcache.Lease{}, errors.NewConflictError("regeneration in progress", key.String())
	}
	return lease, nil
}

func (r *Regenerator) release(ctx context.Context, lease contentcache.Lease) {
	released, err := r.leases.Release(ctx, lease)
	if err != nil {
		r.logger.Warnw("failed to release regeneration lease", "key", lease.Key.String(), "error", err)
		return
	}
	if !released {
		r.logger.Warnw("regeneration lease expired before release", "key", lease.Key.String())
	}
}
