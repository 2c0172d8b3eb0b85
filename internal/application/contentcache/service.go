package contentcache

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/pawpath/pawpath/internal/application/contentcache/dto"
	"github.com/pawpath/pawpath/internal/domain/contentcache"
	"github.com/pawpath/pawpath/internal/infrastructure/metrics"
	"github.com/pawpath/pawpath/internal/shared/biztime"
	"github.com/pawpath/pawpath/internal/shared/constants"
	"github.com/pawpath/pawpath/internal/shared/errors"
	"github.com/pawpath/pawpath/internal/shared/logger"
)

// MaxClockSkew is how far in the future a caller supplied generatedAt may
// lie before the write is rejected.
const MaxClockSkew = 5 * time.Minute

const FormatHTML = "html"

// Config is fixed for the lifetime of a Service.
type Config struct {
	CurrentVersion string
	ThresholdDays  int
	StorageTimeout time.Duration
}

// PayloadValidator checks a payload against its content type's schema and
// returns the schema tag to store with it.
type PayloadValidator interface {
	Validate(ct contentcache.ContentType, payload []byte) (string, error)
}

// FallbackStore remembers the last entry seen per key for degraded reads.
type FallbackStore interface {
	Remember(entry *contentcache.Entry)
	Recall(key contentcache.Key) (*contentcache.Entry, bool)
	Forget(key contentcache.Key)
}

type ArticleRenderer interface {
	RenderArticle(payload []byte) (string, error)
}

// Service is the content cache store.
type Service struct {
	cfg       Config
	policy    contentcache.StalenessPolicy
	repo      contentcache.Repository
	validator PayloadValidator
	fallback  FallbackStore
	renderer  ArticleRenderer
	metrics   *metrics.Metrics
	now       biztime.Clock
	logger    logger.Interface
}

type Option func(*Service)

// WithClock replaces the wall clock.
func WithClock(now biztime.Clock) Option {
	return func(s *Service) { s.now = now }
}

func WithFallbackStore(f FallbackStore) Option {
	return func(s *Service) { s.fallback = f }
}

func WithRenderer(r ArticleRenderer) Option {
	return func(s *Service) { s.renderer = r }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(
	cfg Config,
	repo contentcache.Repository,
	validator PayloadValidator,
	logger logger.Interface,
	opts ...Option,
) (*Service, error) {
	if err := contentcache.ValidateGeneratorVersion(cfg.CurrentVersion); err != nil {
		return nil, fmt.Errorf("invalid current generator version: %w", err)
	}
	if cfg.ThresholdDays < 1 {
		return nil, fmt.Errorf("staleness threshold must be at least 1 day, got %d", cfg.ThresholdDays)
	}
	if cfg.StorageTimeout <= 0 {
		return nil, fmt.Errorf("storage timeout must be positive")
	}

	s := &Service{
		cfg: cfg,
		policy: contentcache.StalenessPolicy{
			CurrentVersion: strings.TrimSpace(cfg.CurrentVersion),
			ThresholdDays:  cfg.ThresholdDays,
		},
		repo:      repo,
		validator: validator,
		now:       biztime.NowUTC,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func toKey(in dto.KeyInput) (contentcache.Key, error) {
	return contentcache.NewKey(in.ContentType, in.SubjectID, in.Locale)
}

// Get classifies the stored entry for a key. It never writes.
func (s *Service) Get(ctx context.Context, in dto.KeyInput) (*dto.LookupResponse, error) {
	key, err := toKey(in)
	if err != nil {
		return nil, err
	}

	lookup, err := s.lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	return dto.ToLookupResponse(lookup), nil
}

// GetWithFallback behaves like Get but, when storage fails, serves the last
// known entry for the key as stale with reason degraded.
func (s *Service) GetWithFallback(ctx context.Context, in dto.KeyInput) (*dto.LookupResponse, error) {
	key, err := toKey(in)
	if err != nil {
		return nil, err
	}

	lookup, err := s.lookup(ctx, key)
	if err == nil {
		return dto.ToLookupResponse(lookup), nil
	}
	if !errors.IsStorageError(err) || s.fallback == nil {
		return nil, err
	}

	entry, ok := s.fallback.Recall(key)
	if !ok {
		return nil, err
	}

	s.logger.Warnw("serving last known content cache entry, storage unavailable",
		"key", key.String(),
		"generator_version", entry.GeneratorVersion(),
		"error", err,
	)
	s.metrics.DegradedServe(key.ContentType.String())
	s.metrics.CacheLookup(key.ContentType.String(), contentcache.StatusStale.String(), contentcache.StaleReasonDegraded.String())

	return dto.ToLookupResponse(contentcache.Degraded(entry)), nil
}

func (s *Service) lookup(ctx context.Context, key contentcache.Key) (contentcache.Lookup, error) {
	sctx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	entry, err := s.repo.FindByKey(sctx, key)
	if err != nil {
		return contentcache.Lookup{}, s.storageError(sctx, "get", key, err)
	}

	lookup := s.policy.Classify(entry, s.now())
	if entry != nil && s.fallback != nil {
		s.fallback.Remember(entry)
	}
	s.metrics.CacheLookup(key.ContentType.String(), lookup.Status.String(), lookup.Reason.String())

	return lookup, nil
}

// Put inserts or overwrites the entry for a key. Repeating the same put is
// harmless; concurrent puts resolve last-writer-wins.
func (s *Service) Put(ctx context.Context, req dto.PutRequest) (*dto.PutResponse, error) {
	entry, created, err := s.put(ctx, req)
	if err != nil {
		return nil, err
	}
	return &dto.PutResponse{Entry: dto.ToEntryDTO(entry), Created: created}, nil
}

func (s *Service) put(ctx context.Context, req dto.PutRequest) (*contentcache.Entry, bool, error) {
	key, err := toKey(req.Key)
	if err != nil {
		return nil, false, err
	}
	if err := contentcache.ValidateGeneratorVersion(req.GeneratorVersion); err != nil {
		return nil, false, err
	}
	if len(req.Payload) == 0 {
		return nil, false, errors.NewValidationError("invalid payload", "payload is required")
	}

	schemaTag, err := s.validator.Validate(key.ContentType, req.Payload)
	if err != nil {
		return nil, false, err
	}

	now := s.now()
	generatedAt := now
	if req.GeneratedAt != nil {
		generatedAt = req.GeneratedAt.UTC()
		if generatedAt.After(now.Add(MaxClockSkew)) {
			return nil, false, errors.NewValidationError("invalid generated_at",
				"generated_at must not be in the future")
		}
	}

	entry, err := contentcache.NewEntry(key, req.Payload, schemaTag, req.GeneratorVersion, generatedAt, now)
	if err != nil {
		return nil, false, err
	}

	sctx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	created, err := s.repo.Upsert(sctx, entry)
	if err != nil {
		return nil, false, s.storageError(sctx, "put", key, err)
	}

	if s.fallback != nil {
		s.fallback.Remember(entry)
	}
	s.metrics.CacheWrite(key.ContentType.String(), created)
	s.logger.Infow("content cache entry stored",
		"key", key.String(),
		"generator_version", entry.GeneratorVersion(),
		"created", created,
	)

	return entry, created, nil
}

// Invalidate hard-deletes the entry for a key. Deleting a missing key
// reports false and is not an error.
func (s *Service) Invalidate(ctx context.Context, in dto.KeyInput) (bool, error) {
	key, err := toKey(in)
	if err != nil {
		return false, err
	}

	sctx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	deleted, err := s.repo.DeleteByKey(sctx, key)
	if err != nil {
		return false, s.storageError(sctx, "invalidate", key, err)
	}

	if s.fallback != nil {
		s.fallback.Forget(key)
	}
	s.metrics.CacheInvalidate(key.ContentType.String(), deleted)

	return deleted, nil
}

// Render produces sanitized HTML for an article entry, fresh or stale.
func (s *Service) Render(ctx context.Context, in dto.KeyInput, format string) (*dto.RenderResponse, error) {
	key, err := toKey(in)
	if err != nil {
		return nil, err
	}
	if format != FormatHTML {
		return nil, errors.NewValidationError("unsupported render format", fmt.Sprintf("format %q is not supported", format))
	}
	if key.ContentType != contentcache.ContentTypeArticle {
		return nil, errors.NewValidationError("content type cannot be rendered",
			fmt.Sprintf("only %s entries can be rendered", contentcache.ContentTypeArticle))
	}
	if s.renderer == nil {
		return nil, errors.NewInternalError("renderer not configured")
	}

	lookup, err := s.lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if lookup.Status == contentcache.StatusMiss {
		return nil, errors.NewNotFoundError("content not found", key.String())
	}

	html, err := s.renderer.RenderArticle(lookup.Entry.Payload())
	if err != nil {
		s.logger.Errorw("failed to render article", "key", key.String(), "error", err)
		return nil, errors.NewInternalError("failed to render article")
	}

	return &dto.RenderResponse{
		HTML:             html,
		Status:           lookup.Status.String(),
		Reason:           lookup.Reason.String(),
		GeneratorVersion: lookup.Entry.GeneratorVersion(),
	}, nil
}

// storageError converts a repository failure into a StorageError, naming a
// storage timeout when the per-call deadline expired.
func (s *Service) storageError(ctx context.Context, op string, key contentcache.Key, err error) error {
	s.metrics.StorageError(op)
	s.logger.Errorw("content cache storage failure",
		"operation", op,
		"key", key.String(),
		"error", err,
	)

	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) || stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewStorageError("storage timeout", err)
	}
	return errors.NewStorageError(constants.ErrMsgStorageUnavailable, err)
}
