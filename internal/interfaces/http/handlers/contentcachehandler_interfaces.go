package handlers

import (
	"context"
	"time"

	"github.com/pawpath/pawpath/internal/application/contentcache/dto"
)

// Service interfaces for ContentCacheHandler

type contentCacheService interface {
	Get(ctx context.Context, in dto.KeyInput) (*dto.LookupResponse, error)
	GetWithFallback(ctx context.Context, in dto.KeyInput) (*dto.LookupResponse, error)
	Put(ctx context.Context, req dto.PutRequest) (*dto.PutResponse, error)
	Invalidate(ctx context.Context, in dto.KeyInput) (bool, error)
	Render(ctx context.Context, in dto.KeyInput, format string) (*dto.RenderResponse, error)
}

type regenerationLeaseService interface {
	AcquireLease(ctx context.Context, in dto.KeyInput, ttl time.Duration) (*dto.LeaseResponse, error)
	ReleaseLease(ctx context.Context, in dto.KeyInput, token string) (bool, error)
}
