package dto

import (
	"encoding/json"
	"time"

	"github.com/pawpath/pawpath/internal/domain/contentcache"
)

// KeyInput carries the raw key parts as received from a caller.
type KeyInput struct {
	ContentType string
	SubjectID   string
	Locale      string
}

type EntryDTO struct {
	ContentType      string          `json:"content_type"`
	SubjectID        string          `json:"subject_id"`
	Locale           string          `json:"locale"`
	Payload          json.RawMessage `json:"payload"`
	SchemaTag        string          `json:"schema_tag"`
	GeneratorVersion string          `json:"generator_version"`
	GeneratedAt      time.Time       `json:"generated_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// LookupResponse is the outcome of a read. Entry is nil on a miss.
type LookupResponse struct {
	Status string    `json:"status"`
	Reason string    `json:"reason,omitempty"`
	Entry  *EntryDTO `json:"entry,omitempty"`
}

type PutRequest struct {
	Key              KeyInput
	Payload          json.RawMessage
	GeneratorVersion string
	// GeneratedAt defaults to the write time when nil.
	GeneratedAt *time.Time
}

type PutResponse struct {
	Entry   *EntryDTO `json:"entry"`
	Created bool      `json:"created"`
}

type RenderResponse struct {
	HTML             string
	Status           string
	Reason           string
	GeneratorVersion string
}

type LeaseResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func ToEntryDTO(e *contentcache.Entry) *EntryDTO {
	if e == nil {
		return nil
	}
	key := e.Key()
	return &EntryDTO{
		ContentType:      key.ContentType.String(),
		SubjectID:        key.SubjectID,
		Locale:           key.Locale,
		Payload:          e.Payload(),
		SchemaTag:        e.SchemaTag(),
		GeneratorVersion: e.GeneratorVersion(),
		GeneratedAt:      e.GeneratedAt(),
		UpdatedAt:        e.UpdatedAt(),
	}
}

func ToLookupResponse(l contentcache.Lookup) *LookupResponse {
	return &LookupResponse{
		Status: l.Status.String(),
		Reason: l.Reason.String(),
		Entry:  ToEntryDTO(l.Entry),
	}
}
