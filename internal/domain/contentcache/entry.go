package contentcache

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pawpath/pawpath/internal/shared/errors"
)

const MaxGeneratorVersionLength = 64

// Entry is one persisted piece of generated content. The payload is opaque
// to the cache beyond its schema tag.
type Entry struct {
	id               uint
	key              Key
	payload          json.RawMessage
	schemaTag        string
	generatorVersion string
	generatedAt      time.Time
	updatedAt        time.Time
}

// NewEntry builds an entry about to be written. generatedAt and updatedAt
// are normalised to UTC.
func NewEntry(
	key Key,
	payload []byte,
	schemaTag string,
	generatorVersion string,
	generatedAt time.Time,
	updatedAt time.Time,
) (*Entry, error) {
	if err := ValidateGeneratorVersion(generatorVersion); err != nil {
		return nil, err
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return nil, errors.NewValidationError("invalid payload", "payload must be valid JSON")
	}
	if schemaTag == "" {
		return nil, errors.NewValidationError("invalid payload", "schema tag is required")
	}
	if generatedAt.IsZero() || updatedAt.IsZero() {
		return nil, fmt.Errorf("entry timestamps are required")
	}

	return &Entry{
		key:              key,
		payload:          append(json.RawMessage(nil), payload...),
		schemaTag:        schemaTag,
		generatorVersion: strings.TrimSpace(generatorVersion),
		generatedAt:      generatedAt.UTC(),
		updatedAt:        updatedAt.UTC(),
	}, nil
}

// ReconstructEntry rebuilds an entry loaded from persistence.
func ReconstructEntry(
	id uint,
	key Key,
	payload []byte,
	schemaTag string,
	generatorVersion string,
	generatedAt, updatedAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if generatorVersion == "" {
		return nil, fmt.Errorf("generator version is required")
	}

	return &Entry{
		id:               id,
		key:              key,
		payload:          payload,
		schemaTag:        schemaTag,
		generatorVersion: generatorVersion,
		generatedAt:      generatedAt.UTC(),
		updatedAt:        updatedAt.UTC(),
	}, nil
}

// ValidateGeneratorVersion checks a generator version tag.
func ValidateGeneratorVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return errors.NewValidationError("invalid generator version", "generator version is required")
	}
	if len(v) > MaxGeneratorVersionLength {
		return errors.NewValidationError("invalid generator version",
			fmt.Sprintf("generator version exceeds maximum length of %d characters", MaxGeneratorVersionLength))
	}
	return nil
}

func (e *Entry) ID() uint {
	return e.id
}

// SetID is called by the repository after insert.
func (e *Entry) SetID(id uint) {
	e.id = id
}

func (e *Entry) Key() Key {
	return e.key
}

// Payload returns a copy of the raw JSON payload.
func (e *Entry) Payload() json.RawMessage {
	return append(json.RawMessage(nil), e.payload...)
}

func (e *Entry) SchemaTag() string {
	return e.schemaTag
}

func (e *Entry) GeneratorVersion() string {
	return e.generatorVersion
}

func (e *Entry) GeneratedAt() time.Time {
	return e.generatedAt
}

func (e *Entry) UpdatedAt() time.Time {
	return e.updatedAt
}
