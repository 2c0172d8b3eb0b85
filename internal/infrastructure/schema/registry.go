// Package schema validates generated payloads against the JSON Schema of
// their content type.
package schema

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/pawpath/pawpath/internal/domain/contentcache"
	"github.com/pawpath/pawpath/internal/shared/errors"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// maxReportedErrors caps the violations echoed back to callers.
const maxReportedErrors = 10

type compiledSchema struct {
	tag    string
	schema *gojsonschema.Schema
}

// Registry holds one compiled schema per content type.
type Registry struct {
	schemas map[contentcache.ContentType]compiledSchema
}

var schemaFiles = map[contentcache.ContentType]string{
	contentcache.ContentTypeArticle:            "article.v1",
	contentcache.ContentTypeFAQ:                "faq.v1",
	contentcache.ContentTypeServiceDescription: "service_description.v1",
}

// NewRegistry compiles the embedded schemas.
func NewRegistry() (*Registry, error) {
	r := &Registry{schemas: make(map[contentcache.ContentType]compiledSchema, len(schemaFiles))}
	for ct, name := range schemaFiles {
		raw, err := schemaFS.ReadFile("schemas/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
		}
		compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		r.schemas[ct] = compiledSchema{
			tag:    strings.Replace(name, ".", "/", 1),
			schema: compiled,
		}
	}
	return r, nil
}

// MustNewRegistry is NewRegistry for wiring code; the schemas are embedded
// so a failure is a build defect.
func MustNewRegistry() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// SchemaTag returns the tag stamped onto entries of the content type.
func (r *Registry) SchemaTag(ct contentcache.ContentType) (string, bool) {
	s, ok := r.schemas[ct]
	return s.tag, ok
}

// Validate checks payload against the schema of ct and returns the schema
// tag. Every violation is reported in a single ValidationError.
func (r *Registry) Validate(ct contentcache.ContentType, payload []byte) (string, error) {
	s, ok := r.schemas[ct]
	if !ok {
		return "", errors.NewValidationError("invalid content type", "no schema registered for "+ct.String())
	}

	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return "", errors.NewValidationError("invalid payload", "payload is not valid JSON")
	}

	if !result.Valid() {
		violations := result.Errors()
		msgs := make([]string, 0, len(violations))
		for i, desc := range violations {
			if i == maxReportedErrors {
				msgs = append(msgs, fmt.Sprintf("and %d more", len(violations)-maxReportedErrors))
				break
			}
			msgs = append(msgs, desc.String())
		}
		return "", errors.NewValidationError(
			fmt.Sprintf("payload does not match %s", s.tag),
			strings.Join(msgs, "; "),
		)
	}

	return s.tag, nil
}
