package contentcache

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"

	"github.com/pawpath/pawpath/internal/shared/errors"
)

const (
	MaxSubjectIDLength = 191
	maxLocaleLength    = 35
)

var subjectIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Key is the composite identity of a cache entry.
type Key struct {
	ContentType ContentType
	SubjectID   string
	Locale      string
}

// NewKey validates and normalises the three key parts. The locale is
// canonicalised as a BCP 47 tag, so "en-us" and "en-US" address the same
// entry.
func NewKey(contentType, subjectID, locale string) (Key, error) {
	contentType = strings.TrimSpace(contentType)
	subjectID = strings.TrimSpace(subjectID)
	locale = strings.TrimSpace(locale)

	if contentType == "" {
		return Key{}, errors.NewValidationError("invalid cache key", "content type is required")
	}
	if subjectID == "" {
		return Key{}, errors.NewValidationError("invalid cache key", "subject ID is required")
	}
	if locale == "" {
		return Key{}, errors.NewValidationError("invalid cache key", "locale is required")
	}

	ct, err := NewContentType(contentType)
	if err != nil {
		return Key{}, err
	}

	if len(subjectID) > MaxSubjectIDLength {
		return Key{}, errors.NewValidationError("invalid cache key",
			fmt.Sprintf("subject ID exceeds maximum length of %d characters", MaxSubjectIDLength))
	}
	if !subjectIDPattern.MatchString(subjectID) {
		return Key{}, errors.NewValidationError("invalid cache key",
			"subject ID must be a lowercase slug (letters, digits and single hyphens)")
	}

	canonical, err := CanonicalLocale(locale)
	if err != nil {
		return Key{}, err
	}

	return Key{ContentType: ct, SubjectID: subjectID, Locale: canonical}, nil
}

// CanonicalLocale parses a BCP 47 tag and returns its canonical form.
func CanonicalLocale(locale string) (string, error) {
	if len(locale) > maxLocaleLength {
		return "", errors.NewValidationError("invalid cache key", "locale is too long")
	}
	tag, err := language.Parse(locale)
	if err != nil || tag == language.Und {
		return "", errors.NewValidationError("invalid cache key", fmt.Sprintf("invalid locale: %q", locale))
	}
	return tag.String(), nil
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.ContentType, k.SubjectID, k.Locale)
}
