package contentcache

import (
	"github.com/pawpath/pawpath/internal/shared/errors"
)

// ContentType identifies the payload structure of an entry.
type ContentType string

const (
	ContentTypeArticle            ContentType = "article"
	ContentTypeFAQ                ContentType = "faq"
	ContentTypeServiceDescription ContentType = "service_description"
)

var validContentTypes = map[ContentType]bool{
	ContentTypeArticle:            true,
	ContentTypeFAQ:                true,
	ContentTypeServiceDescription: true,
}

func (t ContentType) String() string {
	return string(t)
}

func (t ContentType) IsValid() bool {
	return validContentTypes[t]
}

// ContentTypes lists the known content types in a stable order.
func ContentTypes() []ContentType {
	return []ContentType{ContentTypeArticle, ContentTypeFAQ, ContentTypeServiceDescription}
}

func NewContentType(str string) (ContentType, error) {
	t := ContentType(str)
	if !t.IsValid() {
		return "", errors.NewValidationError("invalid content type", "unknown content type: "+str)
	}
	return t, nil
}
