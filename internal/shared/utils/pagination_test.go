package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawpath/pawpath/internal/shared/errors"
	"github.com/pawpath/pawpath/internal/shared/query"
)

func newQueryContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/businesses?"+rawQuery, nil)
	return c
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    query.Window
		wantErr bool
	}{
		{"absent uses defaults", "", query.Window{Limit: 20, Offset: 0}, false},
		{"explicit values", "limit=50&offset=100", query.Window{Limit: 50, Offset: 100}, false},
		{"max limit", "limit=100", query.Window{Limit: 100, Offset: 0}, false},
		{"limit above max rejected", "limit=101", query.Window{}, true},
		{"zero limit rejected", "limit=0", query.Window{}, true},
		{"empty limit rejected", "limit=", query.Window{}, true},
		{"negative offset rejected", "offset=-5", query.Window{}, true},
		{"non integer limit rejected", "limit=ten", query.Window{}, true},
		{"non integer offset rejected", "offset=1.5", query.Window{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWindow(newQueryContext(tt.query))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalQuery(t *testing.T) {
	c := newQueryContext("status=active&plan=")

	status := OptionalQuery(c, "status")
	require.NotNil(t, status)
	assert.Equal(t, "active", *status)
	assert.Nil(t, OptionalQuery(c, "plan"))
	assert.Nil(t, OptionalQuery(c, "search"))
}
