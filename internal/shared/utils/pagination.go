package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pawpath/pawpath/internal/shared/constants"
	"github.com/pawpath/pawpath/internal/shared/errors"
	"github.com/pawpath/pawpath/internal/shared/query"
)

// ParseWindow reads limit and offset from the query string. Defaults apply
// only when a parameter is absent; malformed or out-of-range values are
// rejected rather than clamped.
func ParseWindow(c *gin.Context) (query.Window, error) {
	limit, err := parseQueryInt(c, "limit", constants.DefaultLimit)
	if err != nil {
		return query.Window{}, err
	}
	offset, err := parseQueryInt(c, "offset", constants.DefaultOffset)
	if err != nil {
		return query.Window{}, err
	}
	return query.NewWindow(limit, offset)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) (int, error) {
	val, ok := c.GetQuery(key)
	if !ok {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, errors.NewValidationError("invalid "+key, key+" must be an integer")
	}
	return n, nil
}
