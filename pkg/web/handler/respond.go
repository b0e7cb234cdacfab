package handler

import (
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"

	apperrors "blogapp/pkg/common/errors"
)

// respondError writes the uniform error body shape.
func respondError(c *app.RequestContext, code int, msg string) {
	c.JSON(code, utils.H{"error": msg})
}

// respondRepoError maps a repository error to a response: expected absence
// becomes 404, anything else 500. Storage details are logged, not leaked.
func respondRepoError(c *app.RequestContext, err error) {
	if apperrors.IsNotFound(err) {
		respondError(c, 404, err.Error())
		return
	}
	hlog.Errorf("storage error: %v", err)
	respondError(c, 500, "internal server error")
}

// pathInt parses an integer route parameter.
func pathInt(c *app.RequestContext, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return v, true
}

// queryInt parses an optional integer query parameter. A missing parameter
// yields (nil, true); a malformed one (nil, false).
func queryInt(c *app.RequestContext, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
