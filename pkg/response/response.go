package response

import (
	"net/http"
	"strconv"

	"github.com/danevairena/SocialMediaBackend/pkg/apperror"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (uint, error) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, apperror.Unauthorized("authorization required")
	}

	str, ok := raw.(string)
	if !ok {
		return 0, apperror.Unauthorized("invalid user id")
	}

	id, err := ParseID(str)
	if err != nil {
		return 0, apperror.Unauthorized("invalid user id")
	}
	return id, nil
}

// ParseID parses a positive numeric identifier from a path or query value.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.InvalidArgument("invalid id %q", raw)
	}
	return uint(id), nil
}

// ParamID reads a positive identifier from a gin path parameter.
func ParamID(c *gin.Context, name string) (uint, error) {
	return ParseID(c.Param(name))
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	if code == http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}

	c.JSON(code, gin.H{"error": apperror.PublicMessage(err)})
}
