package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkumar84/Insurance-Dashboard/middleware"
	"github.com/mkumar84/Insurance-Dashboard/pkg/logger"
	"github.com/mkumar84/Insurance-Dashboard/service"
)

// ExportPublisher stores a copy of an export and returns a link to it.
type ExportPublisher interface {
	Publish(ctx context.Context, exp service.Export) (string, error)
}

// entityContext tags the request context with the :id path parameter so log
// lines name the record being acted on.
func entityContext(c *gin.Context) context.Context {
	return logger.WithEntity(c.Request.Context(), c.Param("id"))
}

// respondError maps service errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Client went away mid-delay; nobody is listening for the body.
		c.AbortWithStatus(499)
	default:
		logger.Error(c.Request.Context(), "request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// sendExport writes exp as a text attachment. With a publisher configured the
// export is uploaded first and its link returned in a header; an upload
// failure is logged and the download still succeeds.
func sendExport(c *gin.Context, publisher ExportPublisher, exp service.Export) {
	if publisher != nil {
		url, err := publisher.Publish(c.Request.Context(), exp)
		if err != nil {
			logger.Warn(c.Request.Context(), "export upload failed", "file", exp.Filename, "error", err)
		} else {
			c.Header(middleware.ExportURLHeader, url)
		}
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exp.Filename))
	c.Data(http.StatusOK, exp.ContentType, []byte(exp.Body))
}
