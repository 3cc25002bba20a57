package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/peoplekit/authkit/errors"
)

// DataResponse is the standard success envelope. It mirrors the error
// envelope's shape so clients can branch on the success flag alone.
type DataResponse struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
	Meta      *Meta  `json:"meta,omitempty"`
}

// Meta carries pagination or other response metadata.
type Meta struct {
	Page       int `json:"page,omitempty"`
	PageSize   int `json:"pageSize,omitempty"`
	Total      int `json:"total,omitempty"`
	TotalPages int `json:"totalPages,omitempty"`
}

func envelope(data any, meta *Meta) DataResponse {
	return DataResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Meta:      meta,
	}
}

// RespondWithError normalizes err into the standard error envelope: an
// *apperrors.AppError keeps its status and code, anything else becomes a
// generic 500.
func RespondWithError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	c.JSON(appErr.HTTPStatus, appErr.ToResponse(c.Request.URL.Path))
}

// RespondOK sends a 200 response wrapping data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope(data, nil))
}

// RespondOKWithMeta sends a 200 response with data and metadata.
func RespondOKWithMeta(c *gin.Context, data any, meta *Meta) {
	c.JSON(http.StatusOK, envelope(data, meta))
}

// RespondCreated sends a 201 response wrapping data.
func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, envelope(data, nil))
}

// RespondNoContent sends a 204 with no body.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
