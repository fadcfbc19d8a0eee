package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-console/pkg/apierror"
)

// Response wraps all facade responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
	Mensaje string      `json:"mensaje,omitempty"`
}

// Error represents a facade error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Pagination represents pagination metadata
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"page_size"`
	Total     int `json:"total"`
	TotalPage int `json:"total_pages"`
}

// PaginatedResponse wraps paginated data
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// RespondWithSuccess sends a success response with an optional screen message.
func RespondWithSuccess(c *gin.Context, data interface{}, mensaje string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Mensaje: mensaje,
	})
}

// RespondWithError maps an error kind onto an HTTP status. Validation
// and no-change rejections are the caller's mistake; everything else is
// a bad gateway since the remote API is the one that failed.
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	switch apierror.KindOf(err) {
	case apierror.KindValidation, apierror.KindNoChange:
		status = http.StatusUnprocessableEntity
	case apierror.KindNotFound:
		status = http.StatusNotFound
	}

	c.JSON(status, Response{
		Success: false,
		Error: &Error{
			Code:    status,
			Message: err.Error(),
		},
	})
}

// RespondWithPagination sends one page of a projection.
func RespondWithPagination(c *gin.Context, data interface{}, page, pageSize, total int) {
	totalPages := (total + pageSize - 1) / pageSize

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: PaginatedResponse{
			Data: data,
			Pagination: Pagination{
				Page:      page,
				PageSize:  pageSize,
				Total:     total,
				TotalPage: totalPages,
			},
		},
	})
}
