package responses

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// jsonSuccessResponse is the structure for successful responses.
type jsonSuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// jsonErrorResponse is the structure for error responses.
type jsonErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Errors  interface{} `json:"errors,omitempty"`
}

// jsonPaginatedResponse is the structure for responses containing paginated data.
type jsonPaginatedResponse struct {
	Status     string      `json:"status"`
	Data       interface{} `json:"data"`
	Pagination pagination  `json:"pagination"`
}

type pagination struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// ErrorResponse sends a standardized error JSON response.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	statusText := "error"
	if statusCode >= http.StatusInternalServerError {
		statusText = "fail"
	}
	c.AbortWithStatusJSON(statusCode, jsonErrorResponse{
		Status:  statusText,
		Message: message,
		Code:    statusCode,
	})
}

// formatValidationErrors converts validator.ValidationErrors into a field -> message map.
func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	formatted := make(map[string]string)
	for _, err := range errs {
		fieldKey := strings.ToLower(err.Field())
		var errMsg string
		switch err.Tag() {
		case "required":
			errMsg = fmt.Sprintf("The %s field is required.", err.Field())
		case "min":
			errMsg = fmt.Sprintf("The %s field must be at least %s.", err.Field(), err.Param())
		case "max":
			errMsg = fmt.Sprintf("The %s field must not exceed %s.", err.Field(), err.Param())
		case "oneof":
			errMsg = fmt.Sprintf("The %s field must be one of the following: %s.", err.Field(), strings.ReplaceAll(err.Param(), " ", ", "))
		case "email":
			errMsg = fmt.Sprintf("The %s field must be a valid email address.", err.Field())
		default:
			errMsg = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag.", err.Field(), err.Tag())
		}
		formatted[fieldKey] = errMsg
	}
	return formatted
}

// ValidationErrorResponse sends a structured JSON response for binding/validation errors.
func ValidationErrorResponse(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(http.StatusBadRequest, jsonErrorResponse{
			Status:  "error",
			Message: "Validation failed. Please check your input.",
			Code:    http.StatusBadRequest,
			Errors:  formatValidationErrors(ve),
		})
		return
	}
	ErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
}

// SuccessResponse sends a standardized success JSON response. When the data is
// gin.H carrying a string "message" key, that message is lifted to the top
// level and the rest becomes the data payload.
func SuccessResponse(c *gin.Context, statusCode int, responseData interface{}) {
	payload := jsonSuccessResponse{Status: "success"}

	if gh, ok := responseData.(gin.H); ok {
		if msg, isStr := gh["message"].(string); isStr {
			payload.Message = msg
			dataMap := make(gin.H)
			for k, v := range gh {
				if k != "message" {
					dataMap[k] = v
				}
			}
			if len(dataMap) > 0 {
				payload.Data = dataMap
			}
			c.JSON(statusCode, payload)
			return
		}
	}
	if responseData != nil {
		payload.Data = responseData
	}
	c.JSON(statusCode, payload)
}

// PaginatedResponse sends a standardized success JSON response for paginated data.
func PaginatedResponse(c *gin.Context, statusCode int, itemsData interface{}, currentPage int, pageSize int, totalItems int64) {
	if pageSize <= 0 {
		pageSize = 10
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
		if totalPages == 0 {
			totalPages = 1
		}
	}

	c.JSON(statusCode, jsonPaginatedResponse{
		Status: "success",
		Data:   itemsData,
		Pagination: pagination{
			TotalItems:  totalItems,
			TotalPages:  totalPages,
			CurrentPage: currentPage,
			PageSize:    pageSize,
			HasNextPage: currentPage < totalPages,
			HasPrevPage: currentPage > 1 && currentPage <= totalPages,
		},
	})
}
