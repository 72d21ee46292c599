package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorResponse represents the structure of error responses sent to clients.
// Detail mirrors Error for the browser forms, which read `detail`.
type HTTPErrorResponse struct {
	Error     string    `json:"error"`
	Detail    string    `json:"detail"`
	Code      ErrorCode `json:"code,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// ToHTTPError converts an error to an Echo HTTP error
func ToHTTPError(err error) *echo.HTTPError {
	if te, ok := As(err); ok {
		he := echo.NewHTTPError(te.GetHTTPStatus(), te.Reason())
		he.Internal = err
		return he
	}

	he := echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	he.Internal = err
	return he
}

// HandleError is a helper function for consistent error handling in HTTP handlers
func HandleError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	return ToHTTPError(err)
}
