package errors

// ErrorResponse is the JSON body of every failed API call.
// Details is only filled for caller-correctable errors.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// NewErrorResponse builds the body for an application error
func NewErrorResponse(appErr AppError, requestID string) *ErrorResponse {
	resp := &ErrorResponse{
		Error:     appErr.Message(),
		Code:      appErr.ErrorCode(),
		RequestID: requestID,
	}
	if appErr.HTTPCode() < 500 {
		resp.Details = appErr.Details()
	}

	return resp
}
