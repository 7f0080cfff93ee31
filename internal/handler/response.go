package handler

type errorPayload struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

func NewValidationErrorResponse(message string, fields []string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    "validation_error",
			Message: message,
			Fields:  fields,
		},
	}
}
