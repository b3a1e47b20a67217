package handler

// apiResponse is the envelope every JSON API route responds with.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

func okResponse(message string, data any) apiResponse {
	return apiResponse{Success: true, Message: message, Data: data}
}

func listResponse(data any, count int) apiResponse {
	return apiResponse{Success: true, Data: data, Count: &count}
}

func errResponse(message string, err error) apiResponse {
	return apiResponse{Success: false, Message: message, Error: err.Error()}
}

// failResponse shapes a message-only failure envelope, used for both
// not-found lookups and the nested-route ownership mismatch.
func failResponse(message string) apiResponse {
	return apiResponse{Success: false, Message: message}
}
