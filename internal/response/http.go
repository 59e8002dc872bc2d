package response

// APIResponse is the envelope of every JSON reply. Data is always present,
// null when there is nothing to show.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func OK[T any](data T) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: data}
}
