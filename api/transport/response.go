package transport

// MessageResponse is the standard success body for write operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the bearer token alongside the confirmation message.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ErrorResponse is the only failure shape the API returns. Internal error
// details never appear here.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewMessage(message string) MessageResponse {
	return MessageResponse{Message: message}
}

func NewLogin(message, token string) LoginResponse {
	return LoginResponse{Message: message, Token: token}
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
