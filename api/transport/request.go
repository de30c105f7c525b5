package transport

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TaskCreateRequest struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Time    string `json:"time"`
	Date    string `json:"date"`
	OwnerID string `json:"ownerId"`
}
