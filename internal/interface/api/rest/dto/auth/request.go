package auth

type LoginRequest struct {
	DocumentID string `json:"documentId"`
	Password   string `json:"password"`
}
