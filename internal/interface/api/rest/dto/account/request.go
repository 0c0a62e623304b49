package account

type (
	Request struct {
		Name       string `json:"name"`
		DocumentID string `json:"documentId"`
		Password   string `json:"password"`
		Role       string `json:"role"`
	}

	UpdateRequest struct {
		Name       *string `json:"name"`
		DocumentID *string `json:"documentId"`
		Role       *string `json:"role"`
		Password   *string `json:"password"`
	}
)
