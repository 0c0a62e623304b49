package recipient

type (
	Request struct {
		Name       string `json:"name"`
		DocumentID string `json:"documentId"`
		Email      string `json:"email"`
		Address    string `json:"address"`
		Phone      string `json:"phone"`
	}

	UpdateRequest struct {
		Name       *string `json:"name"`
		DocumentID *string `json:"documentId"`
		Email      *string `json:"email"`
		Address    *string `json:"address"`
		Phone      *string `json:"phone"`
	}

	// ItemsRequest is the tokenless self-identification body.
	ItemsRequest struct {
		Email      string `json:"email"`
		DocumentID string `json:"documentId"`
	}
)
