package delivery

type (
	// Request binds the multipart create form; the optional photo file is
	// read separately from the "photo" field.
	Request struct {
		Product       string `form:"product"`
		Status        string `form:"status"`
		RecipientID   string `form:"recipientId"`
		DeliverymanID string `form:"deliverymanId"`
	}

	// UpdateRequest binds the multipart update form. Empty fields are
	// treated as absent and never clear stored values.
	UpdateRequest struct {
		Product       *string `form:"product"`
		Status        *string `form:"status"`
		RecipientID   *string `form:"recipientId"`
		DeliverymanID *string `form:"deliverymanId"`
	}
)
