package recipient

const (
	SelectRecipients = `
		SELECT id, name, document_id, email, address, phone, created_at, updated_at
		FROM recipients
		ORDER BY created_at
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectRecipientByID = `
		SELECT id, name, document_id, email, address, phone, created_at, updated_at
		FROM recipients
		WHERE id = $1
	`
	SelectRecipientByEmail = `
		SELECT id, name, document_id, email, address, phone, created_at, updated_at
		FROM recipients
		WHERE email = $1
	`
	SelectRecipientByIdentifier = `
		SELECT id, name, document_id, email, address, phone, created_at, updated_at
		FROM recipients
		WHERE id::text = $1 OR document_id = $1 OR email = $1
	`
	InsertRecipient = `
		INSERT INTO recipients (name, document_id, email, address, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, name, document_id, email, address, phone, created_at, updated_at
	`
	UpdateRecipientByID = `
		UPDATE recipients
		SET name = COALESCE($1, name),
		    document_id = COALESCE($2, document_id),
		    email = COALESCE($3, email),
		    address = COALESCE($4, address),
		    phone = COALESCE($5, phone),
		    updated_at = now()
		WHERE id = $6
		RETURNING
		  id, name, document_id, email, address, phone, created_at, updated_at
	`
	DeleteRecipientByID = `
		DELETE FROM recipients
		WHERE id = $1
		RETURNING
		  id, name, document_id, email, address, phone, created_at, updated_at
	`
)
