package account

const (
	SelectAccounts = `
		SELECT id, name, document_id, password_hash, role, created_at, updated_at
		FROM accounts
		ORDER BY created_at
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectAccountByID = `
		SELECT id, name, document_id, password_hash, role, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	SelectAccountByDocumentID = `
		SELECT id, name, document_id, password_hash, role, created_at, updated_at
		FROM accounts
		WHERE document_id = $1
	`
	SelectAccountByIdentifier = `
		SELECT id, name, document_id, password_hash, role, created_at, updated_at
		FROM accounts
		WHERE id::text = $1 OR document_id = $1
	`
	SelectDeliverymen = `
		SELECT id, name, document_id, password_hash, role, created_at, updated_at
		FROM accounts
		WHERE role = 'DELIVERYMAN'
		ORDER BY name
	`
	InsertAccount = `
		INSERT INTO accounts (name, document_id, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, name, document_id, password_hash, role, created_at, updated_at
	`
	UpdateAccountByID = `
		UPDATE accounts
		SET name = COALESCE($1, name),
		    document_id = COALESCE($2, document_id),
		    role = COALESCE($3, role),
		    password_hash = COALESCE($4, password_hash),
		    updated_at = now()
		WHERE id = $5
		RETURNING
		  id, name, document_id, password_hash, role, created_at, updated_at
	`
	DeleteAccountByID = `
		DELETE FROM accounts
		WHERE id = $1
		RETURNING
		  id, name, document_id, password_hash, role, created_at, updated_at
	`
)
