package delivery

const (
	SelectDeliveries = `
		SELECT id, product, status, photo_url, recipient_id, deliveryman_id, created_at, updated_at
		FROM deliveries
		ORDER BY created_at DESC
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectDeliveryByID = `
		SELECT id, product, status, photo_url, recipient_id, deliveryman_id, created_at, updated_at
		FROM deliveries
		WHERE id = $1
	`
	SelectDeliveriesByRecipient = `
		SELECT id, product, status, photo_url, recipient_id, deliveryman_id, created_at, updated_at
		FROM deliveries
		WHERE recipient_id = $1
		ORDER BY created_at DESC
	`
	SelectDeliveriesByDeliveryman = `
		SELECT id, product, status, photo_url, recipient_id, deliveryman_id, created_at, updated_at
		FROM deliveries
		WHERE deliveryman_id = $1
		ORDER BY created_at DESC
	`
	InsertDelivery = `
		INSERT INTO deliveries (product, status, photo_url, recipient_id, deliveryman_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, product, status, photo_url, recipient_id, deliveryman_id, created_at, updated_at
	`
	UpdateDeliveryByID = `
		UPDATE deliveries
		SET product = COALESCE($1, product),
		    status = COALESCE($2, status),
		    recipient_id = COALESCE($3, recipient_id),
		    deliveryman_id = COALESCE($4, deliveryman_id),
		    photo_url = COALESCE($5, photo_url),
		    updated_at = now()
		WHERE id = $6
		RETURNING
		  id, product, status, photo_url, recipient_id, deliveryman_id, created_at, updated_at
	`
	DeleteDeliveryByID = `
		DELETE FROM deliveries
		WHERE id = $1
		RETURNING
		  id, product, status, photo_url, recipient_id, deliveryman_id, created_at, updated_at
	`
)
