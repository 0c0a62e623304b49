package ports

import "context"

type Auth interface {
	// Authenticate verifies a document id + password pair and returns a
	// signed access token bound to the account.
	Authenticate(ctx context.Context, documentID, password string) (string, error)
}
