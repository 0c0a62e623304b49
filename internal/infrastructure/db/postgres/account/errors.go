package account

import "errors"

// ErrDocumentIDInUse is raised by the accounts unique constraint on
// document_id. It is the authoritative conflict signal; service-level
// pre-checks are only a fast path.
var ErrDocumentIDInUse = errors.New("document id already in use")
