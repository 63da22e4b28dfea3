package steam

import "errors"

// The resolver distinguishes failure classes even though the command layer
// currently renders most of them with the same user message.
var (
	ErrMissingAPIKey = errors.New("steam: api key is not configured")
	ErrNotFound      = errors.New("steam: not found")
	ErrTransport     = errors.New("steam: transport failure")
	ErrMalformed     = errors.New("steam: malformed response")
)
