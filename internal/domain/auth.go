package domain

import "time"

// ClientCredentials identify an API client exchanging a secret for a token.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
}

// Token represents issued access token metadata.
type Token struct {
	Value     string
	SubjectID string
	ExpiresAt time.Time
}
