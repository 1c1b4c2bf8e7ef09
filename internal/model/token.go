package model

// TokenPurpose selects which signing key pair a token belongs to. Auth and
// refresh tokens are never signed with the same composite secret, so a
// refresh token can not be replayed as an auth token.
type TokenPurpose string

const (
	PurposeAuth    TokenPurpose = "auth"
	PurposeRefresh TokenPurpose = "refresh"
)

// TokenManager mints and validates bearer tokens. The signing secret for a
// token is the process-wide key for its purpose concatenated with the user's
// stored secret component for that purpose.
type TokenManager interface {
	Mint(email string, purpose TokenPurpose, component string) (string, error)
	// DecodeUnverified extracts the email claim without checking the
	// signature. Callers use it only to look up which user's secret
	// component to verify against.
	DecodeUnverified(token string) (email string, err error)
	Verify(token string, purpose TokenPurpose, component string) (email string, err error)
}

// TokenPair is the credential pair handed out after a successful
// verification: a short-lived auth token and a long-lived refresh token.
type TokenPair struct {
	AuthToken    string
	RefreshToken string
}

// Identity is the authenticated principal attached to a request after its
// bearer token has been verified.
type Identity struct {
	Email string
}
