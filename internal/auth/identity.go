package auth

// IdentityProvider resolves the current request's credential to a verified
// user id. Use cases depend on this interface so they never learn where the
// token came from.
type IdentityProvider interface {
	CurrentUserID() (int, error)
}

// TokenIdentity binds a presented token string to the processor that can
// check it.
type TokenIdentity struct {
	processor *TokenProcessor
	token     string
}

func NewTokenIdentity(processor *TokenProcessor, token string) TokenIdentity {
	return TokenIdentity{processor: processor, token: token}
}

func (i TokenIdentity) CurrentUserID() (int, error) {
	return i.processor.ValidateToken(i.token)
}
