package auth

import "errors"

// Service implements the four account use cases over the store and an
// identity provider. Each method is a single orchestration step; failures
// surface unchanged to the boundary.
type Service struct {
	store           *Store
	uniqueUsernames bool
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// WithUniqueUsernames enables rejecting registrations for usernames that
// are already taken. Off by default: the historical behavior admits
// duplicates even though the conflict error and its 409 mapping exist.
func (s *Service) WithUniqueUsernames(enabled bool) {
	s.uniqueUsernames = enabled
}

func (s *Service) Register(username, password string) (User, error) {
	if s.uniqueUsernames {
		if _, taken := s.store.GetUserByUsername(username); taken {
			return User{}, ErrUserAlreadyExists
		}
	}

	user := User{
		ID:       s.store.NextID(),
		Username: username,
		Password: password,
	}
	s.store.SaveUser(user)

	return user, nil
}

// Login returns the matching user. Unknown username and wrong password
// produce the same generic failure. Issuing a token for the result is the
// boundary's job.
func (s *Service) Login(username, password string) (User, error) {
	user, ok := s.store.GetUserByUsername(username)
	if !ok || user.Password != password {
		return User{}, UnauthenticatedError{Message: "Invalid username or password"}
	}

	return user, nil
}

// AuthenticatedUser resolves the caller's id and loads the matching record.
// A structurally valid token whose subject no longer exists (deleted after
// issuance) is unauthenticated, not a distinct not-found case.
func (s *Service) AuthenticatedUser(identity IdentityProvider) (User, error) {
	userID, err := identity.CurrentUserID()
	if err != nil {
		return User{}, err
	}

	user, ok := s.store.GetUser(userID)
	if !ok {
		return User{}, UnauthenticatedError{Message: "Invalid token"}
	}

	return user, nil
}

// DeleteAuthenticatedUser removes the caller's own record. The token used
// stays cryptographically valid until expiry but resolves to nothing
// afterwards.
func (s *Service) DeleteAuthenticatedUser(identity IdentityProvider) error {
	userID, err := identity.CurrentUserID()
	if err != nil {
		return err
	}

	if _, ok := s.store.GetUser(userID); !ok {
		return UnauthenticatedError{Message: "Invalid token"}
	}

	return s.store.DeleteUser(userID)
}

// UnauthenticatedError carries a human-readable but deliberately
// non-specific message; the cause is never distinguished to the caller.
type UnauthenticatedError struct {
	Message string
}

func (e UnauthenticatedError) Error() string {
	return e.Message
}

var ErrUserAlreadyExists = errors.New("User already exists")
