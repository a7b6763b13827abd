package auth

// User is the identity record owned by the Store. ID is assigned by the
// store and never changes; Password is stored and compared verbatim.
type User struct {
	ID       int
	Username string
	Password string
}
