package auth

import (
	"errors"
	"sync"
)

// Store is the authoritative in-memory registry of users. All lookups are
// linear scans; there is no scale requirement for this data set.
//
// The mutex guards the slice itself because net/http serves requests
// concurrently. It does not make NextID-then-SaveUser atomic: id allocation
// across concurrent registrations remains the caller's problem.
type Store struct {
	mu    sync.Mutex
	users []User
}

func NewStore() *Store {
	return &Store{}
}

// GetUser returns the user with the given id. A miss is not an error.
func (s *Store) GetUser(id int) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, true
		}
	}

	return User{}, false
}

func (s *Store) GetUserByUsername(username string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}

	return User{}, false
}

// SaveUser appends the user as-is. Uniqueness of id and username is the
// caller's guarantee, not the store's.
func (s *Store) SaveUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, user)
}

// NextID returns 1 for an empty registry, otherwise max(existing ids)+1.
// It is recomputed on every call rather than kept as a counter, so deleting
// the highest id makes that id available again while earlier gaps stay gaps.
func (s *Store) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	max := 0
	for _, user := range s.users {
		if user.ID > max {
			max = user.ID
		}
	}

	return max + 1
}

// DeleteUser removes the user with the given id and fails hard when no such
// user exists.
func (s *Store) DeleteUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, user := range s.users {
		if user.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}

	return ErrUserNotFound
}

// Count reports how many users are registered.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.users)
}

var ErrUserNotFound = errors.New("user not found")
