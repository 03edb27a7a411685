package mocks

import "errors"

// ErrMockHash is returned by MockPasswordHasher when Fail is set.
var ErrMockHash = errors.New("mock hash failure")

// MockPasswordHasher implements auth.PasswordHasher and auth.PasswordVerifier.
// By default Hash returns "hashed:" + password and Compare accepts exactly that digest.
type MockPasswordHasher struct {
	// Fail makes Hash return ErrMockHash.
	Fail bool

	// HashFn allows for custom hashing logic in tests
	HashFn func(password string) (string, error)

	// HashCallCount tracks how many times Hash was called
	HashCallCount int
}

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCallCount++
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.Fail {
		return "", ErrMockHash
	}
	return "hashed:" + password, nil
}

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}
