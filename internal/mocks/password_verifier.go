package mocks

import "errors"

// ErrMockPasswordMismatch is returned by MockPasswordVerifier when
// configured to fail comparisons.
var ErrMockPasswordMismatch = errors.New("mock password mismatch")

// MockPasswordVerifier implements auth.PasswordVerifier and
// auth.PasswordHasher for testing without the cost of real bcrypt.
type MockPasswordVerifier struct {
	ShouldSucceed bool
	HashResult    string
	HashErr       error
}

// Compare implements the auth.PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return ErrMockPasswordMismatch
}

// Hash implements the auth.PasswordHasher interface.
func (m *MockPasswordVerifier) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	if m.HashResult != "" {
		return m.HashResult, nil
	}
	return "hashed:" + password, nil
}
