package password

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed   = errors.New("password hashing failed")
	ErrInvalidPassword = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

// HashPassword produces a value suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

// Verifier checks a presented secret against a plain password, a bcrypt hash,
// or both. Empty candidates never match.
type Verifier struct {
	plain string
	hash  string
}

func NewVerifier(plain, hash string) *Verifier {
	return &Verifier{plain: plain, hash: hash}
}

func (v *Verifier) Configured() bool {
	return v.plain != "" || v.hash != ""
}

func (v *Verifier) Matches(candidate string) bool {
	if candidate == "" {
		return false
	}
	if v.plain != "" && subtle.ConstantTimeCompare([]byte(v.plain), []byte(candidate)) == 1 {
		return true
	}
	if v.hash != "" && bcrypt.CompareHashAndPassword([]byte(v.hash), []byte(candidate)) == nil {
		return true
	}
	return false
}
