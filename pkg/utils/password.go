package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest. Two hashes of the same
// plaintext differ, both verify.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether the digest was produced from pw. A malformed
// digest is just a mismatch, never an error.
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
