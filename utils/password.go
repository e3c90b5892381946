package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt digest. Cost is fixed at the bcrypt
// default (10); two hashes of the same plaintext differ because the salt is
// random.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored digest. It only
// ever answers true or false; callers must not surface anything more specific.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
