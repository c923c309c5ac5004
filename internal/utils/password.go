package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt-hashes plain at the given cost.  The cost is injected
// from config (BCRYPT_COST); tests pass the bcrypt minimum to stay fast.
func HashPassword(plain string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.  Any
// comparison failure, including a malformed hash, reads as a mismatch.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
