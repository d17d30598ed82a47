package hash

import (
	"golang.org/x/crypto/bcrypt"
)

var cost = bcrypt.DefaultCost

// SetCost overrides the bcrypt cost for subsequent hashes. Call once at startup.
func SetCost(c int) {
	if c >= bcrypt.MinCost && c <= bcrypt.MaxCost {
		cost = c
	}
}

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check returns false on any malformed hash.
func Check(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
