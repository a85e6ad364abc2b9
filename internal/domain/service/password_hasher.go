package service

// PasswordHasher handles password hashing, verification and strength rules.
type PasswordHasher interface {
	// Hash creates a secure hash of the given password.
	Hash(password string) (string, error)

	// Check verifies a password against its hash.
	Check(password, hash string) error

	// ValidateStrength enforces the password policy before hashing.
	ValidateStrength(password string) error
}
