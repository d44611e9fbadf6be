package ports

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// AnswerVerifier owns the stored form of security answers.
type AnswerVerifier interface {
	Seal(answer string) (string, error)
	Verify(stored, given string) bool
}
