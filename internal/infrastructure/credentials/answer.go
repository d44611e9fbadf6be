package credentials

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"petconnect-api/internal/application/ports"
)

const (
	AnswerModePlain  = "plain"
	AnswerModeBcrypt = "bcrypt"
)

// NewAnswerVerifier picks the stored form of security answers.
func NewAnswerVerifier(mode string, cost int) (ports.AnswerVerifier, error) {
	switch mode {
	case "", AnswerModePlain:
		return PlainAnswers{}, nil
	case AnswerModeBcrypt:
		return BcryptAnswers{hasher: NewBcryptHasher(cost)}, nil
	default:
		return nil, fmt.Errorf("unknown security answer mode %q", mode)
	}
}

// PlainAnswers stores answers as given and compares them exactly.
type PlainAnswers struct{}

func (PlainAnswers) Seal(answer string) (string, error) { return answer, nil }

func (PlainAnswers) Verify(stored, given string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

type BcryptAnswers struct {
	hasher *BcryptHasher
}

func (b BcryptAnswers) Seal(answer string) (string, error) {
	if answer == "" {
		return "", nil
	}
	return b.hasher.Hash(answer)
}

func (b BcryptAnswers) Verify(stored, given string) bool {
	if stored == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}
