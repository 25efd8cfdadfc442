package auth

import (
	"crypto/rand"
	"math"
	"math/big"

	"github.com/pkg/errors"

	"quill/internal/domain/service"
)

// codeGenerator draws numeric codes from crypto/rand so codes are not
// guessable from previous outputs.
type codeGenerator struct{}

// NewCodeGenerator is the constructor for codeGenerator.
func NewCodeGenerator() service.CodeGenerator {
	return &codeGenerator{}
}

// Generate returns a uniformly distributed integer with exactly the given
// number of digits: [10^(digits-1), 10^digits - 1]. The leading digit is
// never zero.
func (g *codeGenerator) Generate(digits int) (int, error) {
	if digits <= 0 {
		return 0, errors.New("number of digits must be greater than zero")
	}
	if digits > 18 {
		return 0, errors.New("number of digits exceeds int64 range")
	}

	min := int64(math.Pow10(digits - 1))
	max := int64(math.Pow10(digits)) - 1

	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return 0, errors.Wrap(err, "failed to read random source")
	}

	return int(n.Int64() + min), nil
}
