package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeAlphabet is the character set used for short, human-typeable codes
// (invitation codes, one-time passwords). Crockford-style: uppercase
// letters and digits minus the ambiguous I, L, O and U.
const CodeAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// MinCodeLength is the shortest code GenerateCode will produce. Four
// characters over a 32-symbol alphabet is roughly a million combinations,
// enough that accidental collision in a small table is negligible but no
// floor to go below.
const MinCodeLength = 4

// GenerateCode returns a cryptographically random code of n characters
// drawn from CodeAlphabet.
func GenerateCode(n int) (string, error) {
	if n < MinCodeLength {
		return "", fmt.Errorf("code length must be at least %d, got %d", MinCodeLength, n)
	}

	code := make([]byte, n)
	for i := range code {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(CodeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random code: %w", err)
		}
		code[i] = CodeAlphabet[idx.Int64()]
	}
	return string(code), nil
}
