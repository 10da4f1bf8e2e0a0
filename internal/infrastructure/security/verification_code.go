package security

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

// CodeTTL is how long a verification code stays usable.
const CodeTTL = 2 * time.Hour

const codeDigits = 6

var codeRange = big.NewInt(1_000_000)

// CodeGenerator produces fixed-width numeric one-time codes with an expiry
// timestamp. Codes come from crypto/rand, uniform over 000000-999999 with
// leading zeros kept. Uniqueness across accounts is not a property here,
// since the code is scoped to a single account row.
type CodeGenerator struct {
	ttl time.Duration
	now func() time.Time
}

func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{ttl: CodeTTL, now: time.Now}
}

// NewCodeGeneratorAt pins the clock and TTL, for tests.
func NewCodeGeneratorAt(ttl time.Duration, now func() time.Time) *CodeGenerator {
	if ttl <= 0 {
		ttl = CodeTTL
	}
	if now == nil {
		now = time.Now
	}
	return &CodeGenerator{ttl: ttl, now: now}
}

func (g *CodeGenerator) Generate() (string, time.Time, error) {
	n, err := rand.Int(rand.Reader, codeRange)
	if err != nil {
		return "", time.Time{}, domain.ErrRandomFailed(err)
	}
	code := fmt.Sprintf("%0*d", codeDigits, n.Int64())
	return code, g.now().Add(g.ttl), nil
}
