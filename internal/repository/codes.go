package repository

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	ReferralCodeLength = 6

	referralCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// RandomSource is the subset of *rand.Rand the generator needs.
type RandomSource interface {
	Intn(n int) int
}

type CodeGenerator struct {
	rnd RandomSource
	mu  sync.Mutex
}

func NewCodeGenerator(rnd RandomSource) *CodeGenerator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &CodeGenerator{rnd: rnd}
}

// Generate draws codes until taken reports one as free. The code space is
// 36^6, so with any realistic registry size this ends after a draw or two.
func (g *CodeGenerator) Generate(taken func(code string) bool) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		code := g.draw()
		if !taken(code) {
			return code
		}
	}
}

func (g *CodeGenerator) draw() string {
	var b strings.Builder
	b.Grow(ReferralCodeLength)
	for i := 0; i < ReferralCodeLength; i++ {
		b.WriteByte(referralCodeAlphabet[g.rnd.Intn(len(referralCodeAlphabet))])
	}
	return b.String()
}

func NormalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func IsValidReferralCode(code string) bool {
	if len(code) != ReferralCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(referralCodeAlphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}
