package booking

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	tokenLength   = 6
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Token is the counter code a beneficiary shows to the venue.
type Token struct {
	value string
}

func NewToken(s string) (Token, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != tokenLength {
		return Token{}, ErrInvalidToken
	}
	for _, r := range s {
		if !strings.ContainsRune(tokenAlphabet, r) {
			return Token{}, ErrInvalidToken
		}
	}
	return Token{value: s}, nil
}

func (t Token) String() string { return t.value }

func (t Token) Equals(other Token) bool { return t.value == other.value }

type TokenGenerator interface {
	Generate() (Token, error)
}

type RandomTokenGenerator struct{}

func NewRandomTokenGenerator() *RandomTokenGenerator {
	return &RandomTokenGenerator{}
}

func (RandomTokenGenerator) Generate() (Token, error) {
	var b strings.Builder
	max := big.NewInt(int64(len(tokenAlphabet)))
	for range tokenLength {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return Token{}, err
		}
		b.WriteByte(tokenAlphabet[n.Int64()])
	}
	return Token{value: b.String()}, nil
}

// Quantity of places held by a booking: 1, or 2 for duo offers.
type Quantity struct {
	value int
}

func NewQuantity(v int, isDuo bool) (Quantity, error) {
	if v == 1 || (v == 2 && isDuo) {
		return Quantity{value: v}, nil
	}
	return Quantity{}, ErrInvalidQuantity
}

func (q Quantity) Int() int { return q.value }
