// Package random provides the number sources the games draw from: a seeded
// PCG generator for reproducible sessions and a cryptographic stream backed
// by kyber.
package random

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
	kyberrand "go.dedis.ch/kyber/v4/util/random"
)

const (
	KindPCG    = "pcg"
	KindCrypto = "crypto"
)

// Source returns values in [0, n). n must be positive.
type Source interface {
	IntN(n int) int
}

var suite suites.Suite = suites.MustFind("Ed25519")

type Seeded struct {
	seed uint64
	r    *rand.Rand
}

func NewSeeded(seed uint64) *Seeded {
	return &Seeded{
		seed: seed,
		r:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *Seeded) IntN(n int) int {
	return s.r.IntN(n)
}

func (s *Seeded) Seed() uint64 {
	return s.seed
}

// Crypto draws every value from the Ed25519 suite's random stream.
type Crypto struct{}

func NewCrypto() Crypto {
	return Crypto{}
}

func (Crypto) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("random: invalid argument to IntN: %d", n))
	}
	return int(kyberrand.Int(big.NewInt(int64(n)), suite.RandomStream()).Int64())
}

// Seed draws a non-zero seed from the crypto stream.
func (Crypto) Seed() uint64 {
	buf := make([]byte, 8)
	for {
		suite.RandomStream().XORKeyStream(buf, buf)
		if s := binary.LittleEndian.Uint64(buf); s != 0 {
			return s
		}
	}
}

// New builds the source named by kind. A zero seed for the PCG source is
// replaced by one drawn from the crypto stream.
func New(kind string, seed uint64) (Source, error) {
	switch kind {
	case "", KindPCG:
		if seed == 0 {
			seed = NewCrypto().Seed()
		}
		return NewSeeded(seed), nil
	case KindCrypto:
		return NewCrypto(), nil
	}
	return nil, fmt.Errorf("unknown random source %q", kind)
}
