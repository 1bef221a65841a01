package hls1024

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// Copyright © 2024 JXPH. Licensed under the Apache-2.0 license.

func cloneState(state []*big.Int) []*big.Int {
	s := make([]*big.Int, len(state))
	for i, x := range state {
		s[i] = new(big.Int).Set(x)
	}
	return s
}

// absorb folds a byte block into the state and returns a new state; the input
// state is not touched. The block is zero-padded to a multiple of 8 and read
// as big-endian 64-bit words: word i is added at position i mod n, and its
// high bits (past absorbShift) are XORed at the neighboring position. Profiles
// with extraAbsorb additionally XOR in a short SHAKE-128 byte stream seeded by
// the padded block.
func (pr *Profile) absorb(state []*big.Int, block []byte) []*big.Int {
	n := len(state)
	padded := block
	if rem := len(block) % 8; rem != 0 {
		padded = make([]byte, len(block)+8-rem)
		copy(padded, block)
	}

	s := cloneState(state)
	w := new(big.Int)
	for i := 0; i*8 < len(padded); i++ {
		word := binary.BigEndian.Uint64(padded[i*8:])
		idx := i % n
		s[idx].Add(s[idx], w.SetUint64(word))
		field.reduce(s[idx])

		next := (idx + 1) % n
		s[next].Xor(s[next], w.SetUint64(word>>pr.absorbShift))
		field.reduce(s[next])
	}

	if pr.extraAbsorb {
		xof := sha3.NewShake128()
		xof.Write(pr.seed)
		xof.Write([]byte("::absorb::"))
		xof.Write(padded)
		extra := make([]byte, field.bytesPerElem*2)
		xof.Read(extra)
		for j, bv := range extra {
			idx := j % n
			s[idx].Xor(s[idx], w.SetUint64(uint64(bv)))
			field.reduce(s[idx])
		}
	}
	return s
}
