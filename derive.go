package hls1024

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// Copyright © 2024 JXPH. Licensed under the Apache-2.0 license.

/* All pseudorandom material inside the permutation is pulled from SHAKE-128;
the output XOF in extract.go is SHAKE-256, kept independent so that derived
constants and digest bytes never come from the same keystream. */

// shakeInts expands seed through SHAKE-128 into count big-endian integers of
// width bytes each. count == 0 yields an empty sequence.
func shakeInts(seed []byte, count, width int) []*big.Int {
	out := make([]*big.Int, count)
	if count == 0 {
		return out
	}
	raw := make([]byte, count*width)
	xof := sha3.NewShake128()
	xof.Write(seed)
	xof.Read(raw)
	for i := range out {
		out[i] = new(big.Int).SetBytes(raw[i*width : (i+1)*width])
	}
	return out
}

// deriveConst generates count field elements bound to label under this
// profile's seed. Deterministic: one (profile, label) pair always yields the
// same sequence.
func (pr *Profile) deriveConst(label []byte, count int) []*big.Int {
	seed := make([]byte, 0, len(pr.seed)+9+len(label))
	seed = append(seed, pr.seed...)
	seed = append(seed, "::const::"...)
	seed = append(seed, label...)
	ints := shakeInts(seed, count, field.bytesPerElem)
	for _, x := range ints {
		field.reduce(x)
	}
	return ints
}

// initialState derives the starting state for one digest computation.
func (pr *Profile) initialState() []*big.Int {
	return pr.deriveConst([]byte("initial-state"), pr.stateSize)
}

// mixVector derives one state-sized sequence of tweak material.
func (pr *Profile) mixVector(tail []byte) []*big.Int {
	label := make([]byte, 0, 8+len(tail))
	label = append(label, "mixvec::"...)
	label = append(label, tail...)
	return pr.deriveConst(label, pr.stateSize)
}

// blockMixVector derives the mixing vector for the block at the given index.
func (pr *Profile) blockMixVector(index uint64) []*big.Int {
	tail := make([]byte, 0, len(pr.seed)+17)
	tail = append(tail, pr.seed...)
	tail = append(tail, "::block::"...)
	var be [8]byte
	binary.BigEndian.PutUint64(be[:], index)
	return pr.mixVector(append(tail, be[:]...))
}

// finalizeMixVector derives the fixed finishing-schedule mixing vector.
func (pr *Profile) finalizeMixVector() []*big.Int {
	tail := make([]byte, 0, len(pr.seed)+10)
	tail = append(tail, pr.seed...)
	return pr.mixVector(append(tail, "::finalize"...))
}

// roundTweak derives the 16-byte per-round tweak for a block.
func (pr *Profile) roundTweak(block []byte) []byte {
	xof := sha3.NewShake128()
	xof.Write(pr.seed)
	xof.Write([]byte("::round-tweak::"))
	xof.Write(block)
	tweak := make([]byte, 16)
	xof.Read(tweak)
	return tweak
}
