// Package hls1024 implements the HLS-1024 keyless hash construction: a
// 1024-bit digest computed over a state of 512 elements of the prime field
// GF(p) for a fixed prime p. Messages are framed into 64-byte blocks,
// each absorbed into the state and mixed by a schedule of diffusion and
// confusion rounds; the digest is extracted through a domain-separated
// SHAKE-256 pass over the final state.
//
// Two profiles ship: Baseline (v0.2) and Enhanced (v1.0, the default). A
// digest is a pure function of (profile, message); independent computations
// share no mutable state and may run concurrently.
package hls1024

import (
	"math/big"
)

// Copyright © 2024 JXPH. Licensed under the Apache-2.0 license.

// splitIntoBlocks frames message into 64-byte blocks: message ‖ 0x01 ‖
// zero padding ‖ 0x80. At least two bytes are always appended, so the empty
// message still yields one block and the framing marker is unambiguous.
func (pr *Profile) splitIntoBlocks(message []byte) [][]byte {
	rate := pr.blockBytes
	padlen := (rate - (len(message)+2)%rate) % rate
	padded := make([]byte, 0, len(message)+2+padlen)
	padded = append(padded, message...)
	padded = append(padded, 0x01)
	padded = append(padded, make([]byte, padlen)...)
	padded = append(padded, 0x80)

	blocks := make([][]byte, 0, len(padded)/rate)
	for off := 0; off < len(padded); off += rate {
		blocks = append(blocks, padded[off:off+rate])
	}
	return blocks
}

// Sum computes the profile's digest of message. It is deterministic and total
// for any finite input, including nil.
func (pr *Profile) Sum(message []byte) []byte {
	state := pr.initialState()
	for i, block := range pr.splitIntoBlocks(message) {
		var mv []*big.Int
		if pr.mixVectors {
			mv = pr.blockMixVector(uint64(i))
		}
		state = pr.absorb(state, block)
		for r := 0; r < pr.rounds; r++ {
			state = pr.round(state, block, mv)
		}
	}
	return pr.extract(pr.finalize(state))
}

// Sum returns the Enhanced-profile HLS-1024 digest of message.
func Sum(message []byte) []byte { return Enhanced.Sum(message) }
