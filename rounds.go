package hls1024

import (
	"math/big"
)

// Copyright © 2024 JXPH. Licensed under the Apache-2.0 license.

/* One round is diffusion followed by confusion, bracketed by the optional
tweak absorption and state rotation. Every diffusion output depends on three
distinct input positions (i, i+1, i+7), so influence crosses the whole state
within a handful of rounds. */

// diffuse combines each element with its i+1 and i+7 neighbors. With a mixing
// vector, the neighbor XOR is scaled by the (forced-odd) vector element and
// the rotation amount comes from that element; without one, the rotation
// amount is derived from the index.
func (pr *Profile) diffuse(state, mv []*big.Int) []*big.Int {
	n := len(state)
	out := make([]*big.Int, n)
	wbBig := new(big.Int).SetUint64(uint64(field.wordBits))
	r := new(big.Int)
	for i := 0; i < n; i++ {
		x, y, z := state[i], state[(i+1)%n], state[(i+7)%n]
		var v *big.Int
		if mv != nil {
			k := mv[i]
			t := new(big.Int).Xor(y, z)
			t.Mul(t, new(big.Int).Or(k, one))
			t.Add(t, x)
			field.reduce(t)
			v = field.rol(t, uint(r.Mod(k, wbBig).Uint64()))
			field.reduce(v)
			tail := new(big.Int).Rsh(z, 3)
			tail.Xor(tail, y)
			v.Add(v, tail)
			field.reduce(v)
		} else {
			t := new(big.Int).Rsh(z, 3)
			t.Xor(t, y)
			t.Add(t, x)
			field.reduce(t)
			v = field.rol(t, uint(3*i)%field.wordBits)
			field.reduce(v)
		}
		out[i] = v
	}
	return out
}

// confuse applies the per-element nonlinear map x -> x^3 + x^5 + rot + 17
// mod p. The rotation term is zero unless the profile self-derives one from
// the element's own bits.
func (pr *Profile) confuse(state []*big.Int) []*big.Int {
	out := make([]*big.Int, len(state))
	rotMask := new(big.Int).SetUint64(uint64(field.wordBits - 1))
	for i, x := range state {
		t := new(big.Int).Exp(x, three, field.prime)
		t.Add(t, new(big.Int).Exp(x, five, field.prime))
		t.Add(t, seventeen)
		if pr.confuseRot {
			r := new(big.Int).Rsh(x, 5)
			r.And(r, rotMask)
			t.Add(t, field.rol(x, uint(r.Uint64())))
		}
		out[i] = field.reduce(t)
	}
	return out
}

// rotate cyclically shifts the state right by r positions, so the element at
// index 0 moves to index r. Elements are shared with the input state, which
// must not be reused by the caller.
func rotate(state []*big.Int, r int) []*big.Int {
	n := len(state)
	r %= n
	if r == 0 {
		out := make([]*big.Int, n)
		copy(out, state)
		return out
	}
	out := make([]*big.Int, 0, n)
	out = append(out, state[n-r:]...)
	return append(out, state[:n-r]...)
}

// round advances the state once for the given block.
func (pr *Profile) round(state []*big.Int, block []byte, mv []*big.Int) []*big.Int {
	s := state
	if pr.roundTweaks {
		s = pr.absorb(s, pr.roundTweak(block))
	}
	s = pr.diffuse(s, mv)
	s = pr.confuse(s)
	if pr.rotateState {
		r := new(big.Int).Mod(mv[0], big.NewInt(int64(pr.stateSize)))
		s = rotate(s, int(r.Uint64()))
	}
	return s
}

// finalize runs the fixed finishing schedule: an optional marker absorption,
// then max(4, RoundCount/3) extra rounds over a dedicated mixing vector, so
// the digest never depends on how many message blocks preceded it.
func (pr *Profile) finalize(state []*big.Int) []*big.Int {
	s := state
	var mv []*big.Int
	if pr.mixVectors {
		mv = pr.finalizeMixVector()
	}
	if pr.finalMarker != nil {
		s = pr.absorb(s, pr.finalMarker)
	}
	extra := pr.rounds / 3
	if extra < 4 {
		extra = 4
	}
	for i := 0; i < extra; i++ {
		s = pr.diffuse(s, mv)
		s = pr.confuse(s)
		if pr.rotateState {
			s = rotate(s, i*13%pr.stateSize)
		}
	}
	return s
}
