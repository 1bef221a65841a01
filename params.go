package hls1024

import (
	"math/big"
)

// Copyright © 2024 JXPH. Licensed under the Apache-2.0 license.

/* HLS-1024 works in GF(p) for the fixed prime below, shared by every
profile. The derived field parameters are computed once at package init and are
read-only for the life of the process. */

const primeHex = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD1" +
	"29024E088A67CC74020BBEA63B139B22514A08798E3404DD" +
	"EF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245" +
	"E485B576625E7EC6F44C42E9A63A36210000000000090563"

type fieldParams struct {
	prime        *big.Int
	wordBits     uint     /* bit length of prime */
	bytesPerElem int      /* big-endian encoding width of one element */
	mask         *big.Int /* (1<<wordBits)-1, bounds every rotation */
}

var field = newFieldParams()

var (
	one       = big.NewInt(1)
	three     = big.NewInt(3)
	five      = big.NewInt(5)
	seventeen = big.NewInt(17)
)

func newFieldParams() *fieldParams {
	p, ok := new(big.Int).SetString(primeHex, 16)
	if !ok {
		panic("hls1024: malformed prime modulus")
	}
	bits := uint(p.BitLen())
	mask := new(big.Int).Lsh(one, bits)
	mask.Sub(mask, one)
	return &fieldParams{prime: p, wordBits: bits, bytesPerElem: (int(bits) + 7) / 8, mask: mask}
}

// reduce brings x back into [0, prime) in place and returns it. Every
// arithmetic or bitwise update to a field element is followed by a reduce;
// an element left out of range is a correctness bug.
func (fp *fieldParams) reduce(x *big.Int) *big.Int { return x.Mod(x, fp.prime) }

// rol cyclically rotates x left by r bit positions within the field's bit
// width. The result is masked to wordBits but not reduced.
func (fp *fieldParams) rol(x *big.Int, r uint) *big.Int {
	r %= fp.wordBits
	if r == 0 {
		return new(big.Int).Set(x)
	}
	v := new(big.Int).Lsh(x, r)
	v.Or(v, new(big.Int).Rsh(x, fp.wordBits-r))
	return v.And(v, fp.mask)
}
