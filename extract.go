package hls1024

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// Copyright © 2024 JXPH. Licensed under the Apache-2.0 license.

// extract collapses the final state into the digest. The output XOF is bound
// to the profile's parameters through a leading domain string and a trailing
// profile tag, so profiles with different parameters cannot collide on the
// same message.
func (pr *Profile) extract(state []*big.Int) []byte {
	xof := sha3.NewShake256()
	fmt.Fprintf(xof, "HLS1024|%s|StateSize=%d|Rounds=%d|PrimeBits=%d|OutBits=%d",
		pr.version, pr.stateSize, pr.rounds, field.wordBits, pr.outputBits)
	buf := make([]byte, field.bytesPerElem)
	for _, v := range state {
		v.FillBytes(buf)
		xof.Write(buf)
	}
	xof.Write(pr.extractTag)

	out := make([]byte, pr.outputBits/8)
	xof.Read(out)
	return out
}
