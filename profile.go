package hls1024

// Copyright © 2024 JXPH. Licensed under the Apache-2.0 license.

// Profile is an immutable bundle of HLS-1024 parameters: the constant
// derivation seed, the round schedule, and which optional permutation steps
// are active. Both shipped profiles share one engine; a Profile is safe for
// concurrent use once constructed.
type Profile struct {
	name    string
	version string
	seed    []byte

	stateSize  int
	rounds     int
	outputBits int
	blockBytes int

	absorbShift uint   /* bits of each message word dropped before the XOR lane */
	extractTag  []byte /* domain-separating suffix fed to the output XOF */
	finalMarker []byte /* absorbed once before the finishing schedule, or nil */

	mixVectors  bool /* per-block mixing vectors drive diffusion */
	roundTweaks bool /* 16-byte tweak absorbed before every round */
	rotateState bool /* whole-state rotation after every round */
	extraAbsorb bool /* secondary XOF byte pass during absorption */
	confuseRot  bool /* self-derived rotation term inside confusion */
}

// Enhanced is the v1.0 construction: per-block mixing vectors, per-round
// tweak absorption, post-round state rotation, and an extra absorption pass.
var Enhanced = &Profile{
	name:        "enhanced",
	version:     "v1.0",
	seed:        []byte("HLS-1024-SEED-v1.0"),
	stateSize:   512,
	rounds:      24,
	outputBits:  1024,
	blockBytes:  64,
	absorbShift: 32,
	extractTag:  []byte("::hls1024-extract"),
	finalMarker: []byte("HLS-1024-FINALIZE"),
	mixVectors:  true,
	roundTweaks: true,
	rotateState: true,
	extraAbsorb: true,
	confuseRot:  true,
}

// Baseline is the v0.2 construction with every optional step disabled.
var Baseline = &Profile{
	name:        "baseline",
	version:     "v0.2",
	seed:        []byte("HLS-1024-v0.2"),
	stateSize:   512,
	rounds:      16,
	outputBits:  1024,
	blockBytes:  64,
	absorbShift: 16,
	extractTag:  []byte("::extract"),
}

// Parameters is the read-only description of a profile consumed by reporting
// tools.
type Parameters struct {
	StateSize       int
	RoundCount      int
	OutputBits      int
	BlockBytes      int
	PrimeModulusHex string
}

func (pr *Profile) Parameters() Parameters {
	return Parameters{
		StateSize:       pr.stateSize,
		RoundCount:      pr.rounds,
		OutputBits:      pr.outputBits,
		BlockBytes:      pr.blockBytes,
		PrimeModulusHex: primeHex,
	}
}

func (pr *Profile) Name() string { return pr.name }

// Size returns the digest length in bytes.
func (pr *Profile) Size() int { return pr.outputBits / 8 }

func (pr *Profile) BlockSize() int { return pr.blockBytes }
