package main

import (
	"encoding/binary"
	"math/bits"
	"runtime"
	"sync"

	"github.com/aead/chacha20/chacha"
	"github.com/jxph/hls1024"
)

// Copyright © 2024 JXPH. Licensed under the Apache-2.0 license.

/* All message material comes from a seeded ChaCha20 keystream, so every statz
run measures the same inputs and reports stay comparable across machines. */

type msgGen struct {
	stream *chacha.Cipher
}

func newMsgGen(seed uint64) *msgGen {
	var key [32]byte
	var nonce [12]byte
	binary.BigEndian.PutUint64(key[:8], seed)
	stream, err := chacha.NewCipher(nonce[:], key[:], 20)
	if err != nil {
		panic(err)
	}
	return &msgGen{stream}
}

func (g *msgGen) read(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	g.stream.XORKeyStream(buf, buf)
}

// avalancheStats records how digests respond to single-bit input flips.
type avalancheStats struct {
	Trials   int     `json:"trials"`
	Mean     float64 `json:"mean_fraction"`
	Min      float64 `json:"min_fraction"`
	Max      float64 `json:"max_fraction"`
	Outliers int     `json:"outliers"` /* trials outside [0.2, 0.8] */
}

// measureAvalanche flips one pseudorandom bit in each of trials 64-byte
// messages and tallies the fraction of differing digest bits. Independent
// digest computations share no state, so trials fan out across all CPUs.
func measureAvalanche(pr *hls1024.Profile, trials int) avalancheStats {
	gen := newMsgGen(0xa7a1)
	type trial struct {
		msg []byte
		bit int
	}
	trialSet := make([]trial, trials)
	for i := range trialSet {
		msg := make([]byte, 64)
		gen.read(msg)
		var pick [2]byte
		gen.read(pick[:])
		trialSet[i] = trial{msg, int(binary.BigEndian.Uint16(pick[:])) % (len(msg) * 8)}
	}

	fracs := make([]float64, trials)
	var group sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())
	for i := range trialSet {
		group.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; group.Done() }()
			before := pr.Sum(trialSet[i].msg)
			flipped := append([]byte(nil), trialSet[i].msg...)
			flipped[trialSet[i].bit/8] ^= 1 << (trialSet[i].bit % 8)
			after := pr.Sum(flipped)
			var diff int
			for j := range before {
				diff += bits.OnesCount8(before[j] ^ after[j])
			}
			fracs[i] = float64(diff) / float64(len(before)*8)
		}(i)
	}
	group.Wait()

	st := avalancheStats{Trials: trials, Min: 1}
	for _, f := range fracs {
		st.Mean += f
		if f < st.Min {
			st.Min = f
		}
		if f > st.Max {
			st.Max = f
		}
		if f < 0.2 || f > 0.8 {
			st.Outliers++
		}
	}
	st.Mean /= float64(trials)
	return st
}

// frequencyStats summarizes positional digest bias.
type frequencyStats struct {
	Samples  int     `json:"samples"`
	MeanBias float64 `json:"mean_bias_percent"` /* mean |ones - n/2| as % of n/2 */
	MaxBias  float64 `json:"max_bias_percent"`
}

// measureBitFrequency hashes sequential 4-byte counters and tallies the ones
// count of every digest bit position. The raw tally backs the CSV artifact.
func measureBitFrequency(pr *hls1024.Profile, samples int) (frequencyStats, []float64) {
	outBits := pr.Size() * 8
	tally := make([]float64, outBits)
	msg := make([]byte, 4)
	for i := 0; i < samples; i++ {
		binary.BigEndian.PutUint32(msg, uint32(i))
		digest := pr.Sum(msg)
		for b := 0; b < outBits; b++ {
			if digest[b/8]>>(7-b%8)&1 == 1 {
				tally[b]++
			}
		}
	}

	st := frequencyStats{Samples: samples}
	half := float64(samples) / 2
	for b := range tally {
		bias := tally[b] - half
		if bias < 0 {
			bias = -bias
		}
		bias = bias / half * 100
		st.MeanBias += bias
		if bias > st.MaxBias {
			st.MaxBias = bias
		}
	}
	st.MeanBias /= float64(outBits)
	return st, tally
}

// measureByteFrequency histograms every digest byte value over samples
// pseudorandom messages and reports the deviation from uniform.
func measureByteFrequency(pr *hls1024.Profile, samples int) frequencyStats {
	gen := newMsgGen(0xb17e)
	var counts [256]float64
	msg := make([]byte, 64)
	total := 0
	for i := 0; i < samples; i++ {
		gen.read(msg)
		for _, b := range pr.Sum(msg) {
			counts[b]++
			total++
		}
	}

	st := frequencyStats{Samples: samples}
	expect := float64(total) / 256
	for _, c := range counts {
		bias := (c - expect) / expect * 100
		if bias < 0 {
			bias = -bias
		}
		st.MeanBias += bias
		if bias > st.MaxBias {
			st.MaxBias = bias
		}
	}
	st.MeanBias /= 256
	return st
}

// measureAutocorrelation concatenates counter digests and correlates the bit
// stream against itself at small lags; 50% agreement is the ideal.
func measureAutocorrelation(pr *hls1024.Profile, samples, lags int) []float64 {
	stream := make([]byte, 0, samples*pr.Size())
	msg := make([]byte, 4)
	for i := 0; i < samples; i++ {
		binary.BigEndian.PutUint32(msg, uint32(i))
		stream = append(stream, pr.Sum(msg)...)
	}

	bitAt := func(i int) byte { return stream[i/8] >> (7 - i%8) & 1 }
	n := len(stream) * 8
	out := make([]float64, lags)
	for lag := 1; lag <= lags; lag++ {
		agree := 0
		for i := 0; i+lag < n; i++ {
			if bitAt(i) == bitAt(i+lag) {
				agree++
			}
		}
		out[lag-1] = float64(agree) / float64(n-lag)
	}
	return out
}
