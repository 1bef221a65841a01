package main

import (
	. "fmt"
	"sync"
	"testing"
	"time"

	"github.com/dterei/gotsc"
	"github.com/jxph/hls1024"
	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2024 JXPH. Licensed under the Apache-2.0 license.

/* Field-element arithmetic keeps HLS-1024 orders of magnitude behind the
machine-word hashes benchmarked alongside it; the small message sizes keep a
full statz run under a minute. */
var sizes = [...]int{64, 256, 1024}
var bytes, calltime = []byte(nil), gotsc.TSCOverhead()

func BenchmarkEnhanced(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		hls1024.Enhanced.Sum(bytes)
	}
}

func BenchmarkBaseline(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		hls1024.Baseline.Sum(bytes)
	}
}

func BenchmarkSHA256(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		sha256.Sum256(bytes)
	}
}

func BenchmarkBlake3(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		blake3.Sum512(bytes)
	}
}

func BenchmarkXXH3(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		xxh3.Hash(bytes)
	}
}

// benchStats is the throughput section of the persisted report.
type benchStats struct {
	Name          string    `json:"name"`
	SizesBytes    []int     `json:"sizes_bytes"`
	ThroughputMBs []float64 `json:"throughput_mbps"`
	CyclesPerByte []float64 `json:"cycles_per_byte,omitempty"`
	AllocsPerOp   []float64 `json:"alloc_bytes_per_op"`
}

func benchAlg(name string, alg func(b *testing.B)) benchStats {
	const s = len(sizes)
	throughputs, speeds, usages := make([]float64, s), make([]float64, s), make([]float64, s)

	for i, v := range sizes {
		bytes = make([]byte, v)
		newMsgGen(uint64(v)).read(bytes)

		totalHz, polls, mut := uint64(0), uint64(0), &sync.Mutex{}
		if calltime > 0 {
			go func() {
				for {
					tsc1 := gotsc.BenchStart()
					time.Sleep(time.Millisecond)
					tsc2 := gotsc.BenchEnd()

					mut.Lock()
					totalHz += tsc2 - tsc1 - calltime
					polls++
					mut.Unlock()

					time.Sleep(time.Millisecond * 9)
				}
			}()
		}
		r := testing.Benchmark(alg)
		mut.Lock()
		totalHz *= 1000

		throughputs[i] = float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* B/s */
		speeds[i] = float64(totalHz) / float64(polls) / throughputs[i]
		throughputs[i] /= 1e6 /* MB/s */
		usages[i] = float64(r.AllocedBytesPerOp())
		mut.Unlock()
	}

	Printf("%-17s  64B    256B    1024B\n", name)
	Println("Speed " + fmtFloats(throughputs...) + "   MB/s")
	if calltime > 0 {
		Println("      " + fmtFloats(speeds...) + "   cpb")
	}
	Println("Usage " + fmtFloats(usages...) + "   B/op\n")

	st := benchStats{Name: name, SizesBytes: sizes[:], ThroughputMBs: throughputs, AllocsPerOp: usages}
	if calltime > 0 {
		st.CyclesPerByte = speeds
	}
	return st
}

func fmtFloats(f ...float64) string {
	var str, style string
	for _, v := range f {
		switch whole := float64(int64(v)) == v; {
		case v > 1e8 || (v < 1e-6 && !whole):
			style = "%8.3g"
		case v <= 1e1 && !whole:
			style = "%8.6f"
		case v <= 1e2 && !whole:
			style = "%8.5f"
		case v <= 1e3 && !whole:
			style = "%8.4f"
		case v <= 1e4 && !whole:
			style = "%8.3f"
		case v <= 1e5 && !whole:
			style = "%8.2f"
		case v <= 1e6 && !whole:
			style = "%8.1f"
		default:
			style = "%8.f"
		}
		str += "  " + Sprintf(style, v)
	}
	return str
}
