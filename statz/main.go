package main

import (
	"encoding/csv"
	"encoding/json"
	. "fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/jxph/hls1024"
	"github.com/pkg/errors"
)

// Copyright © 2024 JXPH. Licensed under the Apache-2.0 license.
/* This program is the statistical validation suite for the Go implementation
of HLS-1024. It measures avalanche response, per-bit and per-byte digest
frequency, bit-stream autocorrelation, and throughput against properly-vetted
hashing algorithms, then persists the results as JSON and CSV artifacts for
offline comparison. */

const (
	avalancheTrials  = 256
	frequencySamples = 512
	autocorrSamples  = 64
	autocorrLags     = 8
)

type report struct {
	ProfileName     string             `json:"profile_name"`
	Profile         hls1024.Parameters `json:"profile"`
	Avalanche       avalancheStats     `json:"avalanche"`
	BitFrequency    frequencyStats     `json:"bit_frequency"`
	ByteFrequency   frequencyStats     `json:"byte_frequency"`
	Autocorrelation []float64          `json:"autocorrelation_by_lag"`
	Benchmarks      []benchStats       `json:"benchmarks"`
	GOOS            string             `json:"goos"`
	GOARCH          string             `json:"goarch"`
}

func main() {
	Printf("Running statz on %d CPUs!\n\n", runtime.NumCPU())
	t := time.Now()

	pr := hls1024.Enhanced
	rep := report{
		ProfileName: pr.Name(), Profile: pr.Parameters(),
		GOOS: runtime.GOOS, GOARCH: runtime.GOARCH,
	}

	rep.Avalanche = measureAvalanche(pr, avalancheTrials)
	Printf("Avalanche:       mean %.4f  min %.4f  max %.4f  outliers %d\n",
		rep.Avalanche.Mean, rep.Avalanche.Min, rep.Avalanche.Max, rep.Avalanche.Outliers)

	var tally []float64
	rep.BitFrequency, tally = measureBitFrequency(pr, frequencySamples)
	Printf("Bit frequency:   mean bias %5.3f%%  max bias %5.3f%%\n",
		rep.BitFrequency.MeanBias, rep.BitFrequency.MaxBias)

	rep.ByteFrequency = measureByteFrequency(pr, frequencySamples)
	Printf("Byte frequency:  mean bias %5.3f%%  max bias %5.3f%%\n",
		rep.ByteFrequency.MeanBias, rep.ByteFrequency.MaxBias)

	rep.Autocorrelation = measureAutocorrelation(pr, autocorrSamples, autocorrLags)
	Printf("Autocorrelation:%s   (ideal 0.5)\n", fmtFloats(rep.Autocorrelation...))

	Print("\n ============================================= \n\n")
	rep.Benchmarks = append(rep.Benchmarks,
		benchAlg("HLS1024-enhanced", BenchmarkEnhanced),
		benchAlg("HLS1024-baseline", BenchmarkBaseline),
		benchAlg("SHA-256", BenchmarkSHA256),
		benchAlg("BLAKE3-512", BenchmarkBlake3),
		benchAlg("XXH3-64", BenchmarkXXH3))

	if err := writeReports(&rep, tally); err != nil {
		Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	Printf("Finished in %s on %s/%s.\n", time.Since(t).String(), runtime.GOOS, runtime.GOARCH)
}

// writeReports persists the JSON report and the per-bit frequency CSV next to
// the working directory.
func writeReports(rep *report, tally []float64) error {
	buf, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding report")
	}
	if err = os.WriteFile("statz.json", append(buf, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "writing statz.json")
	}

	f, err := os.Create("bitfreq.csv")
	if err != nil {
		return errors.Wrap(err, "creating bitfreq.csv")
	}
	w := csv.NewWriter(f)
	w.Write([]string{"bit", "ones", "samples"})
	for i, ones := range tally {
		w.Write([]string{
			strconv.Itoa(i),
			strconv.FormatFloat(ones, 'f', -1, 64),
			strconv.Itoa(frequencySamples),
		})
	}
	w.Flush()
	if err = w.Error(); err != nil {
		f.Close()
		return errors.Wrap(err, "writing bitfreq.csv")
	}
	return errors.Wrap(f.Close(), "closing bitfreq.csv")
}
