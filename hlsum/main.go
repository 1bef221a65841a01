package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	. "fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jxph/hls1024"
	"github.com/p7r0x7/vainpath"
	"github.com/pkg/errors"
	. "github.com/spf13/pflag"
)

// Copyright © 2024 JXPH. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure, invalid = 0, 1, 2

var warnings = 0

func main() { os.Exit(program()) }

// help prints a usage menu. To consistently correctly render this menu in
// most terminal windows, its content should be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "hlsum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "The HLS-1024 prime-field hashing algorithm.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h] [--selftest]"+n,
		spaces, "[-bt] [-p <name>] [--quiet|no-codes] [-m STRING] [-f PATH] -|PATH..."+n,
		spaces, "[-bt] [-p <name>] [--quiet|no-codes] -s STRING..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+n+
		"specified, signaling the end of parsed flags. With no targets at all, ", name, n,
		"reads the message from ", os.Stdin.Name(), " on this platform."+n)
}

func profileNamed(name string) *hls1024.Profile {
	switch strings.ToLower(name) {
	case "", "enhanced":
		return hls1024.Enhanced
	case "baseline":
		return hls1024.Baseline
	}
	return nil
}

// selftest mirrors the reference implementation's quick check: determinism,
// digest length, and divergence between the two shipped profiles.
func selftest(pr *hls1024.Profile) int {
	Println("Running quick self-test...")
	msg := []byte("selftest")
	first := pr.Sum(msg)
	if !bytes.Equal(first, pr.Sum(msg)) {
		Println("FAIL determinism")
		return failure
	}
	if len(first) != pr.Size() {
		Println("FAIL digest length")
		return failure
	}
	if bytes.Equal(hls1024.Baseline.Sum(msg), hls1024.Enhanced.Sum(msg)) {
		Println("FAIL profile divergence")
		return failure
	}
	Println("OK")
	return success
}

// This program is a command-line interface for hls1024: It handles various
// flags and an unlimited number of arguments, hashing strings, files, or
// STDIN as required by the command-line operator.
func program() int {
	if pHelp {
		help()
		return success
	}
	pr := profileNamed(pProfile)
	if pr == nil {
		Fprint(os.Stderr, purp, "Unknown profile `", pProfile, "`; want enhanced or baseline.", zero, n)
		return invalid
	}
	if pSelftest {
		return selftest(pr)
	}

	type target struct {
		name     string
		isString bool
	}
	var jobs []target
	if CommandLine.Changed("message") {
		jobs = append(jobs, target{pMessage, true})
	}
	if pFile != "" {
		jobs = append(jobs, target{pFile, false})
	}
	for _, arg := range Args() {
		jobs = append(jobs, target{arg, pString})
	}
	if len(jobs) == 0 {
		jobs = append(jobs, target{"-", false}) /* STDIN fallback */
	}

	for _, tg := range jobs {
		start := time.Now()

		var message []byte
		var err error
		switch {
		case tg.isString:
			message = []byte(tg.name)
		case tg.name == "-" || tg.name == os.Stdin.Name():
			message, err = io.ReadAll(os.Stdin)
			err = errors.Wrap(err, "reading standard input")
		default:
			message, err = os.ReadFile(tg.name)
			err = errors.Wrapf(err, "reading %s", tg.name)
		}
		if err != nil {
			warn(err)
			continue
		}

		digest := pr.Sum(message)
		delta := ""
		if pTime {
			d := time.Since(start)
			if d.Microseconds() > 99 {
				d = d.Truncate(10 * time.Microsecond)
			}
			delta = " (" + d.String() + ")"
		}

		str := hex.EncodeToString(digest)
		if pBase64 {
			str = base64.StdEncoding.EncodeToString(digest)
		}
		switch {
		case pQuiet:
			Println(str)
		case tg.isString:
			Print(yell, str, zero, `  "`, tg.name, `"`, delta, n)
		case pNoCodes:
			Print(str, `  `, filepath.Clean(tg.name), delta, n)
		default:
			Print(yell, str, zero, `  `, und, vainpath.Simplify(tg.name), zero, delta, n)
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

func warn(err error) {
	if !pQuiet {
		Fprint(os.Stderr, purp, err.Error(), zero, n)
	}
	warnings++
}
