package main

import (
	"os"
	"runtime"

	. "github.com/spf13/pflag"
)

// Copyright © 2024 JXPH. Licensed under the Apache-2.0 license.

var pFile, pMessage, pProfile string
var pHelp, pBase64, pNoCodes, pQuiet, pSelftest, pString, pTime bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes || runtime.GOOS == "windows" {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	BoolVarP(&pBase64, "base64", "b", false,
		purp+"render digests in base64"+zero+" (default hex)")

	StringVarP(&pFile, "file", "f", "",
		purp+"hash the file at the given path"+zero)

	StringVarP(&pMessage, "message", "m", "",
		purp+"hash the given argument as a UTF-8 string"+zero)

	Bool("no-codes", false,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	StringVarP(&pProfile, "profile", "p", "enhanced",
		purp+"select the parameter profile (enhanced|baseline)"+zero)

	Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY digests"+zero+
			n+"(enables --no-codes)")

	BoolVar(&pSelftest, "selftest", false,
		purp+"run the built-in self-test and exit"+zero)

	BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as UTF-8 strings to be hashed"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to read and hash each message"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
}
