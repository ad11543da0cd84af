package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var (
	ErrInputRead    = errors.New("read input")
	ErrTooFewTokens = errors.New("need two numbers")
	ErrParse        = errors.New("parse number")
)

// readLine returns the first line of r without its line terminator. A stream
// that ends before any data is an error, an empty line is not.
func readLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	if scanner.Scan() {
		return scanner.Text(), nil
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputRead, err)
	}

	return "", fmt.Errorf("%w: %w", ErrInputRead, io.ErrUnexpectedEOF)
}

// add sums the first two whitespace separated numbers of line, anything after
// them is ignored.
func add(line string) (float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: got %d token(s) in %q", ErrTooFewTokens, len(fields), line)
	}

	a, err := parseFloat(fields[0])
	if err != nil {
		return 0, err
	}

	b, err := parseFloat(fields[1])
	if err != nil {
		return 0, err
	}

	return a + b, nil
}

// parseFloat accepts decimal and exponent notation only, the hex and
// underscore forms of Go literals are rejected.
func parseFloat(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") || strings.Contains(s, "_") {
		return 0, fmt.Errorf("%w: %w", ErrParse, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax})
	}

	v, err := strconv.ParseFloat(s, 64)
	// out of range literals round to ±inf
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return v, nil
}

func format(v float64, comma bool) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if comma {
		return humanize.Commaf(v)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
