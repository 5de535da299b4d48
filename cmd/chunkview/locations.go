package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/chunkview"
)

// maxRange bounds START-END ranges so a typo cannot allocate millions of
// line numbers.
const maxRange = 100000

// ParseLocations parses FILE:LINE[,LINE|START-END...] arguments. Arguments
// naming the same file are merged into one selection, in order of first
// appearance.
func ParseLocations(args []string) ([]chunkview.Selection, error) {
	var sels []chunkview.Selection
	index := make(map[string]int)

	for _, arg := range args {
		path, lines, err := parseLocation(arg)
		if err != nil {
			return nil, err
		}
		i, ok := index[path]
		if !ok {
			i = len(sels)
			index[path] = i
			sels = append(sels, chunkview.Selection{Path: path})
		}
		sels[i].LineNumbers = append(sels[i].LineNumbers, lines...)
	}

	for i := range sels {
		sels[i].LineNumbers = chunkview.NormalizeLineNumbers(sels[i].LineNumbers)
	}
	return sels, nil
}

func parseLocation(arg string) (string, []int, error) {
	// Split at the last colon so paths may contain colons.
	i := strings.LastIndexByte(arg, ':')
	if i <= 0 || i == len(arg)-1 {
		return "", nil, fmt.Errorf("invalid location %q: want FILE:LINE[,LINE...]", arg)
	}
	path, spec := arg[:i], arg[i+1:]

	var lines []int
	for part := range strings.SplitSeq(spec, ",") {
		startStr, endStr, isRange := strings.Cut(part, "-")
		start, err := parseLine(arg, startStr)
		if err != nil {
			return "", nil, err
		}
		end := start
		if isRange {
			if end, err = parseLine(arg, endStr); err != nil {
				return "", nil, err
			}
		}
		if end < start || end-start >= maxRange {
			return "", nil, fmt.Errorf("invalid location %q: bad range %s", arg, part)
		}
		for n := start; n <= end; n++ {
			lines = append(lines, n)
		}
	}
	return path, lines, nil
}

func parseLine(arg, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid location %q: %q is not a line number", arg, s)
	}
	return n, nil
}
