package versioning

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collate.Collator keeps scratch buffers, so each goroutine takes its own.
var collators = sync.Pool{
	New: func() any { return collate.New(language.English, collate.Numeric) },
}

// LocaleCompare compares two strings the way a reader would: English collation with digit runs
// compared by numeric value ("v10" after "v9"). It returns -1, 0 or 1.
func LocaleCompare(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)
	return c.CompareString(a, b)
}

// CompareDesc returns a negative number when a sorts before b, positive when after, 0 when equal.
//
// Semantic labels sort descending (2.0 before 1.0; a release before its prereleases), a leading "v"
// is ignored, non-semantic labels sort before semantic ones, and two prereleases of the same release
// sort by their prerelease tag in reading order (beta.1 before beta.2).
func CompareDesc(a, b string) int {
	if a == b {
		return 0
	}
	semA, semB := strings.TrimPrefix(a, "v"), strings.TrimPrefix(b, "v")
	isSemA := strings.Contains(a, ".") || isNumber(semA)
	isSemB := strings.Contains(b, ".") || isNumber(semB)
	switch {
	case isSemA && isSemB:
		return compareSemantic(semA, semB)
	case isSemA:
		return 1
	case isSemB:
		return -1
	default:
		return -LocaleCompare(a, b)
	}
}

// SortDesc sorts labels in place with CompareDesc. The sort is stable.
func SortDesc(labels []string) {
	slices.SortStableFunc(labels, CompareDesc)
}

func compareSemantic(a, b string) int {
	coreA, preA, hasPreA := strings.Cut(a, "-")
	coreB, preB, hasPreB := strings.Cut(b, "-")
	if c := compareCore(coreA, coreB); c != 0 {
		return -c
	}
	switch {
	case !hasPreA && !hasPreB:
		return 0
	case !hasPreA:
		return -1
	case !hasPreB:
		return 1
	default:
		return LocaleCompare(preA, preB)
	}
}

// compareCore compares the first three dot-separated parts numerically, ascending.
// A non-numeric part sorts below a numeric one.
func compareCore(a, b string) int {
	partsA, partsB := strings.Split(a, "."), strings.Split(b, ".")
	for i := range 3 {
		numA, numB := part(partsA, i), part(partsB, i)
		nanA, nanB := math.IsNaN(numA), math.IsNaN(numB)
		switch {
		case nanA && nanB:
			continue
		case nanA:
			return -1
		case nanB:
			return 1
		case numA > numB:
			return 1
		case numA < numB:
			return -1
		}
	}
	return 0
}

func part(parts []string, i int) float64 {
	if i >= len(parts) || parts[i] == "" {
		return 0
	}
	n, ok := parseNumber(parts[i])
	if !ok {
		return math.NaN()
	}
	return n
}

func isNumber(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, ok := parseNumber(s)
	return ok
}

// parseNumber accepts finite decimal numbers only; "nan" and "inf" are words, not versions.
func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
