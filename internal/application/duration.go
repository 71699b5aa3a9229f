package application

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	yearsPattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:years?|yrs?)\b`)
	monthsPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*months?\b`)
)

// Years extracts a year count from tenure text. Year wording wins over month
// wording; months convert to whole years; a bare number reads as years.
// Anything unparseable counts as zero.
func (d DurationText) Years() float64 {
	s := strings.ToLower(strings.TrimSpace(string(d)))
	if s == "" {
		return 0
	}

	if m := yearsPattern.FindStringSubmatch(s); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			return f
		}
	}

	if m := monthsPattern.FindStringSubmatch(s); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			return math.Floor(f / 12)
		}
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 {
		return f
	}

	return 0
}
