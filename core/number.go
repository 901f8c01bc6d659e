package core

import "strings"

// digitWords is never written after initialization.
var digitWords = map[string]float64{
	"zero":  0,
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

const (
	wordMinus = "minus"
	wordComma = "comma"
)

// ParseNumber reads a number spelled out as words, e.g.
// "minus six comma three nine" is -6.39.
func ParseNumber(words []string) (float64, error) {
	if len(words) == 0 {
		return 0, ErrNoNumberProvided
	}

	negative := strings.ToLower(words[0]) == wordMinus
	inFraction := false
	divisor := 10.0
	n := 0.0

	for i, w := range words {
		w = strings.ToLower(w)
		if i == 0 && negative {
			continue
		}

		if w == wordComma {
			if inFraction {
				return 0, ErrDoubleComma
			}
			inFraction = true
			continue
		}

		d, ok := digitWords[w]
		if !ok {
			return 0, ErrInvalidNumberLiteral
		}

		if inFraction {
			n += d / divisor
			divisor *= 10
		} else {
			n = n*10 + d
		}
	}

	if negative {
		n = -n
	}

	return n, nil
}
