package taxonomy

import (
	"strconv"
	"strings"
)

// PriorityKind is the category a priority marker belongs to: the four fixed
// corpus-curated tiers, or the word-frequency bucket scheme.
type PriorityKind uint8

const (
	PriorityIchi PriorityKind = iota
	PriorityNews
	PriorityGai
	PrioritySpec
	PriorityWordFrequency
)

// Priority is a parsed priority marker such as "ichi1" or "nf12": a kind plus
// its numeric level.
type Priority struct {
	Kind  PriorityKind
	Level int
}

var priorityPrefixes = map[string]PriorityKind{
	"ichi": PriorityIchi,
	"news": PriorityNews,
	"gai":  PriorityGai,
	"spec": PrioritySpec,
	"nf":   PriorityWordFrequency,
}

// ParsePriority parses a priority tag string such as "nf12" or "ichi1" into
// its kind and level. It returns false for anything that doesn't match one
// of the five known prefixes followed by a decimal level.
func ParsePriority(tag string) (Priority, bool) {
	for _, prefix := range []string{"ichi", "news", "gai", "spec", "nf"} {
		if rest, ok := strings.CutPrefix(tag, prefix); ok && rest != "" {
			level, err := strconv.Atoi(rest)
			if err != nil {
				continue
			}
			return Priority{Kind: priorityPrefixes[prefix], Level: level}, true
		}
	}
	return Priority{}, false
}

// rangeFn implements spec's range(M) = 1 + (M - min(level-1, M)) / M.
func rangeFn(m float64, level int) float64 {
	capped := float64(level - 1)
	if capped > m {
		capped = m
	}
	return 1 + (m-capped)/m
}

// Weight computes this priority's contribution to the ranking formula's
// `priority` term, in [1.0, ~4.4] as specified.
func (p Priority) Weight() float64 {
	switch p.Kind {
	case PriorityIchi:
		return rangeFn(2.0, p.Level) * 2.0
	case PriorityNews:
		return rangeFn(2.0, p.Level) * 1.0
	case PriorityGai:
		return rangeFn(2.0, p.Level) * 1.0
	case PrioritySpec:
		return rangeFn(2.0, p.Level) * 2.2
	case PriorityWordFrequency:
		return rangeFn(50.0, p.Level) * 2.0
	default:
		return 1.0
	}
}
