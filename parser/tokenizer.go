package parser

import (
	"sort"
	"strings"
	"unicode"
)

// Prefix marks the start of an argument value, e.g. "n/".
type Prefix string

// Recognised prefixes.
const (
	PrefixName      Prefix = "n/"
	PrefixPhone     Prefix = "p/"
	PrefixEmail     Prefix = "e/"
	PrefixDiners    Prefix = "d/"
	PrefixDateTime  Prefix = "t/"
	PrefixOccasion  Prefix = "o/"
	PrefixStartDate Prefix = "sd/"
	PrefixEndDate   Prefix = "ed/"
)

// ArgumentMultimap holds the values found for each prefix, in input order,
// plus the preamble preceding the first prefix.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// starts the string or follows whitespace. Values are trimmed.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	var positions []prefixPosition
	for _, p := range prefixes {
		positions = append(positions, findPrefixPositions(args, p)...)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	m := ArgumentMultimap{values: make(map[Prefix][]string)}
	if len(positions) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m
	}

	m.preamble = strings.TrimSpace(args[:positions[0].start])
	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : end])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

func findPrefixPositions(args string, p Prefix) []prefixPosition {
	var out []prefixPosition
	from := 0
	for {
		idx := strings.Index(args[from:], string(p))
		if idx < 0 {
			return out
		}
		start := from + idx
		if start == 0 || unicode.IsSpace(rune(args[start-1])) {
			out = append(out, prefixPosition{prefix: p, start: start})
		}
		from = start + 1
	}
}

// Preamble returns the trimmed text before the first prefix.
func (m ArgumentMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for p.
func (m ArgumentMultimap) Value(p Prefix) (string, bool) {
	vals := m.values[p]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// AllValues returns every value given for p, in input order.
func (m ArgumentMultimap) AllValues(p Prefix) []string {
	vals := m.values[p]
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

// Has reports whether p appeared at least once.
func (m ArgumentMultimap) Has(p Prefix) bool { return len(m.values[p]) > 0 }

// HasAll reports whether every prefix appeared.
func (m ArgumentMultimap) HasAll(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if !m.Has(p) {
			return false
		}
	}
	return true
}

// VerifyNoDuplicatePrefixesFor fails if any of the single-valued prefixes
// appeared more than once. The error names every offender in the order given.
func (m ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	var dups []string
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			dups = append(dups, string(p))
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return parseErrorf(MessageDuplicateFields, strings.Join(dups, " "))
}
