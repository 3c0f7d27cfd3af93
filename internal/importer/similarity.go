package importer

import (
	"math"
	"slices"
	"strings"
)

// Weights of the weighted ratio. Token ratios are scaled down slightly so an
// identical spelling outranks a reordering; partial ratios are scaled down
// when the strings differ a lot in length.
const (
	unbaseScale      = 0.95
	partialScale     = 0.9
	longPartialScale = 0.6
)

// key holds the comparison forms of a label.
type key struct {
	plain  string   // Normalize(label)
	text   []rune   // word tokens joined by single spaces
	tokens []string // word tokens in order
}

func keyOf(label string) key {
	tokens := Tokens(label)
	return key{
		plain:  Normalize(label),
		text:   []rune(strings.Join(tokens, " ")),
		tokens: tokens,
	}
}

// Score compares a header against a candidate label on a 0-100 scale.
//
// Labels that normalize to the same key score 100. Otherwise the score is a
// weighted ratio over the space-separated word tokens: the better of the
// plain indel ratio and, depending on the length ratio of the two strings,
// either the token sort/set ratios or the scaled partial ratios. A header
// that extends a label with qualifier words ("Nome Completo" against
// "nome") therefore scores 90. An empty normalized form scores 0.
func Score(header, candidate string) int {
	return score(keyOf(header), keyOf(candidate))
}

func score(h, c key) int {
	if h.plain == "" || c.plain == "" {
		return 0
	}
	if h.plain == c.plain {
		return 100
	}
	return int(math.Round(weightedRatio(h, c)))
}

func weightedRatio(a, b key) float64 {
	la, lb := len(a.text), len(b.text)
	if la == 0 || lb == 0 {
		return 0
	}
	lenRatio := float64(max(la, lb)) / float64(min(la, lb))

	best := indelRatio(a.text, b.text)
	if lenRatio < 1.5 {
		tokens := max(tokenSortRatio(a.tokens, b.tokens), tokenSetRatio(a.tokens, b.tokens))
		return max(best, tokens*unbaseScale)
	}

	scale := partialScale
	if lenRatio >= 8 {
		scale = longPartialScale
	}
	best = max(best, partialRatio(a.text, b.text)*scale)
	return max(best, partialTokenRatio(a.tokens, b.tokens)*unbaseScale*scale)
}

// indelRatio is 100 * (1 - d / (len(a)+len(b))) where d is the insertion and
// deletion distance, so a substitution costs two. Two empty inputs are equal.
func indelRatio(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	return 100 * float64(2*lcsLength(a, b)) / float64(total)
}

// lcsLength returns the length of the longest common subsequence.
func lcsLength(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for _, ra := range a {
		for j, rb := range b {
			switch {
			case ra == rb:
				cur[j+1] = prev[j] + 1
			case prev[j+1] >= cur[j]:
				cur[j+1] = prev[j+1]
			default:
				cur[j+1] = cur[j]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// partialRatio is the best indelRatio of the shorter string against any
// window of the longer one, including windows cut off at either end.
func partialRatio(a, b []rune) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		if len(b) == 0 {
			return 100
		}
		return 0
	}

	best := partialWindows(a, b)
	if best < 100 && len(a) == len(b) {
		best = max(best, partialWindows(b, a))
	}
	return best
}

func partialWindows(short, long []rune) float64 {
	m, n := len(short), len(long)
	best := 0.0
	consider := func(w []rune) bool {
		best = max(best, indelRatio(short, w))
		return best == 100
	}

	for i := 0; i+m <= n; i++ {
		if consider(long[i : i+m]) {
			return best
		}
	}
	for k := 1; k < m && k <= n; k++ {
		if consider(long[:k]) || consider(long[n-k:]) {
			return best
		}
	}
	return best
}

func sortedJoin(tokens []string) []rune {
	s := slices.Clone(tokens)
	slices.Sort(s)
	return []rune(strings.Join(s, " "))
}

// tokenSortRatio compares the tokens sorted alphabetically.
func tokenSortRatio(a, b []string) float64 {
	return indelRatio(sortedJoin(a), sortedJoin(b))
}

// tokenSets splits two token lists into their sorted common tokens and the
// sorted tokens unique to each side. Duplicates are dropped.
func tokenSets(a, b []string) (common, onlyA, onlyB []string) {
	inA := make(map[string]bool, len(a))
	for _, t := range a {
		inA[t] = true
	}
	inB := make(map[string]bool, len(b))
	for _, t := range b {
		inB[t] = true
	}
	for t := range inA {
		if inB[t] {
			common = append(common, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range inB {
		if !inA[t] {
			onlyB = append(onlyB, t)
		}
	}
	slices.Sort(common)
	slices.Sort(onlyA)
	slices.Sort(onlyB)
	return common, onlyA, onlyB
}

// tokenSetRatio compares the common tokens against the common tokens plus
// each side's remainder, so extra words on one side do not count against it.
func tokenSetRatio(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	common, onlyA, onlyB := tokenSets(a, b)
	if len(common) > 0 && (len(onlyA) == 0 || len(onlyB) == 0) {
		return 100
	}

	sect := strings.Join(common, " ")
	withA := strings.TrimSpace(sect + " " + strings.Join(onlyA, " "))
	withB := strings.TrimSpace(sect + " " + strings.Join(onlyB, " "))

	best := indelRatio([]rune(withA), []rune(withB))
	if sect != "" {
		best = max(best,
			indelRatio([]rune(sect), []rune(withA)),
			indelRatio([]rune(sect), []rune(withB)))
	}
	return best
}

// partialTokenRatio is 100 when the two sides share a token, otherwise the
// partial ratio of the sorted tokens.
func partialTokenRatio(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	common, onlyA, onlyB := tokenSets(a, b)
	if len(common) > 0 {
		return 100
	}

	best := partialRatio(sortedJoin(a), sortedJoin(b))
	if len(onlyA) == len(a) && len(onlyB) == len(b) {
		return best
	}
	return max(best, partialRatio([]rune(strings.Join(onlyA, " ")), []rune(strings.Join(onlyB, " "))))
}
