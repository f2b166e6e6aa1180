package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// TokenSortRatio scores the similarity of two strings on a 0-100 scale,
// insensitive to token order: both inputs are tokenized on whitespace,
// the tokens sorted and rejoined, and the rejoined strings compared by
// normalized edit distance. "jane doe | acme corp" and
// "doe jane | acme corp" therefore score 100.
func TokenSortRatio(a, b string) int {
	sa := sortTokens(a)
	sb := sortTokens(b)
	if sa == sb {
		return 100
	}
	longest := len([]rune(sa))
	if lb := len([]rune(sb)); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(sa, sb)
	return int(math.Round(100 * (1 - float64(dist)/float64(longest))))
}

// sortTokens rebuilds s from its whitespace tokens in sorted order.
func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
