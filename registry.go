package cssinspect

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultRootFontSize is the assumed root font size for resolving rem
// lengths to absolute pixels.
const DefaultRootFontSize = 16.0

// normalizeCacheSize bounds the memo cache for normalizing operator-entered
// values. Token values themselves are normalized once at build time.
const normalizeCacheSize = 512

// Registry owns the full token set, partitioned by category, plus the
// reverse index from normalized concrete values back to token names.
//
// The registry is built once at startup and never mutated afterwards; pass
// it by reference to every consumer. The reverse-index collision policy is
// last-inserted-wins, with CategoryOrder (then declaration order) deciding
// insertion order. This makes the winner for ambiguous values (e.g. two
// tokens authored as the same color) a deterministic construction-order
// parameter.
type Registry struct {
	rootFontSize float64

	byCategory map[Category][]Token
	byName     map[string]Token
	reverse    map[string]string // normalized value -> token name

	memo *lru.Cache[string, string]
}

// RegistryOption configures registry construction.
type RegistryOption func(*Registry)

// WithRootFontSize overrides the root font size (in px) used to resolve
// rem lengths to their absolute form.
func WithRootFontSize(px float64) RegistryOption {
	return func(r *Registry) {
		r.rootFontSize = px
	}
}

// NewRegistry builds a registry from the given tokens and constructs the
// reverse index. A malformed token table is a programming error; there are
// no runtime failure modes here.
func NewRegistry(tokens []Token, opts ...RegistryOption) *Registry {
	r := &Registry{
		rootFontSize: DefaultRootFontSize,
		byCategory:   make(map[Category][]Token),
		byName:       make(map[string]Token),
		reverse:      make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.memo, _ = lru.New[string, string](normalizeCacheSize)

	for _, tok := range tokens {
		r.byCategory[tok.Category] = append(r.byCategory[tok.Category], tok)
		r.byName[tok.Name] = tok
	}

	r.buildIndex()
	return r
}

// buildIndex inserts every token's normalized concrete forms into the
// reverse index. For color tokens the host-canonical rgb() form is indexed
// alongside the authored form; for rem lengths the resolved px form is
// indexed too. Categories are walked in CategoryOrder so collisions resolve
// deterministically (later insert wins).
func (r *Registry) buildIndex() {
	for _, cat := range CategoryOrder {
		for _, tok := range r.byCategory[cat] {
			plain := canonicalize(tok.Raw)
			r.reverse[plain] = tok.Name

			if full := r.Normalize(tok.Raw); full != plain {
				r.reverse[full] = tok.Name
			}
		}
	}
}

// ReverseLookup returns the token name whose normalized form exactly equals
// the given value, after normalizing the input the same way the index was
// built. A miss is the expected steady state for untokenized values, not an
// error.
func (r *Registry) ReverseLookup(value string) (string, bool) {
	name, ok := r.reverse[r.Normalize(value)]
	return name, ok
}

// TokenByName returns the token with the given name.
func (r *Registry) TokenByName(name string) (Token, bool) {
	tok, ok := r.byName[name]
	return tok, ok
}

// TokensInCategory returns the tokens of a category in declaration order.
// Callers that want alphabetical display re-sort a copy themselves.
func (r *Registry) TokensInCategory(cat Category) []Token {
	return r.byCategory[cat]
}

// Len reports the total number of tokens.
func (r *Registry) Len() int {
	return len(r.byName)
}

// Normalize converts a value into the canonical form used as reverse-index
// key: whitespace and case folded, colors in rgb()/rgba() notation, rem
// lengths resolved to px. Results for non-token values are memoized since
// the presenter normalizes every computed value it reads.
func (r *Registry) Normalize(value string) string {
	if cached, ok := r.memo.Get(value); ok {
		return cached
	}

	norm := canonicalize(value)
	if rgb, ok := hexToRGB(norm); ok {
		norm = rgb
	} else if px, ok := r.remToPx(norm); ok {
		norm = px
	}

	r.memo.Add(value, norm)
	return norm
}

var remPattern = regexp.MustCompile(`^(\d*\.?\d+)rem$`)

// remToPx resolves a single rem length to its absolute pixel form.
func (r *Registry) remToPx(value string) (string, bool) {
	m := remPattern.FindStringSubmatch(value)
	if m == nil {
		return "", false
	}
	rem, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatFloat(rem*r.rootFontSize, 'f', -1, 64) + "px", true
}

// hexToRGB converts a hex color literal into the canonical computed form
// reported by the host ("rgb(124, 58, 237)").
func hexToRGB(value string) (string, bool) {
	if !strings.HasPrefix(value, "#") {
		return "", false
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return "", false
	}
	cr, cg, cb := c.RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", cr, cg, cb), true
}

// canonicalize folds whitespace, lowercases, and fixes comma spacing so that
// authored and computed spellings of the same value compare equal.
func canonicalize(value string) string {
	v := strings.Join(strings.Fields(value), " ")
	v = strings.ToLower(v)
	v = strings.ReplaceAll(v, " ,", ",")
	v = strings.ReplaceAll(v, ", ", ",")
	v = strings.ReplaceAll(v, ",", ", ")
	if v == "0" {
		v = "0px"
	}
	return v
}
