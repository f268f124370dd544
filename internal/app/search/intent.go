package search

import (
	"regexp"
	"strconv"
	"strings"
)

// RawFilters is a pre-validation filter map. Values are kept as strings so
// that the text-derived and explicit-parameter paths converge on the same
// validator with the same coercion rules.
type RawFilters map[string]string

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// patternRule pairs a compiled pattern with its extraction handler. The
// handler reports whether it actually consumed the match, so a rule can
// decline and let the next one in the category try.
type patternRule struct {
	re      *regexp.Regexp
	guarded bool
	apply   func(groups []string, out RawFilters) bool
}

const (
	intNum   = `([0-9][0-9,]*)`
	floatNum = `([0-9]+(?:\.[0-9]+)?)`
	currency = `(?:inr\s+|rs\.?\s*|₹\s*)?`
)

// Fee patterns. All are guarded: a candidate match is rejected when the
// surrounding tokens show the number belongs to another family ("rated above
// 4", "under 12 weeks").
var feeRules = []patternRule{
	{
		re:      regexp.MustCompile(`(?:under|below|within|less than|cheaper than|max(?:imum)?(?:\s+(?:fee|price|cost|budget))?(?:\s+of)?)\s+` + currency + intNum),
		guarded: true,
		apply: func(g []string, out RawFilters) bool {
			out["max_fee"] = stripCommas(g[1])
			return true
		},
	},
	{
		re:      regexp.MustCompile(`(?:above|over|more than|at least|min(?:imum)?(?:\s+(?:fee|price|cost|budget))?(?:\s+of)?)\s+` + currency + intNum),
		guarded: true,
		apply: func(g []string, out RawFilters) bool {
			out["min_fee"] = stripCommas(g[1])
			return true
		},
	},
	{
		re:      regexp.MustCompile(`between\s+` + currency + intNum + `\s+and\s+` + currency + intNum),
		guarded: true,
		apply: func(g []string, out RawFilters) bool {
			setIntRange(out, "min_fee", "max_fee", stripCommas(g[1]), stripCommas(g[2]))
			return true
		},
	},
	{
		re:      regexp.MustCompile(`(?:exactly|costs?|costing|priced at)\s+` + currency + intNum),
		guarded: true,
		apply: func(g []string, out RawFilters) bool {
			v := stripCommas(g[1])
			out["min_fee"] = v
			out["max_fee"] = v
			return true
		},
	},
}

// Rating patterns carry their own star/rating context, so no guard is needed.
// Values are taken as written; the 0-5 domain check belongs to the validator.
var ratingRules = []patternRule{
	{
		re: regexp.MustCompile(`(?:(?:rated|ratings?)\s+(?:above|over|more than|at least)\s+` + floatNum + `|(?:above|over|more than|at least)\s+` + floatNum + `\s*(?:stars?|ratings?))`),
		apply: func(g []string, out RawFilters) bool {
			out["min_rating"] = firstNonEmpty(g[1], g[2])
			return true
		},
	},
	{
		re: regexp.MustCompile(`(?:(?:rated|ratings?)\s+(?:under|below|less than)\s+` + floatNum + `|(?:under|below|less than)\s+` + floatNum + `\s*(?:stars?|ratings?))`),
		apply: func(g []string, out RawFilters) bool {
			out["max_rating"] = firstNonEmpty(g[1], g[2])
			return true
		},
	},
	{
		re: regexp.MustCompile(`(?:(?:rated|ratings?)\s+between\s+` + floatNum + `\s+and\s+` + floatNum + `|between\s+` + floatNum + `\s+and\s+` + floatNum + `\s*(?:stars?|ratings?))`),
		apply: func(g []string, out RawFilters) bool {
			setFloatRange(out, "min_rating", "max_rating", firstNonEmpty(g[1], g[3]), firstNonEmpty(g[2], g[4]))
			return true
		},
	},
	{
		re: regexp.MustCompile(floatNum + `\s*[-+]?\s*stars?`),
		apply: func(g []string, out RawFilters) bool {
			out["min_rating"] = g[1]
			out["max_rating"] = g[1]
			return true
		},
	},
}

// Credits patterns. Ranged shapes are tried before the bare "N credits" shape
// so "at least 4 credits" is not swallowed as an exact match.
var creditsRules = []patternRule{
	{
		re: regexp.MustCompile(`between\s+([0-9]+)\s+and\s+([0-9]+)\s+credits?`),
		apply: func(g []string, out RawFilters) bool {
			setIntRange(out, "min_credits", "max_credits", g[1], g[2])
			return true
		},
	},
	{
		re: regexp.MustCompile(`(?:at least|minimum(?:\s+of)?|min)\s+([0-9]+)\s+credits?`),
		apply: func(g []string, out RawFilters) bool {
			out["min_credits"] = g[1]
			return true
		},
	},
	{
		re: regexp.MustCompile(`(?:at most|maximum(?:\s+of)?|max|up to)\s+([0-9]+)\s+credits?`),
		apply: func(g []string, out RawFilters) bool {
			out["max_credits"] = g[1]
			return true
		},
	},
	{
		re: regexp.MustCompile(`([0-9]+)\s+credits?`),
		apply: func(g []string, out RawFilters) bool {
			out["min_credits"] = g[1]
			out["max_credits"] = g[1]
			return true
		},
	},
}

// Duration patterns mirror the credits family with a week unit.
var durationRules = []patternRule{
	{
		re: regexp.MustCompile(`between\s+([0-9]+)\s+and\s+([0-9]+)\s+weeks?`),
		apply: func(g []string, out RawFilters) bool {
			setIntRange(out, "min_duration_weeks", "max_duration_weeks", g[1], g[2])
			return true
		},
	},
	{
		re: regexp.MustCompile(`(?:at least|minimum(?:\s+of)?|longer than|more than)\s+([0-9]+)\s+weeks?`),
		apply: func(g []string, out RawFilters) bool {
			out["min_duration_weeks"] = g[1]
			return true
		},
	},
	{
		re: regexp.MustCompile(`(?:at most|maximum(?:\s+of)?|up to|under|below|less than|shorter than)\s+([0-9]+)\s+weeks?`),
		apply: func(g []string, out RawFilters) bool {
			out["max_duration_weeks"] = g[1]
			return true
		},
	},
	{
		re: regexp.MustCompile(`([0-9]+)\s+weeks?`),
		apply: func(g []string, out RawFilters) bool {
			out["min_duration_weeks"] = g[1]
			out["max_duration_weeks"] = g[1]
			return true
		},
	},
}

var yearRule = regexp.MustCompile(`\b(?:year|in)\s+((?:19|20)[0-9]{2})\b`)

// ExtractFilters turns a raw question into a pre-validation filter map.
// Categories are evaluated independently; within a category the first
// matching pattern wins. Extraction never fails — unrecognized phrasing
// simply leaves a key absent.
func ExtractFilters(text string) RawFilters {
	out := RawFilters{}
	lower := strings.ToLower(text)
	tokens := tokenPattern.FindAllString(lower, -1)
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = struct{}{}
	}

	if mode, ok := matchVocab(deliveryModeVocab, tokenSet); ok {
		out["delivery_mode"] = mode
	}
	if level, ok := matchVocab(levelVocab, tokenSet); ok {
		out["level"] = level
	}
	applyRules(feeRules, lower, out)
	applyRules(ratingRules, lower, out)
	applyRules(creditsRules, lower, out)
	if dept, ok := matchVocab(departmentVocab, tokenSet); ok {
		out["department"] = dept
	}
	if m := yearRule.FindStringSubmatch(lower); m != nil {
		out["year_offered"] = m[1]
	}
	applyRules(durationRules, lower, out)

	if q := residue(tokens); q != "" {
		out["q"] = q
	}
	return out
}

// applyRules evaluates one pattern category: first accepted match wins.
func applyRules(rules []patternRule, text string, out RawFilters) {
	for _, rule := range rules {
		var groups []string
		if rule.guarded {
			groups = firstUnclaimedMatch(rule.re, text)
		} else if m := rule.re.FindStringSubmatch(text); m != nil {
			groups = m
		}
		if groups != nil && rule.apply(groups, out) {
			return
		}
	}
}

// matchVocab reports the first family with any keyword present in the text.
func matchVocab(families []vocabFamily, tokenSet map[string]struct{}) (string, bool) {
	for _, f := range families {
		for _, kw := range f.Keywords {
			if _, ok := tokenSet[kw]; ok {
				return f.Value, true
			}
		}
	}
	return "", false
}

// otherFamilyUnits are unit words that claim a number for a non-fee family.
var otherFamilyUnits = map[string]struct{}{
	"star": {}, "stars": {}, "rating": {}, "ratings": {},
	"credit": {}, "credits": {}, "week": {}, "weeks": {},
	"year": {}, "years": {},
}

// firstUnclaimedMatch returns the first occurrence of re whose number is not
// claimed by another family's unit word, judged by the tokens immediately
// around the match.
func firstUnclaimedMatch(re *regexp.Regexp, text string) []string {
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		if numberClaimedElsewhere(text, loc[0], loc[1]) {
			continue
		}
		groups := make([]string, 0, len(loc)/2)
		for i := 0; i < len(loc); i += 2 {
			if loc[i] < 0 {
				groups = append(groups, "")
			} else {
				groups = append(groups, text[loc[i]:loc[i+1]])
			}
		}
		return groups
	}
	return nil
}

func numberClaimedElsewhere(text string, start, end int) bool {
	// Digit fragments (a ".5" left over from a decimal) are skipped so the
	// real unit word behind them is still seen.
	for _, after := range tokenPattern.FindAllString(text[end:], 3) {
		if isDigits(after) {
			continue
		}
		if _, claimed := otherFamilyUnits[after]; claimed {
			return true
		}
		break
	}
	before := tokenPattern.FindAllString(text[:start], -1)
	if len(before) > 0 {
		switch before[len(before)-1] {
		case "rated", "rating", "ratings":
			return true
		}
	}
	return false
}

// residue builds the free-text leftover: stop words, pure digit runs, short
// tokens and vocabulary words are dropped; original token order is kept.
func residue(tokens []string) string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if len(t) < 3 || isDigits(t) {
			continue
		}
		if _, stop := stopWords[t]; stop {
			continue
		}
		if _, vocab := residueVocab[t]; vocab {
			continue
		}
		kept = append(kept, t)
	}
	return strings.Join(kept, " ")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func stripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// setIntRange writes a min/max pair, swapping reversed bounds: a phrase like
// "between 80000 and 40000" denotes an interval, not two ordered parameters.
func setIntRange(out RawFilters, minKey, maxKey, a, b string) {
	av, errA := strconv.ParseInt(a, 10, 64)
	bv, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil && av > bv {
		a, b = b, a
	}
	out[minKey] = a
	out[maxKey] = b
}

func setFloatRange(out RawFilters, minKey, maxKey, a, b string) {
	av, errA := strconv.ParseFloat(a, 64)
	bv, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil && av > bv {
		a, b = b, a
	}
	out[minKey] = a
	out[maxKey] = b
}
