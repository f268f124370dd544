package search

// Vocabulary tables for the intent extractor. These are data, not control
// flow: new departments or keyword spellings are added here without touching
// the extraction algorithm.

// vocabFamily maps a canonical value to the surface-form keywords that denote
// it. Within a category the first family with any keyword present wins.
type vocabFamily struct {
	Value    string
	Keywords []string
}

// deliveryModeVocab recognizes delivery modes. Keywords are single tokens;
// matching is against the tokenized text, never substrings, so "remote" does
// not fire on "remotely" but "on-campus" still matches via its "campus" token.
var deliveryModeVocab = []vocabFamily{
	{Value: "online", Keywords: []string{"online", "virtual", "remote", "distance"}},
	{Value: "offline", Keywords: []string{"offline", "campus", "classroom", "in-person", "person"}},
	{Value: "hybrid", Keywords: []string{"hybrid", "blended"}},
}

// levelVocab recognizes course levels, covering abbreviations and degree names.
var levelVocab = []vocabFamily{
	{Value: "UG", Keywords: []string{"ug", "undergraduate", "undergrad", "bachelor", "bachelors", "btech", "bsc", "bba", "bcom"}},
	{Value: "PG", Keywords: []string{"pg", "postgraduate", "postgrad", "masters", "master", "msc", "mba", "mtech", "mcom"}},
}

// departmentVocab recognizes catalog departments. Declared order is the
// tie-break when a question mentions terms from several departments.
var departmentVocab = []vocabFamily{
	{Value: "Computer Science", Keywords: []string{"computer", "computing", "software"}},
	{Value: "Data Science", Keywords: []string{"data", "analytics"}},
	{Value: "Management", Keywords: []string{"management", "business"}},
	{Value: "Engineering", Keywords: []string{"engineering", "mechanical", "electrical", "civil"}},
	{Value: "Design", Keywords: []string{"design", "designing"}},
	{Value: "Finance", Keywords: []string{"finance", "accounting", "banking"}},
	{Value: "Marketing", Keywords: []string{"marketing"}},
	{Value: "Arts", Keywords: []string{"arts", "humanities"}},
}

// stopWords are question filler dropped from the free-text residue. Range and
// comparison words live here too since the pattern families consume them.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "i": {}, "im": {}, "me": {}, "my": {},
	"we": {}, "our": {}, "you": {}, "your": {}, "it": {}, "its": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"do": {}, "does": {}, "did": {}, "have": {}, "has": {}, "had": {},
	"will": {}, "would": {}, "can": {}, "could": {}, "should": {},
	"to": {}, "of": {}, "in": {}, "on": {}, "at": {}, "by": {}, "for": {},
	"with": {}, "from": {}, "about": {}, "and": {}, "or": {}, "not": {},
	"no": {}, "any": {}, "all": {}, "some": {}, "that": {}, "this": {},
	"these": {}, "those": {}, "which": {}, "what": {}, "than": {},
	"under": {}, "below": {}, "above": {}, "over": {}, "between": {},
	"within": {}, "least": {}, "most": {}, "max": {}, "maximum": {},
	"min": {}, "minimum": {}, "up": {}, "exactly": {}, "less": {},
	"more": {}, "cheaper": {}, "longer": {}, "shorter": {},
	"find": {}, "show": {}, "give": {}, "get": {}, "list": {}, "search": {},
	"want": {}, "need": {}, "looking": {}, "suggest": {}, "recommend": {},
	"please": {},
}

// genericTerms are domain words already consumed by a pattern family; keeping
// them in the residue would make the partial-name match fight the structured
// filters. Note the singular "rating": the plural survives into the residue,
// matching the long-observed catalog behavior that callers depend on.
var genericTerms = map[string]struct{}{
	"course": {}, "courses": {}, "program": {}, "programs": {},
	"fee": {}, "fees": {}, "price": {}, "prices": {}, "cost": {},
	"costs": {}, "costing": {}, "budget": {}, "inr": {}, "rs": {},
	"rupee": {}, "rupees": {},
	"rating": {}, "rated": {}, "star": {}, "stars": {},
	"credit": {}, "credits": {},
	"week": {}, "weeks": {}, "duration": {},
	"year": {}, "years": {},
	"level": {}, "degree": {}, "department": {}, "mode": {},
}

// residueVocab is the union of every keyword table above; any token found in
// it is excluded from the free-text residue.
var residueVocab = buildResidueVocab()

func buildResidueVocab() map[string]struct{} {
	vocab := make(map[string]struct{}, len(genericTerms)+64)
	for t := range genericTerms {
		vocab[t] = struct{}{}
	}
	for _, families := range [][]vocabFamily{deliveryModeVocab, levelVocab, departmentVocab} {
		for _, f := range families {
			for _, kw := range f.Keywords {
				vocab[kw] = struct{}{}
			}
		}
	}
	return vocab
}
