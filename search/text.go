package search

// Stop words dropped before the forgiving search passes: pronouns,
// prepositions, conjunctions, articles and other function words.
var stopWords = map[string]bool{
	// pronouns
	"i": true, "you": true, "he": true, "she": true, "it": true, "we": true,
	"they": true, "me": true, "him": true, "her": true, "us": true,
	"them": true, "my": true, "your": true, "his": true, "its": true,
	"our": true, "their": true, "mine": true, "yours": true, "hers": true,
	"ours": true, "theirs": true, "myself": true, "yourself": true,
	"himself": true, "herself": true, "itself": true, "ourselves": true,
	"themselves": true, "yourselves": true, "this": true, "that": true,
	"these": true, "those": true, "who": true, "whom": true, "which": true,
	"what": true,
	// prepositions
	"about": true, "across": true, "after": true, "against": true,
	"along": true, "among": true, "around": true, "as": true, "at": true,
	"before": true, "behind": true, "beneath": true, "beside": true,
	"between": true, "beyond": true, "by": true, "despite": true,
	"during": true, "except": true, "for": true, "from": true, "in": true,
	"inside": true, "into": true, "near": true, "of": true, "on": true,
	"onto": true, "out": true, "outside": true, "over": true, "since": true,
	"than": true, "through": true, "throughout": true, "to": true,
	"toward": true, "under": true, "until": true, "upon": true, "via": true,
	"with": true, "within": true, "without": true,
	// conjunctions and articles
	"and": true, "nor": true, "but": true, "or": true, "yet": true,
	"so": true, "a": true, "an": true, "the": true,
	// other function words
	"is": true, "are": true, "was": true, "were": true, "if": true,
	"will": true, "would": true, "be": true, "being": true, "one": true,
	"have": true, "has": true, "had": true, "can": true, "more": true,
	"then": true, "do": true, "don't": true, "first": true, "even": true,
	"there": true, "only": true, "also": true, "such": true, "each": true,
	"because": true, "however": true, "very": true, "must": true, "due": true,
	"not": true,
}

// Predeterminers are dropped too, unless the preceding word marks them
// as meaningful ("calling all ...").
var predeterminers = map[string]bool{"all": true, "both": true}

var predeterminerKeepAfter = map[string]bool{"calling": true}

// filterStopWords removes function words from terms, keeping order.
// The returned slice is empty when every term is a stop word.
func filterStopWords(terms []string) []string {
	kept := make([]string, 0, len(terms))
	for i, term := range terms {
		if stopWords[term] {
			continue
		}
		if predeterminers[term] && !(i > 0 && predeterminerKeepAfter[terms[i-1]]) {
			continue
		}
		kept = append(kept, term)
	}
	return kept
}
