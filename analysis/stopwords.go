package analysis

// defaultStopwords is the canonical, frequency-ranked stop-word list
// shipped with this module. It plays the role the Python original's
// generated "stopwords.list" file played (see stopwords.py in
// original_source): NoStopWords(k) drops any token among the first k
// entries. The ordering here follows the same most-frequent-first idea,
// seeded from the teacher's own englishStopwords set (analyzer.go).
var defaultStopwords = []string{
	"the", "of", "to", "a", "and", "in", "said", "for", "it", "on",
	"that", "is", "was", "with", "as", "at", "by", "from", "be", "has",
	"are", "its", "an", "he", "will", "have", "but", "not", "this", "which",
	"their", "or", "were", "pct", "year", "they", "been", "than", "also", "would",
	"last", "billion", "two", "mln", "we", "i", "one", "about", "if", "had",
	"dlrs", "company", "march", "april", "may", "june", "new", "first", "could", "more",
	"u", "s", "market", "trade", "some", "after", "up", "all", "no", "his",
	"out", "who", "there", "expected", "down", "other", "over", "between",
	"president", "while", "it's", "added", "including", "because", "those",
	"told", "what", "only", "when", "now", "most", "can", "three", "group",
	"government", "state", "should", "prices", "year's", "february", "shares",
	"rate", "ec", "earlier", "any", "among", "still", "january", "before",
	"foreign", "analysts", "money", "week", "national", "such", "economic",
	"report", "since", "under", "both", "into", "four", "officials", "against",
	"statement", "further", "five", "our", "second", "during", "current",
	"per", "december", "agreement", "international", "banks", "major",
	"however", "where", "these", "meeting", "bank", "oil", "official",
	"total", "next", "end", "if", "million", "export", "chairman", "trading",
	"rise", "plan", "talks", "her", "she", "sources", "current", "then",
	"issue", "october", "november", "july", "august", "september", "around",
	"net", "quarter", "through", "well", "how", "so", "made", "make",
	"sell", "buy", "today", "here", "already", "announced", "continue",
	"later", "very", "same", "each", "being", "just", "like", "much",
	"many", "does", "do", "did", "yet", "even", "off", "set", "put",
	"take", "him", "them", "its", "our", "your", "yours", "myself",
	"itself", "themselves", "ourselves", "yourself", "yourselves", "me",
	"my", "mine", "us", "you",
}

// Stopwords returns the first n entries of the canonical stop-word list
// (blank lines are already stripped in the embedded list). Used by
// NoStopWords when no stop-word file path is given.
func Stopwords(n int) []string {
	if n > len(defaultStopwords) {
		n = len(defaultStopwords)
	}
	out := make([]string, n)
	copy(out, defaultStopwords[:n])
	return out
}
