package services

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type LocationExtractorInterface interface {
	ExtractLocations(sentence string) []string
}

// connector separates two stops in an itinerary sentence. Word connectors
// only match on word boundaries.
type connector struct {
	token string
	word  bool
}

var connectorVocabulary = []connector{
	{token: "first", word: true},
	{token: "then", word: true},
	{token: ","},
	{token: "->"},
	{token: "→"},
	{token: "and then"},
}

var fillerPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`^(i\s+)?go\s+to\s+`),
	regexp.MustCompile(`^visit\s+`),
	regexp.MustCompile(`^the\s+`),
}

// Unanchored on purpose: "cluj in the morning" yields city "the morning".
var cityPattern = regexp.MustCompile(`in\s+([a-z\s]+)`)

func compileConnectors(vocabulary []connector) *regexp.Regexp {
	alternatives := make([]string, 0, len(vocabulary))
	for _, c := range vocabulary {
		quoted := regexp.QuoteMeta(c.token)
		if c.word {
			quoted = `\b` + quoted + `\b`
		}
		alternatives = append(alternatives, quoted)
	}
	return regexp.MustCompile(strings.Join(alternatives, "|"))
}

type LocationExtractor struct {
	splitter *regexp.Regexp
}

func NewLocationExtractor() LocationExtractorInterface {
	return &LocationExtractor{
		splitter: compileConnectors(connectorVocabulary),
	}
}

func (e *LocationExtractor) ExtractLocations(sentence string) []string {
	lower := strings.ToLower(strings.TrimSpace(sentence))
	locations := []string{}
	if lower == "" {
		return locations
	}

	city := ""
	if loc := cityPattern.FindStringSubmatchIndex(lower); loc != nil {
		city = strings.TrimSpace(lower[loc[2]:loc[3]])
		if isTrailingQualifier(lower, loc[0], loc[1]) {
			lower = lower[:loc[0]]
		}
	}

	// Casers carry state, so each call gets its own.
	title := cases.Title(language.Und)
	for _, segment := range e.splitter.Split(lower, -1) {
		segment = stripFillers(segment)
		if segment == "" {
			continue
		}
		if city != "" && !strings.Contains(segment, city) {
			locations = append(locations, title.String(segment)+", "+title.String(city))
			continue
		}
		locations = append(locations, title.String(segment))
	}
	return locations
}

// isTrailingQualifier reports whether the city match is a whole "in ..."
// phrase closing the sentence. Matches inside words like "berlin" or "din"
// stay in place.
func isTrailingQualifier(sentence string, start, end int) bool {
	if end != len(sentence) {
		return false
	}
	if start == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(sentence[:start])
	return !unicode.IsLetter(prev) && !unicode.IsDigit(prev)
}

// stripFillers removes leading "go to", "visit" and "the" in any order.
func stripFillers(segment string) string {
	segment = strings.TrimSpace(segment)
	for {
		stripped := false
		for _, re := range fillerPrefixes {
			if loc := re.FindStringIndex(segment); loc != nil {
				segment = strings.TrimSpace(segment[loc[1]:])
				stripped = true
			}
		}
		if !stripped {
			return segment
		}
	}
}
