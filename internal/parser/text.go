package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"\u00a0", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#34;", `"`,
	"&#39;", "'",
)

// DecodeEntities decodes the fixed entity set used by the legacy site and trims the result.
func DecodeEntities(value string) string {
	return strings.TrimSpace(entityReplacer.Replace(value))
}

var (
	breakTagRegex      = regexp.MustCompile(`(?i)<br\s*/?\s*>`)
	listItemOpenRegex  = regexp.MustCompile(`(?i)<li(\s[^>]*)?>`)
	listItemCloseRegex = regexp.MustCompile(`(?i)</li\s*>`)
	paragraphOpenRegex = regexp.MustCompile(`(?i)<p(\s[^>]*)?>`)
	paragraphEndRegex  = regexp.MustCompile(`(?i)</p\s*>`)
	anyTagRegex        = regexp.MustCompile(`<[^>]+>`)
	blankLineRegex     = regexp.MustCompile(`\n[ \t\r]*\n`)
)

// Paragraphs converts an HTML fragment into plain-text paragraphs. Each paragraph is its
// non-empty trimmed lines joined by "\n"; list items become "- " lines.
func Paragraphs(html string) []string {
	if html == "" {
		return nil
	}

	text := breakTagRegex.ReplaceAllString(html, "\n")
	text = listItemOpenRegex.ReplaceAllString(text, "\n- ")
	text = listItemCloseRegex.ReplaceAllString(text, "")
	text = paragraphOpenRegex.ReplaceAllString(text, "")
	text = paragraphEndRegex.ReplaceAllString(text, "\n\n")
	text = anyTagRegex.ReplaceAllString(text, "")
	text = entityReplacer.Replace(text)

	var paragraphs []string
	for _, chunk := range blankLineRegex.Split(text, -1) {
		if lines := nonEmptyLines(chunk); len(lines) > 0 {
			paragraphs = append(paragraphs, strings.Join(lines, "\n"))
		}
	}
	return paragraphs
}

// StripHTML reduces an HTML fragment to its non-empty trimmed lines joined by "\n".
func StripHTML(html string) string {
	return strings.Join(Paragraphs(html), "\n")
}

// FirstParagraph is the first non-empty paragraph of an HTML fragment, or "".
func FirstParagraph(html string) string {
	if paragraphs := Paragraphs(html); len(paragraphs) > 0 {
		return paragraphs[0]
	}
	return ""
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

var nonSlugRunRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a lowercase, URL-safe slug. Slugify(Slugify(x)) == Slugify(x).
func Slugify(value string) string {
	lowered := strings.ToLower(value)
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), lowered)
	if err != nil {
		stripped = lowered
	}
	return strings.Trim(nonSlugRunRegex.ReplaceAllString(stripped, "-"), "-")
}

var priceNumberRegex = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// ParsePrice takes the first decimal number from free text after dropping thousands
// separators and whitespace. It returns nil when there is no number.
func ParsePrice(value string) *decimal.Decimal {
	compact := strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)

	match := priceNumberRegex.FindString(compact)
	if match == "" {
		return nil
	}

	price, err := decimal.NewFromString(match)
	if err != nil {
		return nil
	}
	return &price
}
