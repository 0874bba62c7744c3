// Package termo parses grant-term documents (termo de outorga) for their
// validity date and maximum payable value. It is the heuristic fallback used
// when structured extraction returns neither field.
package termo

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vertex-gestao/prestacao/internal/normalize"
)

// Analysis carries the best date and value candidates found in a document.
// Raw text stays available even when conversion fails, so callers can show
// what was matched; parsed fields are absent when no candidate existed or
// conversion failed.
type Analysis struct {
	VigenciaRaw    string   `json:"vigenciaRaw"`
	VigenciaISO    string   `json:"vigenciaISO,omitempty"`
	ValorMaximoRaw string   `json:"valorMaximoRaw"`
	ValorMaximo    *float64 `json:"valorMaximo"`
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	dateRe       = regexp.MustCompile(`(\d{4}[/-]\d{1,2}[/-]\d{1,2})|(\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4})`)
	valueRe      = regexp.MustCompile(`(?i)(?:r\$\s*)?\d{1,3}(?:\.\d{3})*(?:,\d{2})`)
)

// Ordered keyword ranks; a hit at rank i contributes (i+1)×2 to the score.
// Each rank lists accent-folded alternatives.
var (
	dateKeywords  = [][]string{{"vigencia"}, {"termino", "fim"}, {"ate"}}
	valueKeywords = [][]string{{"valor", "bolsa", "limite", "total", "montante"}}
)

const contextWindow = 80

type candidate struct {
	text   string
	offset int
	score  int
}

// Analyze scans raw document text for the validity date and ceiling value of
// a grant term. Candidates are scored by keyword proximity; with no keyword
// near any candidate the first-seen baseline of 1 still elects one, a known
// best-effort precision trade-off.
func Analyze(text string) Analysis {
	simplified := whitespaceRe.ReplaceAllString(text, " ")

	chosenDate := pickByKeyword(simplified, dateRe.FindAllStringIndex(simplified, -1), dateKeywords)
	chosenValue := pickByKeyword(simplified, valueRe.FindAllStringIndex(simplified, -1), valueKeywords)

	var analysis Analysis
	if chosenDate != nil {
		analysis.VigenciaRaw = chosenDate.text
		if iso, ok := normalize.ToISODate(chosenDate.text); ok {
			analysis.VigenciaISO = iso
		}
	}
	if chosenValue != nil {
		analysis.ValorMaximoRaw = chosenValue.text
		if v, ok := normalize.ParseMoney(chosenValue.text); ok {
			analysis.ValorMaximo = &v
		}
	}
	return analysis
}

// pickByKeyword scores each match by the keywords present in an 80-character
// context window on each side, then keeps the highest score. Ties go to the
// occurrence appearing later in the document.
func pickByKeyword(simplified string, matches [][]int, keywords [][]string) *candidate {
	var best *candidate
	for _, loc := range matches {
		start := loc[0] - contextWindow
		if start < 0 {
			start = 0
		}
		end := loc[1] + contextWindow
		if end > len(simplified) {
			end = len(simplified)
		}
		context := foldText(simplified[start:end])

		score := 0
		for rank, alts := range keywords {
			for _, kw := range alts {
				if strings.Contains(context, kw) {
					score += (rank + 1) * 2
					break
				}
			}
		}
		if score == 0 {
			score = 1
		}

		if best == nil || score > best.score || (score == best.score && loc[0] > best.offset) {
			best = &candidate{text: simplified[loc[0]:loc[1]], offset: loc[0], score: score}
		}
	}
	return best
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldText lowercases and strips diacritics so "Vigência" matches "vigencia".
func foldText(s string) string {
	folded, _, err := transform.String(diacriticStripper, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}
