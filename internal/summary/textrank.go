package summary

import (
	"fmt"
	"sort"
	"strings"

	textrank "github.com/DavidBelicza/TextRank/v2"
)

// spanishStopWords feeds the TextRank language model; the ranking degrades
// badly when high-frequency function words are scored like content words.
var spanishStopWords = []string{
	"a", "al", "algo", "como", "con", "cuando", "de", "del", "desde",
	"donde", "durante", "el", "él", "ella", "ellas", "ellos", "en",
	"entre", "era", "eran", "es", "esa", "esas", "ese", "eso", "esos",
	"esta", "está", "están", "estas", "este", "esto", "estos", "fue",
	"fueron", "ha", "han", "hasta", "la", "las", "le", "les", "lo",
	"los", "más", "mientras", "muy", "no", "nos", "o", "para", "pero",
	"por", "que", "qué", "se", "ser", "si", "sí", "sin", "sobre", "son",
	"su", "sus", "también", "tan", "tiene", "tienen", "un", "una",
	"uno", "unos", "y", "ya",
}

// extractSummary runs TextRank over Spanish text and returns the top
// sentenceCount sentences by centrality, re-joined in their original order.
func extractSummary(text string, sentenceCount int) (string, error) {
	tr := textrank.NewTextRank()

	language := textrank.NewDefaultLanguage()
	language.SetWords("es", spanishStopWords)
	language.SetActiveLanguage("es")

	tr.Populate(text, language, textrank.NewDefaultRule())
	tr.Ranking(textrank.NewDefaultAlgorithm())

	ranked := textrank.FindSentencesByRelationWeight(tr, sentenceCount)
	if len(ranked) == 0 {
		return "", fmt.Errorf("no sentences extracted")
	}

	// highest-weight first back to source order
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].ID < ranked[j].ID })

	parts := make([]string, 0, len(ranked))
	for _, sentence := range ranked {
		if s := strings.TrimSpace(sentence.Value); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " "), nil
}
