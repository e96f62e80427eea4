package processors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLCleaner strips listing markup down to the content worth sending to the
// summarizer persona. Job boards bury the posting under navigation, scripts
// and cookie banners; sending raw markup wastes tokens and confuses the model.
type HTMLCleaner struct {
	// Tags removed wholesale before extraction
	removeTags []string
}

// NewHTMLCleaner creates a new HTML cleaner instance
func NewHTMLCleaner() *HTMLCleaner {
	return &HTMLCleaner{
		removeTags: []string{
			"script", "style", "noscript", "iframe", "object", "embed",
			"form", "input", "button", "select", "textarea",
			"nav", "header", "footer", "aside", "menu",
			"svg", "path", "meta", "link", "base",
		},
	}
}

// ExtractListingContent extracts the text of a job posting from raw markup.
// It prefers containers that look like posting content and falls back to the
// whole body when nothing matches.
func (hc *HTMLCleaner) ExtractListingContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	for _, tag := range hc.removeTags {
		doc.Find(tag).Remove()
	}

	// Common containers for posting content across job boards
	listingSelectors := []string{
		"main", "[role='main']", "#main", ".main",
		".job", ".job-posting", ".job-detail", ".job-description",
		".posting", ".position", ".vacancy", ".opportunity",
		".description", ".details",
		"article", "section[class*='job']", "section[class*='posting']",
		"[data-testid*='job']", "[data-test*='job']",
	}

	var parts []string
	for _, selector := range listingSelectors {
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); len(text) > 50 {
				parts = append(parts, text)
			}
		})
	}

	if len(parts) == 0 {
		if bodyText := strings.TrimSpace(doc.Find("body").Text()); bodyText != "" {
			parts = append(parts, bodyText)
		}
	}

	return hc.cleanExtractedText(strings.Join(parts, "\n\n")), nil
}

var (
	whitespaceRegex = regexp.MustCompile(`[ \t]+`)
	newlineRegex    = regexp.MustCompile(`\n{3,}`)

	// Boilerplate that survives tag stripping on some boards
	noisePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bJavaScript\s+is\s+disabled\b[^.]*\.`),
		regexp.MustCompile(`\bPlease\s+enable\s+JavaScript\b[^.]*\.?`),
		regexp.MustCompile(`\bCookies?\s+are\s+disabled\b[^.]*\.`),
	}
)

func (hc *HTMLCleaner) cleanExtractedText(text string) string {
	text = whitespaceRegex.ReplaceAllString(text, " ")
	text = newlineRegex.ReplaceAllString(text, "\n\n")

	for _, pattern := range noisePatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	return strings.TrimSpace(text)
}

// EstimateTokens returns the approximate token count for the cleaned text
func (hc *HTMLCleaner) EstimateTokens(text string) int {
	// Rough estimation: ~4 characters per token
	return len(text) / 4
}
