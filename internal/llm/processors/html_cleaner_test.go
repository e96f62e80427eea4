package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractListingContentPrefersMainContainer(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<main>
			<h1>Backend Engineer</h1>
			<p>We are looking for a backend engineer with strong Go experience to build our job matching platform.</p>
		</main>
		<footer>Copyright 2026</footer>
	</body></html>`

	cleaner := NewHTMLCleaner()
	text, err := cleaner.ExtractListingContent(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "strong Go experience")
	assert.NotContains(t, text, "Home | Jobs | About")
	assert.NotContains(t, text, "Copyright 2026")
}

func TestExtractListingContentStripsScripts(t *testing.T) {
	html := `<html><body>
		<script>window.tracker = "analytics";</script>
		<style>.hidden { display: none; }</style>
		<div class="job-description">Senior engineer role covering API design, reliability work and mentoring across the backend group.</div>
	</body></html>`

	cleaner := NewHTMLCleaner()
	text, err := cleaner.ExtractListingContent(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior engineer role")
	assert.NotContains(t, text, "analytics")
	assert.NotContains(t, text, "display: none")
}

func TestExtractListingContentFallsBackToBody(t *testing.T) {
	cleaner := NewHTMLCleaner()
	text, err := cleaner.ExtractListingContent("<html><body><p>short posting</p></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "short posting", text)
}

func TestEstimateTokens(t *testing.T) {
	cleaner := NewHTMLCleaner()
	assert.Equal(t, 25, cleaner.EstimateTokens(string(make([]byte, 100))))
	assert.Equal(t, 0, cleaner.EstimateTokens(""))
}
