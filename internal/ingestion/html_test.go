package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBoard(t *testing.T) {
	tests := []struct {
		url  string
		want Board
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", BoardGreenhouse},
		{"https://jobs.lever.co/acme/abc", BoardLever},
		{"https://acme.wd5.myworkdayjobs.com/en-US/careers", BoardWorkday},
		{"https://careers.acme.com/jobs/1", BoardUnknown},
		{"://broken", BoardUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectBoard(tt.url))
		})
	}
}

func TestExtractText_PrefersJobDescription(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<div class="sidebar">Sidebar junk</div>
			<div class="job-description">
				<h2>Requirements</h2>
				<p>5 years experience in Go</p>
			</div>
			<form>Apply now</form>
			<footer>Footer</footer>
		</body>
	</html>`

	text, err := ExtractText(html, ContentSelectors(BoardUnknown), NoiseSelectors(BoardUnknown))
	require.NoError(t, err)
	assert.Equal(t, "Requirements\n5 years experience in Go", text)
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	html := `<html><body><div>Some content here.</div><script>var x = 1;</script></body></html>`

	text, err := ExtractText(html, ContentSelectors(BoardUnknown), NoiseSelectors(BoardUnknown))
	require.NoError(t, err)
	assert.Equal(t, "Some content here.", text)
}

func TestExtractText_BoardSpecific(t *testing.T) {
	html := `
	<html><body>
		<div class="job__description body"><p>Build distributed systems</p></div>
		<div class="application--wrapper">Upload resume</div>
	</body></html>`

	text, err := ExtractText(html, ContentSelectors(BoardGreenhouse), NoiseSelectors(BoardGreenhouse))
	require.NoError(t, err)
	assert.Equal(t, "Build distributed systems", text)
}

func TestNoiseSelectors_DoNotShareBackingArray(t *testing.T) {
	a := NoiseSelectors(BoardLever)
	b := NoiseSelectors(BoardWorkday)
	assert.Contains(t, a, ".posting-apply")
	assert.NotContains(t, b, ".posting-apply")
}
