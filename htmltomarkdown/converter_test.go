package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/listex"
	"github.com/fwojciec/listex/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements listex.Converter at compile time.
var _ listex.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraphs and headings", func(t *testing.T) {
		t.Parallel()

		html := `<h1>123 Main St</h1><p>Charming colonial with an updated kitchen.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# 123 Main St")
		assert.Contains(t, md, "Charming colonial with an updated kitchen.")
	})

	t.Run("preserves fact tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<tr><th>Beds</th><th>Baths</th></tr>
<tr><td>4</td><td>2.5</td></tr>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Beds")
		assert.Contains(t, md, "2.5")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>See the <a href="https://example.com/tour">virtual tour</a>.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[virtual tour](https://example.com/tour)")
	})

	t.Run("empty input is an error", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, listex.EINVALID, listex.ErrorCode(err))
	})
}
