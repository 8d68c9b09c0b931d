package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/guidedoc"
	"golang.org/x/net/html"
)

// Ensure Converter implements guidedoc.Converter at compile time.
var _ guidedoc.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert sanitized HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter. An img renderer that emits nothing
// is registered ahead of the standard rules, so image markup cannot reach
// the markdown even when an image slips past sanitization.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	conv.Register.RendererFor("img", converter.TagTypeInline, dropNode, converter.PriorityStandard+1)
	return &Converter{conv: conv}
}

func dropNode(_ converter.Context, _ converter.Writer, _ *html.Node) converter.RenderStatus {
	return converter.RenderSuccess
}

// Convert transforms sanitized HTML into Markdown. Blank input yields an
// empty string with no error; downstream scoring flags the empty result
// instead of the pipeline faulting.
func (c *Converter) Convert(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(rawHTML)
	if err != nil {
		return "", err
	}

	return result, nil
}
