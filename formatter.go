package guidedoc

// ComposeDocument joins a processed document's front matter and cleaned
// markdown into the body persisted by downstream layers. The front matter
// block already ends with a delimiter line, so a single separator yields
// one blank line before the content.
func ComposeDocument(doc *ProcessedDocument) string {
	if doc.FrontMatter == "" {
		return doc.CleanedMarkdown
	}
	return doc.FrontMatter + "\n" + doc.CleanedMarkdown
}
