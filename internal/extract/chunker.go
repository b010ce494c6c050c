package extract

import "strings"

// defaultChunkSize is the per-chunk character budget sent to the model.
const defaultChunkSize = 5000

// ChunkText splits document text into chunks bounded by maxChars,
// preferring paragraph boundaries. A paragraph is never split across
// chunks unless it alone exceeds the budget, in which case it is placed
// on its own and truncation is left to the model's context handling.
func ChunkText(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = defaultChunkSize
	}

	paragraphs := strings.Split(text, "\n\n")
	var chunks []string
	var current strings.Builder

	for _, para := range paragraphs {
		if current.Len()+len(para)+2 <= maxChars {
			current.WriteString(para)
			current.WriteString("\n\n")
			continue
		}
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(para)
		current.WriteString("\n\n")
	}

	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	if len(chunks) == 0 {
		if len(text) > maxChars {
			text = text[:maxChars]
		}
		return []string{text}
	}

	return chunks
}
