package chat

import (
	"fmt"

	"github.com/tmc/langchaingo/textsplitter"
)

// SplitText splits text on the separator and merges the pieces back into
// chunks of at most chunkSize characters, where consecutive chunks share up
// to overlap characters. A single piece longer than chunkSize becomes its
// own, oversized chunk.
func SplitText(text, separator string, chunkSize, overlap int) ([]string, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithSeparators([]string{separator}),
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(overlap),
	)

	chunks, err := splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("split text: %w", err)
	}
	return chunks, nil
}
