package usecase

// splitText cuts text into fixed-size chunks with a sliding overlap so
// sentences cut at a boundary still appear whole in one chunk. Sizes are in
// runes to avoid splitting multi-byte characters.
func splitText(text string, size, overlap int) []string {
	runes := []rune(text)
	if len(runes) == 0 || size <= 0 {
		return nil
	}

	step := size - overlap
	if step <= 0 {
		step = size
	}

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}
