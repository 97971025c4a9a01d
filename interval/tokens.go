package interval

// Fields identifies up to the first len(tokens) tokens from line, returning
// the number of tokens saved.  Any (group of) characters <= ' ' is treated as
// a delimiter, so tabs, spaces and a trailing '\r' all separate tokens.
//
// The tokens alias line; copy them if they must outlive it.
func Fields(tokens []string, line string) int {
	posEnd := 0
	lineLen := len(line)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if line[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if line[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = line[pos:posEnd]
	}
	return len(tokens)
}

// CountFields returns the number of whitespace-delimited tokens in line,
// using the same delimiter rule as Fields.
func CountFields(line string) int {
	n := 0
	inToken := false
	for i := 0; i < len(line); i++ {
		if line[i] > ' ' {
			if !inToken {
				n++
				inToken = true
			}
			continue
		}
		inToken = false
	}
	return n
}
