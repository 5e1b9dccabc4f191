package resume

import "strings"

// nounPhrases approximates noun-phrase chunking without an NLP model.
// Text is split into tokens on whitespace; stopwords, punctuation-only
// tokens and sentence boundaries end the current run. Runs are emitted in
// chunks of at most 3 tokens, preserving source casing.
func nounPhrases(text string) []string {
	var phrases []string
	var run []string

	flush := func() {
		for len(run) > 0 {
			n := len(run)
			if n > 3 {
				n = 3
			}
			phrases = append(phrases, strings.Join(run[:n], " "))
			run = run[n:]
		}
	}

	for _, line := range strings.Split(text, "\n") {
		for _, tok := range strings.Fields(line) {
			word, boundary := trimToken(tok)
			if word == "" || phraseStopwords[strings.ToLower(word)] {
				flush()
				continue
			}
			run = append(run, word)
			if boundary {
				flush()
			}
		}
		flush()
	}
	return phrases
}

// trimToken strips surrounding punctuation and reports whether the token
// ended a clause (trailing sentence punctuation). Interior characters such
// as "+", "#", "." and "/" stay: "C++", "CI/CD" and "Node.js" are single
// tokens.
func trimToken(tok string) (word string, boundary bool) {
	word = strings.TrimLeft(tok, "•-*([{\"'")
	trimmed := strings.TrimRight(word, ".,:;!?)]}\"'")
	boundary = trimmed != word
	return trimmed, boundary
}
