package ports

// Token is one morpheme with its part-of-speech features, most to least
// specific (e.g. 名詞, 一般, *, *).
type Token struct {
	Surface string   `json:"surface"`
	POS     []string `json:"pos"`
}

// Tokenizer segments Japanese text into morphemes.
type Tokenizer interface {
	Tokenize(text string) []Token
}
