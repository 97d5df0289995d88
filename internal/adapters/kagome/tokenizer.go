// Package kagome implements ports.Tokenizer using the kagome morphological
// analyzer with the IPA dictionary. The dictionary uses the same
// part-of-speech taxonomy the chunker's rules are written against.
package kagome

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/ipa"
	kagome "github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/haru/episcope/internal/ports"
)

// Tokenizer implements ports.Tokenizer. Construction loads the full IPA
// dictionary; build one and share it.
type Tokenizer struct {
	t *kagome.Tokenizer
}

// NewTokenizer creates a tokenizer over the embedded IPA dictionary.
func NewTokenizer() (*Tokenizer, error) {
	t, err := kagome.New(ipa.Dict(), kagome.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("kagome: %w", err)
	}
	return &Tokenizer{t: t}, nil
}

// Tokenize segments text into morphemes with their POS features.
func (tk *Tokenizer) Tokenize(text string) []ports.Token {
	raw := tk.t.Tokenize(text)
	out := make([]ports.Token, 0, len(raw))
	for _, tok := range raw {
		out = append(out, ports.Token{Surface: tok.Surface, POS: tok.POS()})
	}
	return out
}
