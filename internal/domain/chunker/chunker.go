// Package chunker builds phrase-level keyword candidates from morpheme
// streams: adjacent morphemes fold into base chunks (noun runs, verb plus
// auxiliaries), and a shift-reduce pass combines chunks across particles
// into larger noun, verb, and adjective phrases.
package chunker

import (
	"strings"

	"github.com/haru/episcope/internal/ports"
)

// Chunk is one phrase node. Base chunks have no children; reduced chunks
// keep the chunks they were combined from, so every intermediate phrase is
// recoverable from the final parse.
type Chunk struct {
	Surface  string
	POS      string
	Children []*Chunk
}

// BaseChunks folds a morpheme stream into initial chunks: runs of nouns and
// prefixes become one NP, a verb absorbs trailing auxiliaries into a VP,
// adjectives become ADJP, adverbs and adnominals become MOD, and particles
// are classified by grammatical role for the reduction rules. Anything else
// passes through under its major part of speech.
func BaseChunks(tokens []ports.Token) []*Chunk {
	var chunks []*Chunk
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		major, minor := posMajor(tok), posMinor(tok)

		switch {
		case major == "名詞" || major == "接頭詞":
			j := i
			var sb strings.Builder
			for j < len(tokens) {
				m := posMajor(tokens[j])
				if m != "名詞" && m != "接頭詞" {
					break
				}
				sb.WriteString(tokens[j].Surface)
				j++
			}
			chunks = append(chunks, &Chunk{Surface: sb.String(), POS: "NP"})
			i = j

		case major == "動詞":
			j := i + 1
			var sb strings.Builder
			sb.WriteString(tok.Surface)
			for j < len(tokens) && posMajor(tokens[j]) == "助動詞" {
				sb.WriteString(tokens[j].Surface)
				j++
			}
			chunks = append(chunks, &Chunk{Surface: sb.String(), POS: "VP"})
			i = j

		case major == "形容詞" || major == "形容動詞":
			chunks = append(chunks, &Chunk{Surface: tok.Surface, POS: "ADJP"})
			i++

		case major == "副詞" || major == "連体詞":
			chunks = append(chunks, &Chunk{Surface: tok.Surface, POS: "MOD"})
			i++

		case major == "助詞":
			chunks = append(chunks, &Chunk{Surface: tok.Surface, POS: particleTag(minor, tok.Surface)})
			i++

		default:
			chunks = append(chunks, &Chunk{Surface: tok.Surface, POS: major})
			i++
		}
	}
	return chunks
}

// particleTag classifies a particle for the reduction rules.
func particleTag(minor, surface string) string {
	switch {
	case minor == "連体化":
		return "P_attr"
	case minor == "格助詞" && surface == "を":
		return "P_obj"
	case (minor == "格助詞" || minor == "係助詞") && (surface == "が" || surface == "は"):
		return "P_subj"
	case minor == "接続助詞":
		return "P_conn"
	case minor == "並立助詞":
		return "P_para"
	case surface == "ので" || surface == "から":
		return "P_reason"
	}
	return "P"
}

func posMajor(tok ports.Token) string {
	if len(tok.POS) > 0 {
		return tok.POS[0]
	}
	return ""
}

func posMinor(tok ports.Token) string {
	if len(tok.POS) > 1 {
		return tok.POS[1]
	}
	return ""
}
