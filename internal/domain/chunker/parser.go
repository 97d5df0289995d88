package chunker

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/haru/episcope/internal/ports"
)

// Reduction rules, tried in order against the top of the stack. Noun-phrase
// rules combine across attributive and parallel particles; verb-phrase rules
// attach objects, subjects, and conjunctions; subject-marked adjective
// phrases and reason clauses close the set.
var rules = []struct {
	lhs string
	rhs []string
}{
	{"NP", []string{"NP", "P_attr", "NP"}},
	{"NP", []string{"VP", "NP"}},
	{"NP", []string{"MOD", "NP"}},
	{"NP", []string{"NP", "P_para", "NP"}},

	{"VP", []string{"NP", "P_obj", "VP"}},
	{"VP", []string{"VP", "P_conn", "VP"}},
	{"VP", []string{"MOD", "VP"}},
	{"VP", []string{"NP", "P_subj", "VP"}},

	{"ADJP", []string{"NP", "P_subj", "ADJP"}},
	{"ADJP", []string{"MOD", "ADJP"}},

	{"Clause", []string{"ADJP", "P_reason", "VP"}},
}

// matchRule checks whether the top of the stack matches any rule's right
// side, first rule wins.
func matchRule(stack []*Chunk) (string, int) {
	for _, r := range rules {
		n := len(r.rhs)
		if len(stack) < n {
			continue
		}
		ok := true
		for i, pos := range r.rhs {
			if stack[len(stack)-n+i].POS != pos {
				ok = false
				break
			}
		}
		if ok {
			return r.lhs, n
		}
	}
	return "", 0
}

// Parse runs shift-reduce over the base chunks: reduce greedily while any
// rule matches the stack top, then shift the next chunk. Returns the final
// stack; when no single root is reachable the partial parse is returned
// as-is, every reduction already made still counts.
func Parse(chunks []*Chunk) []*Chunk {
	var stack []*Chunk
	queue := chunks

	for len(queue) > 0 || len(stack) > 1 {
		reduced := false
		for {
			lhs, n := matchRule(stack)
			if n == 0 {
				break
			}
			children := make([]*Chunk, n)
			copy(children, stack[len(stack)-n:])
			var sb strings.Builder
			for _, c := range children {
				sb.WriteString(c.Surface)
			}
			stack = append(stack[:len(stack)-n], &Chunk{
				Surface:  sb.String(),
				POS:      lhs,
				Children: children,
			})
			reduced = true
		}

		if len(queue) > 0 {
			stack = append(stack, queue[0])
			queue = queue[1:]
		} else if !reduced && len(stack) > 1 {
			return stack
		}
	}
	return stack
}

// Phrases chunks and parses a morpheme stream and returns every noun, verb,
// and adjective phrase longer than one character — base chunks and reduced
// intermediates alike — mapped to the sorted set of chunk tags it appeared
// under.
func Phrases(tokens []ports.Token) map[string][]string {
	tags := make(map[string]map[string]bool)
	for _, root := range Parse(BaseChunks(tokens)) {
		collect(root, tags)
	}
	if len(tags) == 0 {
		return nil
	}

	out := make(map[string][]string, len(tags))
	for surface, set := range tags {
		list := make([]string, 0, len(set))
		for tag := range set {
			list = append(list, tag)
		}
		sort.Strings(list)
		out[surface] = list
	}
	return out
}

func collect(c *Chunk, tags map[string]map[string]bool) {
	if c == nil {
		return
	}
	switch c.POS {
	case "NP", "VP", "ADJP":
		if utf8.RuneCountInString(c.Surface) > 1 {
			if tags[c.Surface] == nil {
				tags[c.Surface] = make(map[string]bool)
			}
			tags[c.Surface][c.POS] = true
		}
	}
	for _, child := range c.Children {
		collect(child, tags)
	}
}
