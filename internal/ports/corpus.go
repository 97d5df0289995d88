// Package ports defines the interfaces (contracts) that adapters must implement,
// plus the plain data records shared across the module. Domain logic depends
// only on these, never on concrete implementations.
package ports

// Document is one episode transcript. Content is the full transcript text;
// line boundaries within it are significant and preserved by every consumer.
type Document struct {
	ID      string `json:"id"`      // filename/slug, unique within the corpus
	Title   string `json:"title"`   // cleaned episode title
	Content string `json:"content"` // full transcript text
}

// Corpus is the ordered document collection, keyed by Document.ID.
// IDs holds the iteration order and contains no duplicates; Docs is the
// lookup table. Both are read-only after loading.
type Corpus struct {
	IDs  []string            `json:"ids"`
	Docs map[string]Document `json:"docs"`
}

// Add appends a document, ignoring duplicate IDs.
func (c *Corpus) Add(doc Document) {
	if c.Docs == nil {
		c.Docs = make(map[string]Document)
	}
	if _, ok := c.Docs[doc.ID]; ok {
		return
	}
	c.IDs = append(c.IDs, doc.ID)
	c.Docs[doc.ID] = doc
}

// Len returns the number of documents.
func (c *Corpus) Len() int { return len(c.IDs) }

// Vocabulary is the fixed keyword set eligible for highlighting and search
// emphasis. Keywords holds the iteration order (unique strings, the set is
// not a multiset). Episodes maps each keyword to the ordered list of episode
// IDs containing it. Curated flags keywords that originate from the curated
// keywords file rather than automatic extraction; it affects only rendering.
type Vocabulary struct {
	Keywords []string            `json:"keywords"`
	Episodes map[string][]string `json:"episodes"`
	Curated  map[string]bool     `json:"curated,omitempty"`
}

// Coverage returns the number of episodes a keyword appears in.
func (v *Vocabulary) Coverage(keyword string) int {
	return len(v.Episodes[keyword])
}

// Related returns the episode IDs containing keyword, or nil if unknown.
func (v *Vocabulary) Related(keyword string) []string {
	return v.Episodes[keyword]
}
