package search

// Group is the ordered set of hits belonging to one episode title.
type Group struct {
	Title string `json:"title"`
	Hits  []Hit  `json:"hits"`
}

// GroupByTitle groups hits by document title, preserving the order titles
// were first encountered and the relative order of hits within each group.
//
// The grouping key is the title, not the episode ID: two documents sharing
// a title merge into one group. That is accepted behavior, kept from the
// original design rather than silently fixed.
func GroupByTitle(hits []Hit) []Group {
	if len(hits) == 0 {
		return nil
	}
	index := make(map[string]int, len(hits))
	var groups []Group
	for _, h := range hits {
		i, ok := index[h.Title]
		if !ok {
			i = len(groups)
			index[h.Title] = i
			groups = append(groups, Group{Title: h.Title})
		}
		groups[i].Hits = append(groups[i].Hits, h)
	}
	return groups
}
