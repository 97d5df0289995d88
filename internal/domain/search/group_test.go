package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByTitle_FirstSeenOrder(t *testing.T) {
	// Hits arrive from documents in title order [B, A, B]; groups come out
	// [B, A] with B holding both of its hits in original relative order.
	hits := []Hit{
		{Title: "B", Line: "b first", LineNumber: 1},
		{Title: "A", Line: "a only", LineNumber: 5},
		{Title: "B", Line: "b second", LineNumber: 9},
	}
	groups := GroupByTitle(hits)

	require.Len(t, groups, 2)
	assert.Equal(t, "B", groups[0].Title)
	require.Len(t, groups[0].Hits, 2)
	assert.Equal(t, "b first", groups[0].Hits[0].Line)
	assert.Equal(t, "b second", groups[0].Hits[1].Line)
	assert.Equal(t, "A", groups[1].Title)
	require.Len(t, groups[1].Hits, 1)
}

func TestGroupByTitle_SharedTitleMerges(t *testing.T) {
	// Two documents with the same title land in one group; the title is the
	// key, not the episode ID.
	hits := []Hit{
		{EpisodeID: "ep1.txt.md", Title: "Rerun", LineNumber: 1},
		{EpisodeID: "ep2.txt.md", Title: "Rerun", LineNumber: 3},
	}
	groups := GroupByTitle(hits)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Hits, 2)
}

func TestGroupByTitle_Empty(t *testing.T) {
	assert.Nil(t, GroupByTitle(nil))
	assert.Nil(t, GroupByTitle([]Hit{}))
}
