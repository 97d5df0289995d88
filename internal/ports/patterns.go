package ports

// ScanMatch is one pattern occurrence with byte offsets into the scanned
// content. Pattern indexes into the scanner's original pattern slice.
type ScanMatch struct {
	Pattern int // index into the pattern slice
	Start   int // byte offset, inclusive
	End     int // byte offset, exclusive
}

// PatternScanner finds keyword occurrences in content using multi-pattern
// matching (Aho-Corasick). A single pass over the content finds occurrences
// of every keyword simultaneously, regardless of vocabulary size — O(n + z)
// where n is content length and z the number of matches.
//
// The pattern set is fixed at construction; the vocabulary never changes
// during a scan. Content is matched as-is: case-sensitive, byte-literal, no
// pattern syntax.
type PatternScanner interface {
	// Scan returns the non-overlapping leftmost-longest matches in content,
	// ordered by start offset. Among candidates starting at the same offset
	// the longest pattern wins; winning matches never overlap each other.
	Scan(content string) []ScanMatch

	// ScanOverlapping returns every occurrence of every pattern, including
	// occurrences nested inside longer matches.
	ScanOverlapping(content string) []ScanMatch

	// Pattern returns the pattern string at the given index, or "" if out
	// of range.
	Pattern(i int) string

	// PatternCount returns the number of patterns in the scanner.
	PatternCount() int
}
