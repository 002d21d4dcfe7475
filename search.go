package folio

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/eringen/folio/content"
)

// SearchPosts fuzzy-matches query against each post's title and summary.
// Matches keep the order of posts rather than the match score, so a list
// sorted newest first stays that way.
func SearchPosts(posts []content.Post, query string) []content.Post {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return posts
	}
	haystack := make([]string, len(posts))
	for i, p := range posts {
		haystack[i] = strings.ToLower(p.Meta.Title + " " + p.Meta.Summary)
	}
	matches := fuzzy.Find(query, haystack)
	indices := make([]int, len(matches))
	for i, m := range matches {
		indices[i] = m.Index
	}
	sort.Ints(indices)
	out := make([]content.Post, len(indices))
	for i, idx := range indices {
		out[i] = posts[idx]
	}
	return out
}
