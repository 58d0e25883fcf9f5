package syjon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selection maps a subject type to the group number the student attends
type Selection map[string]int

// Matches reports whether g is the selected group of its subject type.
func (s Selection) Matches(g Group) bool {
	n, ok := s[g.Type]
	return ok && n == g.Number
}

// ParseSelection builds a Selection from "TYPE=NUMBER" pairs as given on the command line.
func ParseSelection(pairs []string) (Selection, error) {
	sel := make(Selection, len(pairs))
	for _, pair := range pairs {
		i := strings.LastIndex(pair, "=")
		if i <= 0 {
			return nil, fmt.Errorf("invalid group selection %q: expected TYPE=NUMBER", pair)
		}

		kind := strings.TrimSpace(pair[:i])
		n, err := strconv.Atoi(strings.TrimSpace(pair[i+1:]))
		if kind == "" || err != nil || n < 1 {
			return nil, fmt.Errorf("invalid group selection %q: expected TYPE=NUMBER", pair)
		}
		if _, dup := sel[kind]; dup {
			return nil, fmt.Errorf("group %q selected more than once", kind)
		}
		sel[kind] = n
	}
	return sel, nil
}

// DiscoverGroups returns, for every subject type on the page, the highest group number seen.
// It tells the caller how many parallel sections there are to choose from.
func DiscoverGroups(html string) (map[string]int, error) {
	doc, err := ParseDocument(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return DiscoverGroupsFromDocument(doc)
}

// DiscoverGroupsFromDocument is DiscoverGroups over an already parsed page.
func DiscoverGroupsFromDocument(doc *goquery.Document) (map[string]int, error) {
	groups := make(map[string]int)

	for block := range Blocks(doc) {
		g, err := block.Group()
		if err != nil {
			return nil, err
		}

		if highest, ok := groups[g.Type]; !ok || g.Number > highest {
			groups[g.Type] = g.Number
		}
	}

	return groups, nil
}
