package syjon

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors of the nested elements inside an activity block
var (
	subjectPath  = []string{"div.activity_content", "div.subject_content"}
	teachersPath = []string{"div.activity_content", "div.teachers_content"}
	roomPath     = []string{"div.activity_content", "div.bottom_content_containter", "div.room_content"}
	typePath     = []string{"div.activity_content", "div.bottom_content_containter", "div.type_content"}
	groupMarker  = "div.activity_group"
)

// Block is one activity element of the timetable grid
type Block struct {
	sel *goquery.Selection
}

// ParseDocument parses a Syjon timetable page.
func ParseDocument(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

// Blocks yields the activity blocks of doc in document order.
// Layout artifacts share the activity_block class; real entries are told apart by a style
// attribute holding exactly one '-'.
func Blocks(doc *goquery.Document) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for _, sel := range doc.Find("div[class*='activity_block']").EachIter() {
			style, _ := sel.Attr("style")
			if strings.Count(style, "-") != 1 {
				continue
			}
			if !yield(Block{sel: sel}) {
				return
			}
		}
	}
}

// Style returns the block's inline style attribute verbatim.
func (b Block) Style() string {
	style, _ := b.sel.Attr("style")
	return style
}

func (b Block) SubjectName() (string, error) {
	return b.text(subjectPath)
}

func (b Block) Room() (string, error) {
	return b.text(roomPath)
}

func (b Block) GroupType() (string, error) {
	return b.text(typePath)
}

// TeacherNames returns the text of every entry in the teachers list, in page order.
func (b Block) TeacherNames() ([]string, error) {
	list, err := b.find(teachersPath)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, entry := range list.Children().EachIter() {
		name, ok := firstNodeText(entry)
		if !ok {
			return nil, fmt.Errorf("%w: empty entry in %s", ErrStructureMismatch, strings.Join(teachersPath, " > "))
		}
		names = append(names, name)
	}
	return names, nil
}

// GroupNumber returns the section number printed on the block. Blocks of subjects with a
// single unnumbered section carry no usable marker and count as group 1, as do markers
// below 1.
func (b Block) GroupNumber() int {
	marker := b.sel.ChildrenFiltered(groupMarker).First()
	if marker.Length() == 0 {
		return 1
	}

	n, err := strconv.Atoi(strings.TrimSpace(marker.Text()))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Group decodes the subject type and section number of the block.
func (b Block) Group() (Group, error) {
	kind, err := b.GroupType()
	if err != nil {
		return Group{}, err
	}
	return Group{Type: kind, Number: b.GroupNumber()}, nil
}

func (b Block) find(path []string) (*goquery.Selection, error) {
	sel := b.sel
	for _, step := range path {
		sel = sel.ChildrenFiltered(step)
	}
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrStructureMismatch, strings.Join(path, " > "))
	}
	return sel.First(), nil
}

func (b Block) text(path []string) (string, error) {
	sel, err := b.find(path)
	if err != nil {
		return "", err
	}

	text, ok := firstNodeText(sel)
	if !ok {
		return "", fmt.Errorf("%w: empty %s", ErrStructureMismatch, strings.Join(path, " > "))
	}
	return text, nil
}

// firstNodeText returns the trimmed text of the first child node of sel, ignoring
// whitespace between tags.
func firstNodeText(sel *goquery.Selection) (string, bool) {
	for _, node := range sel.Contents().EachIter() {
		if text := strings.TrimSpace(node.Text()); text != "" {
			return text, true
		}
	}
	return "", false
}
