package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SiblingIndex returns the position of sel among its parent's element
// children. When the element cannot be found among them, the child count is
// returned instead; this never fails.
func SiblingIndex(sel *goquery.Selection) int {
	children := sel.Parent().Children()
	if len(sel.Nodes) == 0 {
		return children.Length()
	}

	index := -1
	children.EachWithBreak(func(i int, child *goquery.Selection) bool {
		if len(child.Nodes) > 0 && child.Nodes[0] == sel.Nodes[0] {
			index = i
			return false
		}
		return true
	})
	if index < 0 {
		return children.Length()
	}
	return index
}

// ChildByDatasetValue scans descendants of root with the given tag name for
// the first one carrying any data-* attribute equal to value.
func ChildByDatasetValue(root *goquery.Selection, tag, value string) (*goquery.Selection, bool) {
	var match *goquery.Selection
	root.Find(tag).EachWithBreak(func(_ int, child *goquery.Selection) bool {
		for _, attr := range child.Nodes[0].Attr {
			if strings.HasPrefix(attr.Key, "data-") && attr.Val == value {
				match = child
				return false
			}
		}
		return true
	})
	return match, match != nil
}
