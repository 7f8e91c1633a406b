package page

import "github.com/dmitrijs2005/authboot/internal/common"

// Element is a single node whose text can be replaced.
type Element interface {
	Text() string
	SetText(text string)
}

// Document finds elements. QuerySelector returns nil when nothing matches.
type Document interface {
	QuerySelector(selector string) Element
}

// HeadingUpdater rewrites the text of the page's main heading.
type HeadingUpdater struct {
	doc      Document
	selector string
}

// NewHeadingUpdater returns an updater that targets the first element of doc
// matching selector. An empty selector means common.DefaultHeadingSelector.
func NewHeadingUpdater(doc Document, selector string) *HeadingUpdater {
	if selector == "" {
		selector = common.DefaultHeadingSelector
	}
	return &HeadingUpdater{doc: doc, selector: selector}
}

// UpdateMainHeading replaces the heading's text with text. The element is
// looked up on every call; when there is none the call does nothing.
func (u *HeadingUpdater) UpdateMainHeading(text string) {
	if u.doc == nil {
		return
	}
	el := u.doc.QuerySelector(u.selector)
	if el == nil {
		return
	}
	el.SetText(text)
}
