package dom

import (
	"fmt"

	"golang.org/x/net/html"
)

// AppendStylesheetLink appends a <link rel="stylesheet"> for href to the
// document head. Fire-and-forget: no de-duplication and no load tracking.
func (d *Document) AppendStylesheetLink(href string) {
	d.doc.Find("head").AppendHtml(fmt.Sprintf(
		`<link rel="stylesheet" type="text/css" href="%s">`,
		html.EscapeString(href)))
}

// AppendScript appends a <script> for src to the document head. No
// de-duplication.
func (d *Document) AppendScript(src string) {
	d.doc.Find("head").AppendHtml(fmt.Sprintf(
		`<script type="text/javascript" src="%s"></script>`,
		html.EscapeString(src)))
}
