package dom

// AddClasses adds the given class names to every element matching selector.
// An empty class list is a no-op: the document is left untouched.
func (d *Document) AddClasses(selector string, classes ...string) {
	if len(classes) == 0 {
		return
	}
	d.doc.Find(selector).AddClass(classes...)
}

// RemoveClasses removes the given class names from every element matching
// selector. An empty class list is a no-op.
func (d *Document) RemoveClasses(selector string, classes ...string) {
	if len(classes) == 0 {
		return
	}
	d.doc.Find(selector).RemoveClass(classes...)
}
