// Package content resolves what a quiz should be about: text extracted
// from an uploaded document, a pick from the built-in subject taxonomy,
// or a free-form topic.
package content

// Descriptor is the resolved subject matter for one generation request.
// It is a closed set of three variants; the prompt builder switches on
// the concrete type.
type Descriptor interface {
	// Source returns a short origin label: "document", "taxonomy" or "topic".
	Source() string

	isDescriptor()
}

// Document is subject matter taken verbatim from an extracted document.
// Empty text is valid: the document parsed but contained no extractable
// text.
type Document struct {
	Text string
}

func (Document) Source() string { return "document" }
func (Document) isDescriptor()  {}

// Taxonomy is a subject and sub-field pair from the built-in catalog.
type Taxonomy struct {
	Subject  string
	Subfield string
}

func (Taxonomy) Source() string { return "taxonomy" }
func (Taxonomy) isDescriptor()  {}

// Topic is a free-form topic typed by the user.
type Topic struct {
	Name string
}

func (Topic) Source() string { return "topic" }
func (Topic) isDescriptor()  {}
