package resources

import "fmt"

// RefEncoding distinguishes how a resolved reference reaches the page.
type RefEncoding int

const (
	// RefInline carries the full asset text to be embedded in the page.
	RefInline RefEncoding = iota
	// RefFile carries a filesystem path.
	RefFile
	// RefURL carries an absolute URL.
	RefURL
)

// String returns the wire name of the encoding.
func (k RefEncoding) String() string {
	switch k {
	case RefInline:
		return "inline"
	case RefFile:
		return "file"
	case RefURL:
		return "url"
	default:
		return fmt.Sprintf("RefEncoding(%d)", int(k))
	}
}

// Ref is one resolved script or style reference.
type Ref struct {
	Kind    RefEncoding
	Content string
}

// Bundle is the resolved, ordered set of script and style references for
// one document. Scripts always start with the core runtime and end with
// the synthetic log-level snippet; styles follow component order.
type Bundle struct {
	Scripts []Ref
	Styles  []Ref
}
