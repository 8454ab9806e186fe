package panorama

import (
	"os"
	"strings"

	"github.com/beevik/etree"

	"github.com/kaydubbed/PanRuleOrder/pkg/errors"
	"github.com/kaydubbed/PanRuleOrder/pkg/logging"
)

// Document wraps a parsed Panorama configuration tree together with the
// namespace prefix strategy chosen at load time.
type Document struct {
	tree *etree.Document

	// prefix is the namespace prefix carried by the root element, or ""
	// for unqualified and default-namespace documents. All structural
	// lookups qualify their path segments with it.
	prefix string
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileNotFound, "XML file not found: %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot access %s", path)
	}

	tree := etree.NewDocument()
	if err := tree.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrParse, "failed to parse %s", path)
	}
	root := tree.Root()
	if root == nil {
		return nil, errors.Newf(errors.ErrParse, "%s contains no root element", path)
	}

	doc := &Document{tree: tree, prefix: root.Space}
	log := logging.GetLogger("panorama.document")
	log.Debug().Str("path", path).Str("prefix", doc.prefix).Msg("Document loaded")
	return doc, nil
}

// Save writes the document to path as UTF-8 with an XML declaration.
// indent > 0 re-indents the whole tree with that many spaces; 0 keeps the
// source formatting.
func (d *Document) Save(path string, indent int) error {
	d.ensureDeclaration()
	if indent > 0 {
		d.tree.Indent(indent)
	}
	if err := d.tree.WriteToFile(path); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write %s", path)
	}
	log := logging.GetLogger("panorama.document")
	log.Debug().Str("path", path).Msg("Document written")
	return nil
}

// Root returns the document's root element.
func (d *Document) Root() *etree.Element {
	return d.tree.Root()
}

// qualify prefixes a path segment with the document's namespace prefix.
func (d *Document) qualify(segment string) string {
	if d.prefix == "" {
		return segment
	}
	return d.prefix + ":" + segment
}

// findPath resolves a descendant search ("//a/b/c") for the given
// unqualified segments under the document root.
func (d *Document) findPath(segments ...string) *etree.Element {
	return d.tree.FindElement("//" + d.joinPath(segments...))
}

func (d *Document) joinPath(segments ...string) string {
	qualified := make([]string, len(segments))
	for i, s := range segments {
		qualified[i] = d.qualify(s)
	}
	return strings.Join(qualified, "/")
}

// ensureDeclaration inserts an XML declaration at the top of the document
// when the source file had none.
func (d *Document) ensureDeclaration() {
	for _, tok := range d.tree.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}
	pi := d.tree.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	d.tree.RemoveChild(pi)
	d.tree.InsertChildAt(0, pi)
}
