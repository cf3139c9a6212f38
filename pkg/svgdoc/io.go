package svgdoc

import (
	"encoding/xml"
	"io"
	"os"
	s "strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// Document is a loaded SVG file.
type Document struct {
	node *Node
}

// Root is the outermost element, normally <svg>.
func (d *Document) Root() *Node {
	for _, c := range d.node.Children {
		if c.Kind == ElementNode {
			return c
		}
	}
	return nil
}

// Load reads an SVG document. Prefixes, comments, processing instructions
// and attribute order are kept so that WriteTo reproduces the file. Files in
// a legacy encoding are converted as declared in their XML header.
func Load(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	doc := &Node{Kind: DocumentNode}
	cur := doc
	for {
		tok, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "decode svg")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Kind: ElementNode, Name: t.Name}
			n.Attr = make([]xml.Attr, len(t.Attr))
			copy(n.Attr, t.Attr)
			cur.AppendChild(n)
			cur = n
		case xml.EndElement:
			if cur == doc || qualified(cur.Name) != qualified(t.Name) {
				return nil, errors.Errorf("decode svg: unexpected </%s>", qualified(t.Name))
			}
			cur = cur.parent
		case xml.CharData:
			cur.AppendChild(&Node{Kind: TextNode, Data: string(t)})
		case xml.Comment:
			cur.AppendChild(&Node{Kind: CommentNode, Data: string(t)})
		case xml.ProcInst:
			cur.AppendChild(&Node{Kind: ProcInstNode, Name: xml.Name{Local: t.Target}, Data: string(t.Inst)})
		case xml.Directive:
			cur.AppendChild(&Node{Kind: DirectiveNode, Data: string(t)})
		}
	}
	if cur != doc {
		return nil, errors.Errorf("decode svg: <%s> not closed", qualified(cur.Name))
	}
	d := &Document{node: doc}
	if d.Root() == nil {
		return nil, errors.New("decode svg: no root element")
	}
	return d, nil
}

// LoadFile reads the SVG document in file.
func LoadFile(file string) (*Document, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "open '%s'", file)
	}
	defer f.Close()
	d, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load '%s'", file)
	}
	return d, nil
}

var (
	textEscaper = s.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = s.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

func writeNode(b *s.Builder, n *Node) {
	switch n.Kind {
	case DocumentNode:
		for _, c := range n.Children {
			writeNode(b, c)
		}
	case ElementNode:
		b.WriteByte('<')
		b.WriteString(qualified(n.Name))
		for _, a := range n.Attr {
			b.WriteByte(' ')
			b.WriteString(qualified(a.Name))
			b.WriteString(`="`)
			b.WriteString(attrEscaper.Replace(a.Value))
			b.WriteByte('"')
		}
		if len(n.Children) == 0 {
			b.WriteString("/>")
			return
		}
		b.WriteByte('>')
		for _, c := range n.Children {
			writeNode(b, c)
		}
		b.WriteString("</")
		b.WriteString(qualified(n.Name))
		b.WriteByte('>')
	case TextNode:
		b.WriteString(textEscaper.Replace(n.Data))
	case CommentNode:
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->")
	case ProcInstNode:
		b.WriteString("<?")
		b.WriteString(n.Name.Local)
		if n.Data != "" {
			b.WriteByte(' ')
			b.WriteString(n.Data)
		}
		b.WriteString("?>")
	case DirectiveNode:
		b.WriteString("<!")
		b.WriteString(n.Data)
		b.WriteByte('>')
	}
}

// String is the document as XML text.
func (d *Document) String() string {
	var b s.Builder
	writeNode(&b, d.node)
	return b.String()
}

// WriteTo writes the document as XML text. The text is always UTF-8; an
// encoding named in the XML header is rewritten accordingly.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	for _, c := range d.node.Children {
		if c.Kind == ProcInstNode && c.Name.Local == "xml" {
			c.Data = utf8Declaration(c.Data)
		}
	}
	n, err := io.WriteString(w, d.String())
	return int64(n), errors.Wrap(err, "write svg")
}

// WriteFile writes the document to file.
func (d *Document) WriteFile(file string) error {
	f, err := os.Create(file)
	if err != nil {
		return errors.Wrapf(err, "create '%s'", file)
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "'%s'", file)
	}
	return errors.Wrapf(f.Close(), "close '%s'", file)
}

// utf8Declaration replaces the encoding pseudo attribute of an XML
// declaration with UTF-8.
func utf8Declaration(inst string) string {
	i := s.Index(inst, "encoding=")
	if i < 0 || i+len("encoding=") >= len(inst) {
		return inst
	}
	start := i + len("encoding=")
	quote := inst[start]
	end := s.IndexByte(inst[start+1:], quote)
	if end < 0 {
		return inst
	}
	value := inst[start+1 : start+1+end]
	if s.EqualFold(value, "utf-8") {
		return inst
	}
	return inst[:start+1] + "UTF-8" + inst[start+1+end:]
}
