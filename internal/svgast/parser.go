package svgast

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// ParseError reports malformed SVG input.
type ParseError struct {
	Offset int // Approximate byte offset of the offending token
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error at offset %d: %s: %v", e.Offset, e.Msg, e.Err)
	}
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseOptions controls parser leniency.
type ParseOptions struct {
	// Strict rejects duplicate attributes instead of keeping the first one.
	Strict bool
}

// parserState maintains context while lexing SVG
type parserState struct {
	lexer  *xml.Lexer
	opts   ParseOptions
	doc    *Document
	stack  []*Element
	offset int
	index  int
	done   bool // Root element closed
}

// Parse parses SVG text into a Document.
//
// Whitespace, self-closing tags, the XML prolog, DOCTYPE and processing
// instructions are tolerated. Tag balance is enforced. Attribute values and
// text are kept verbatim, so unescaped entities pass through untouched.
func Parse(text string, opts ParseOptions) (*Document, error) {
	s := &parserState{
		lexer: xml.NewLexer(parse.NewInputString(text)),
		opts:  opts,
		doc:   &Document{},
	}

	for {
		tt, data := s.lexer.Next()
		start := s.offset
		s.offset += len(data)

		switch tt {
		case xml.ErrorToken:
			if err := s.lexer.Err(); err != nil && err != io.EOF {
				return nil, &ParseError{Offset: start, Msg: "malformed markup", Err: err}
			}
			return s.finish(start)

		case xml.StartTagPIToken:
			// <?xml ... ?> and other processing instructions carry no content
			if err := s.skipPI(); err != nil {
				return nil, err
			}

		case xml.DOCTYPEToken:
			if len(s.stack) > 0 {
				return nil, &ParseError{Offset: start, Msg: "DOCTYPE inside element"}
			}

		case xml.StartTagToken:
			if err := s.startElement(string(s.lexer.Text()), start); err != nil {
				return nil, err
			}

		case xml.EndTagToken:
			if err := s.endElement(string(s.lexer.Text()), start); err != nil {
				return nil, err
			}

		case xml.TextToken:
			if err := s.text(string(data), false, start); err != nil {
				return nil, err
			}

		case xml.CDATAToken:
			if err := s.text(string(s.lexer.Text()), true, start); err != nil {
				return nil, err
			}

		case xml.CommentToken:
			// Comments outside the root are prolog noise and dropped
			if len(s.stack) > 0 {
				s.current().Append(&Comment{Data: commentText(data)})
			}
		}
	}
}

func (s *parserState) current() *Element {
	return s.stack[len(s.stack)-1]
}

// startElement reads the attributes of a start tag and opens the element
func (s *parserState) startElement(name string, start int) error {
	if name == "" {
		return &ParseError{Offset: start, Msg: "empty tag name"}
	}
	if s.done {
		return &ParseError{Offset: start, Msg: fmt.Sprintf("element <%s> after root element", name)}
	}
	if len(s.stack) == 0 {
		if s.doc.Root != nil {
			return &ParseError{Offset: start, Msg: "multiple root elements"}
		}
		if name != "svg" && !strings.HasSuffix(name, ":svg") {
			return &ParseError{Offset: start, Msg: fmt.Sprintf("root element is <%s>, expected <svg>", name)}
		}
	}

	el := &Element{Name: name, Index: s.index}
	s.index++

	for {
		tt, data := s.lexer.Next()
		tokStart := s.offset
		s.offset += len(data)

		switch tt {
		case xml.AttributeToken:
			attrName := string(s.lexer.Text())
			value := unquote(string(s.lexer.AttrVal()))
			if el.Has(attrName) {
				if s.opts.Strict {
					return &ParseError{Offset: tokStart, Msg: fmt.Sprintf("duplicate attribute %q on <%s>", attrName, name)}
				}
				s.doc.Warnings = append(s.doc.Warnings,
					fmt.Sprintf("duplicate attribute %q on <%s> ignored", attrName, name))
				continue
			}
			el.Attrs = append(el.Attrs, Attr{Name: attrName, Value: value})

		case xml.StartTagCloseToken:
			s.open(el)
			return nil

		case xml.StartTagCloseVoidToken:
			s.open(el)
			s.close()
			return nil

		case xml.ErrorToken:
			if err := s.lexer.Err(); err != nil && err != io.EOF {
				return &ParseError{Offset: tokStart, Msg: fmt.Sprintf("malformed start tag <%s>", name), Err: err}
			}
			return &ParseError{Offset: start, Msg: fmt.Sprintf("unterminated start tag <%s>", name)}

		default:
			return &ParseError{Offset: tokStart, Msg: fmt.Sprintf("unexpected token in start tag <%s>", name)}
		}
	}
}

func (s *parserState) open(el *Element) {
	if len(s.stack) == 0 {
		s.doc.Root = el
	} else {
		s.current().Append(el)
	}
	s.stack = append(s.stack, el)
}

func (s *parserState) close() {
	s.stack = s.stack[:len(s.stack)-1]
	if len(s.stack) == 0 {
		s.done = true
	}
}

func (s *parserState) endElement(name string, start int) error {
	if len(s.stack) == 0 {
		return &ParseError{Offset: start, Msg: fmt.Sprintf("unexpected closing tag </%s>", name)}
	}
	if open := s.current().Name; open != name {
		return &ParseError{Offset: start, Msg: fmt.Sprintf("closing tag </%s> does not match <%s>", name, open)}
	}
	s.close()
	return nil
}

func (s *parserState) text(data string, cdata bool, start int) error {
	if len(s.stack) == 0 {
		if strings.TrimSpace(data) != "" {
			return &ParseError{Offset: start, Msg: "text outside root element"}
		}
		return nil
	}
	s.current().Append(&Text{Data: data, CDATA: cdata})
	return nil
}

func (s *parserState) skipPI() error {
	for {
		tt, data := s.lexer.Next()
		start := s.offset
		s.offset += len(data)
		switch tt {
		case xml.StartTagClosePIToken:
			return nil
		case xml.ErrorToken:
			return &ParseError{Offset: start, Msg: "unterminated processing instruction", Err: s.lexer.Err()}
		}
	}
}

func (s *parserState) finish(offset int) (*Document, error) {
	if len(s.stack) > 0 {
		return nil, &ParseError{Offset: offset, Msg: fmt.Sprintf("unclosed element <%s>", s.current().Name)}
	}
	if s.doc.Root == nil {
		return nil, &ParseError{Offset: offset, Msg: "no <svg> root element"}
	}
	return s.doc, nil
}

// unquote strips matching single or double quotes from an attribute value
func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

func commentText(data []byte) string {
	s := string(data)
	s = strings.TrimPrefix(s, "<!--")
	s = strings.TrimSuffix(s, "-->")
	return s
}
