// Package toylang implements a small recursive-descent parser for the
// example grammar used to exercise the highlighter end to end: lowercase
// identifiers, capitalized "local" identifiers, escaped strings, parenthesized
// lists, opaque brace arrays, double-brace maps, and angle-bracket tags with
// inherited literal styling and inner emphasis runs.
//
// Parse returns a [syntree.Node] tree whose node types already carry the
// compiled [selector.Rule] chains the highlighter needs — callers only need
// to supply a [style.MatchFunc] (e.g. [go.jacobcolvin.com/synhi/style.Preset])
// to drive [go.jacobcolvin.com/synhi/highlight.HighlightTree] over it.
package toylang

import (
	"go.jacobcolvin.com/synhi/selector"
	"go.jacobcolvin.com/synhi/syntree"
	"go.jacobcolvin.com/synhi/tag"
)

// Node type vocabulary for the toy grammar.
//
//nolint:gochecknoglobals // Process-lifetime node type registry, built once at init.
var (
	Program      = syntree.NewType("Program").AsTop()
	Identifier   = syntree.NewType("Identifier")
	Local        = syntree.NewType("Local")
	StringType   = syntree.NewType("String")
	Escape       = syntree.NewType("Escape")
	List         = syntree.NewType("List")
	LParen       = syntree.NewType("LParen")
	RParen       = syntree.NewType("RParen")
	Array        = syntree.NewType("Array")
	MapType      = syntree.NewType("Map")
	DoubleLBrace = syntree.NewType("DoubleLBrace")
	DoubleRBrace = syntree.NewType("DoubleRBrace")
	Key          = syntree.NewType("Key")
	Arrow        = syntree.NewType("Arrow")
	TagType      = syntree.NewType("Tag")
	LAngle       = syntree.NewType("LAngle")
	RAngle       = syntree.NewType("RAngle")
	TagText      = syntree.NewType("TagText")
	Emphasis     = syntree.NewType("Emphasis")
	Comment      = syntree.NewType("Comment")
	Invalid      = syntree.NewType("Invalid")
)

//nolint:gochecknoinits // Selector compilation is a one-time, process-lifetime wiring step.
func init() {
	rules := selector.Compile(
		selector.Spec{Selector: "Identifier", Tags: []*tag.Tag{tag.VariableName}},
		selector.Spec{Selector: "Local", Tags: []*tag.Tag{tag.Local(tag.VariableName)}},
		selector.Spec{Selector: "String", Tags: []*tag.Tag{tag.String}},
		selector.Spec{Selector: "Escape", Tags: []*tag.Tag{tag.Escape}},
		selector.Spec{
			Selector: "LParen RParen DoubleLBrace DoubleRBrace LAngle RAngle",
			Tags:     []*tag.Tag{tag.Punctuation},
		},
		selector.Spec{Selector: "Array!", Tags: []*tag.Tag{tag.Atom}},
		selector.Spec{Selector: "Key/Identifier", Tags: []*tag.Tag{tag.PropertyName}},
		selector.Spec{Selector: "Arrow", Tags: []*tag.Tag{tag.Operator}},
		selector.Spec{Selector: "Tag/...", Tags: []*tag.Tag{tag.Literal}},
		selector.Spec{Selector: "Emphasis", Tags: []*tag.Tag{tag.Emphasis}},
		selector.Spec{Selector: "Comment", Tags: []*tag.Tag{tag.LineComment}},
		selector.Spec{Selector: "Invalid", Tags: []*tag.Tag{tag.Invalid}},
	)

	for name, nt := range map[string]*syntree.Type{
		"Identifier":   Identifier,
		"Local":        Local,
		"String":       StringType,
		"Escape":       Escape,
		"LParen":       LParen,
		"RParen":       RParen,
		"DoubleLBrace": DoubleLBrace,
		"DoubleRBrace": DoubleRBrace,
		"LAngle":       LAngle,
		"RAngle":       RAngle,
		"Array":        Array,
		"Key":          Key,
		"Arrow":        Arrow,
		"Tag":          TagType,
		"Emphasis":     Emphasis,
		"Comment":      Comment,
		"Invalid":      Invalid,
	} {
		if r, ok := rules[name]; ok {
			nt.Set(selector.RuleProp, r)
		}
	}
}

// Parse parses src into a tree rooted at [Program].
func Parse(src string) *syntree.Node {
	p := &parser{src: src}

	var forms []*syntree.Node

	for {
		p.skipSpace()

		if p.pos >= len(p.src) {
			break
		}

		forms = append(forms, p.form())
	}

	return &syntree.Node{NodeTyp: Program, FromPos: 0, ToPos: len(src), Children: forms}
}

type parser struct {
	src string
	pos int
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isWordByte(c byte) bool {
	return isLower(c) || isUpper(c) || (c >= '0' && c <= '9')
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}

	return p.src[p.pos]
}

func (p *parser) form() *syntree.Node {
	switch c := p.peek(); {
	case c == '(':
		return p.list()
	case c == '{':
		if p.pos+1 < len(p.src) && p.src[p.pos+1] == '{' {
			return p.mapForm()
		}

		return p.array()
	case c == '<':
		return p.tagForm()
	case c == '"':
		return p.stringForm()
	case c == ';':
		return p.comment()
	case isUpper(c):
		return p.word(Local)
	case isLower(c):
		return p.word(Identifier)
	default:
		start := p.pos
		p.pos++

		return &syntree.Node{NodeTyp: Invalid, FromPos: start, ToPos: p.pos}
	}
}

func (p *parser) word(nt *syntree.Type) *syntree.Node {
	start := p.pos
	for p.pos < len(p.src) && isWordByte(p.src[p.pos]) {
		p.pos++
	}

	return &syntree.Node{NodeTyp: nt, FromPos: start, ToPos: p.pos}
}

func (p *parser) list() *syntree.Node {
	start := p.pos
	p.pos++ // "("

	children := []*syntree.Node{{NodeTyp: LParen, FromPos: start, ToPos: p.pos}}

	for {
		p.skipSpace()

		if p.peek() == ')' || p.pos >= len(p.src) {
			break
		}

		children = append(children, p.form())
	}

	rStart := p.pos
	if p.peek() == ')' {
		p.pos++
	}

	children = append(children, &syntree.Node{NodeTyp: RParen, FromPos: rStart, ToPos: p.pos})

	return &syntree.Node{NodeTyp: List, FromPos: start, ToPos: p.pos, Children: children}
}

// array scans an opaque `{...}` atom; its contents are never descended into
// by the highlighter, so the parser doesn't bother building child nodes —
// it just needs the balanced extent.
func (p *parser) array() *syntree.Node {
	start := p.pos
	p.pos++ // "{"

	depth := 1
	for p.pos < len(p.src) && depth > 0 {
		switch p.src[p.pos] {
		case '{':
			depth++
		case '}':
			depth--
		}

		p.pos++
	}

	return &syntree.Node{NodeTyp: Array, FromPos: start, ToPos: p.pos}
}

func (p *parser) mapForm() *syntree.Node {
	start := p.pos
	p.pos += 2 // "{{"

	children := []*syntree.Node{{NodeTyp: DoubleLBrace, FromPos: start, ToPos: p.pos}}

	for {
		p.skipSpace()

		if p.pos+1 < len(p.src) && p.src[p.pos] == '}' && p.src[p.pos+1] == '}' {
			break
		}

		if p.pos >= len(p.src) {
			break
		}

		keyStart := p.pos
		key := p.word(Identifier)
		children = append(children, &syntree.Node{
			NodeTyp: Key, FromPos: keyStart, ToPos: key.ToPos, Children: []*syntree.Node{key},
		})

		p.skipSpace()

		arrowStart := p.pos
		if p.pos+1 < len(p.src) && p.src[p.pos] == '=' && p.src[p.pos+1] == '>' {
			p.pos += 2
		}

		children = append(children, &syntree.Node{NodeTyp: Arrow, FromPos: arrowStart, ToPos: p.pos})

		p.skipSpace()
		children = append(children, p.form())
	}

	rStart := p.pos
	if p.pos+1 < len(p.src) && p.src[p.pos] == '}' && p.src[p.pos+1] == '}' {
		p.pos += 2
	}

	children = append(children, &syntree.Node{NodeTyp: DoubleRBrace, FromPos: rStart, ToPos: p.pos})

	return &syntree.Node{NodeTyp: MapType, FromPos: start, ToPos: p.pos, Children: children}
}

func (p *parser) stringForm() *syntree.Node {
	start := p.pos
	p.pos++ // opening quote

	var children []*syntree.Node

	for p.pos < len(p.src) {
		switch {
		case p.src[p.pos] == '"':
			p.pos++

			return &syntree.Node{NodeTyp: StringType, FromPos: start, ToPos: p.pos, Children: children}
		case p.src[p.pos] == '\\' && p.pos+1 < len(p.src):
			escStart := p.pos
			p.pos += 2
			children = append(children, &syntree.Node{NodeTyp: Escape, FromPos: escStart, ToPos: p.pos})
		default:
			p.pos++
		}
	}

	return &syntree.Node{NodeTyp: StringType, FromPos: start, ToPos: p.pos, Children: children}
}

func (p *parser) tagForm() *syntree.Node {
	start := p.pos
	p.pos++ // "<"

	children := []*syntree.Node{{NodeTyp: LAngle, FromPos: start, ToPos: p.pos}}

	for p.pos < len(p.src) && p.src[p.pos] != '>' {
		if p.src[p.pos] == '*' {
			eStart := p.pos
			p.pos++

			for p.pos < len(p.src) && p.src[p.pos] != '*' {
				p.pos++
			}

			if p.pos < len(p.src) {
				p.pos++ // closing "*"
			}

			children = append(children, &syntree.Node{NodeTyp: Emphasis, FromPos: eStart, ToPos: p.pos})

			continue
		}

		tStart := p.pos
		for p.pos < len(p.src) && p.src[p.pos] != '*' && p.src[p.pos] != '>' {
			p.pos++
		}

		children = append(children, &syntree.Node{NodeTyp: TagText, FromPos: tStart, ToPos: p.pos})
	}

	rStart := p.pos
	if p.pos < len(p.src) {
		p.pos++
	}

	children = append(children, &syntree.Node{NodeTyp: RAngle, FromPos: rStart, ToPos: p.pos})

	return &syntree.Node{NodeTyp: TagType, FromPos: start, ToPos: p.pos, Children: children}
}

func (p *parser) comment() *syntree.Node {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '\n' {
		p.pos++
	}

	return &syntree.Node{NodeTyp: Comment, FromPos: start, ToPos: p.pos}
}
