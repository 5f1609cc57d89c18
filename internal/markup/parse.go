package markup

import (
	"strconv"
	"strings"
)

// Style is the attribute set of a run. A parsed run carries at most one
// attribute because inline markers never nest.
type Style struct {
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Color     string `json:"color,omitempty"`
	FontSize  int    `json:"fontSize,omitempty"`
}

func (s Style) IsZero() bool { return s == Style{} }

// Run is a span of text sharing one style. Source is the raw slice of the
// line the run was decoded from, markers included.
type Run struct {
	Text   string `json:"text"`
	Source string `json:"-"`
	Style  Style  `json:"style"`
}

// Line is one decoded buffer line.
type Line struct {
	Alignment Alignment `json:"alignment"`
	Prefix    string    `json:"-"`
	Runs      []Run     `json:"runs"`
}

// Text joins the visible text of all runs.
func (l Line) Text() string {
	var b strings.Builder
	for _, r := range l.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Source rebuilds the raw line the runs were decoded from.
func (l Line) Source() string {
	var b strings.Builder
	b.WriteString(l.Prefix)
	for _, r := range l.Runs {
		b.WriteString(r.Source)
	}
	return b.String()
}

// Document is a decoded buffer: line 0 is the title.
type Document struct {
	Title Line   `json:"title"`
	Body  []Line `json:"body"`
}

// Match is a successful rule match at some position.
type Match struct {
	Len     int
	Content string
	Style   Style
}

// Rule recognises one inline marker kind starting exactly at pos.
type Rule interface {
	Name() string
	TryMatch(text []rune, pos int) (Match, bool)
}

// DefaultRules is the fixed precedence used by Parse.
var DefaultRules = []Rule{
	delimited{name: "bold", delim: []rune(BoldMarker), forbid: '*', style: Style{Bold: true}},
	delimited{name: "italic", delim: []rune(ItalicMarker), forbid: '*', style: Style{Italic: true}},
	delimited{name: "underline", delim: []rune(UnderlineMarker), forbid: '_', style: Style{Underline: true}},
	tagged{name: "color", open: []rune("[color:"), close: []rune(colorEnd), param: hexParam, style: func(p string) Style { return Style{Color: p} }},
	tagged{name: "size", open: []rune("[size:"), close: []rune(sizeEnd), param: digitParam, style: func(p string) Style {
		n, _ := strconv.Atoi(p)
		return Style{FontSize: n}
	}},
}

// delimited matches delim, one or more runes other than forbid, delim.
type delimited struct {
	name   string
	delim  []rune
	forbid rune
	style  Style
}

func (d delimited) Name() string { return d.name }

func (d delimited) TryMatch(text []rune, pos int) (Match, bool) {
	if !hasPrefix(text[pos:], d.delim) {
		return Match{}, false
	}
	start := pos + len(d.delim)
	j := start
	for j < len(text) && text[j] != d.forbid {
		j++
	}
	if j == start || !hasPrefix(text[j:], d.delim) {
		return Match{}, false
	}
	return Match{
		Len:     j + len(d.delim) - pos,
		Content: string(text[start:j]),
		Style:   d.style,
	}, true
}

// tagged matches open, a parameter, ']', the shortest content, close.
type tagged struct {
	name  string
	open  []rune
	close []rune
	param func(text []rune, pos int) int
	style func(param string) Style
}

func (t tagged) Name() string { return t.name }

func (t tagged) TryMatch(text []rune, pos int) (Match, bool) {
	if !hasPrefix(text[pos:], t.open) {
		return Match{}, false
	}
	ps := pos + len(t.open)
	pe := t.param(text, ps)
	if pe < 0 || pe >= len(text) || text[pe] != ']' {
		return Match{}, false
	}
	cs := pe + 1
	for j := cs; j+len(t.close) <= len(text); j++ {
		if hasPrefix(text[j:], t.close) {
			return Match{
				Len:     j + len(t.close) - pos,
				Content: string(text[cs:j]),
				Style:   t.style(string(text[ps:pe])),
			}, true
		}
	}
	return Match{}, false
}

// hexParam accepts '#' plus exactly six hex digits and returns the end offset.
func hexParam(text []rune, pos int) int {
	end := pos + 7
	if end > len(text) || !isHexColor(text[pos:end]) {
		return -1
	}
	return end
}

// digitParam accepts one or more ASCII digits.
func digitParam(text []rune, pos int) int {
	j := pos
	for j < len(text) && text[j] >= '0' && text[j] <= '9' {
		j++
	}
	if j == pos {
		return -1
	}
	return j
}

func isHexColor(r []rune) bool {
	if len(r) != 7 || r[0] != '#' {
		return false
	}
	for _, c := range r[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Parse decodes a buffer into its title line and body lines.
func Parse(buffer string) Document {
	lines := strings.Split(buffer, "\n")
	doc := Document{Title: ParseLine(lines[0])}
	doc.Body = make([]Line, 0, len(lines)-1)
	for _, l := range lines[1:] {
		doc.Body = append(doc.Body, ParseLine(l))
	}
	return doc
}

// ParseLine decodes one line with DefaultRules.
func ParseLine(line string) Line {
	return ScanLine(line, DefaultRules)
}

// ScanLine strips the alignment tag and scans the rest left to right. At each
// position the first matching rule wins and its content is emitted as a single
// run without further scanning. Anything no rule matches is plain text.
func ScanLine(line string, rules []Rule) Line {
	a, prefix, rest := AlignmentOf(line)
	out := Line{Alignment: a, Prefix: prefix}
	text := []rune(rest)

	plainFrom := 0
	flush := func(to int) {
		if to > plainFrom {
			s := string(text[plainFrom:to])
			out.Runs = append(out.Runs, Run{Text: s, Source: s})
		}
	}
	for pos := 0; pos < len(text); {
		m, ok := matchAt(text, pos, rules)
		if !ok {
			pos++
			continue
		}
		flush(pos)
		out.Runs = append(out.Runs, Run{
			Text:   m.Content,
			Source: string(text[pos : pos+m.Len]),
			Style:  m.Style,
		})
		pos += m.Len
		plainFrom = pos
	}
	flush(len(text))
	return out
}

func matchAt(text []rune, pos int, rules []Rule) (Match, bool) {
	for _, r := range rules {
		if m, ok := r.TryMatch(text, pos); ok {
			return m, true
		}
	}
	return Match{}, false
}

// PlainText strips every marker the parser recognises.
func PlainText(buffer string) string {
	lines := strings.Split(buffer, "\n")
	for i, l := range lines {
		lines[i] = ParseLine(l).Text()
	}
	return strings.Join(lines, "\n")
}
