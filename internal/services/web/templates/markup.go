package templates

import (
	"io"

	"github.com/a-h/templ"
)

// markup accumulates writes and keeps the first error so components can emit
// a sequence of fragments without checking each one.
type markup struct {
	w   io.Writer
	err error
}

func newMarkup(w io.Writer) *markup {
	return &markup{w: w}
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) attr(name, value string) {
	m.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

func (m *markup) href(value string) {
	m.attr("href", string(templ.URL(value)))
}
