package as

import (
	"github.com/teranos/astypes/typemap"
)

// LinkEntity is the "Link" facet. A link carrying only its href is written
// as a bare string.
type LinkEntity struct {
	Href     string   `json:"href,omitempty"`
	Rel      []string `json:"rel,omitempty"`
	HrefLang string   `json:"hreflang,omitempty"`
	Height   *uint    `json:"height,omitempty"`
	Width    *uint    `json:"width,omitempty"`
}

// RequiresObjectForm reports whether anything besides href is set.
func (l *LinkEntity) RequiresObjectForm() bool {
	return len(l.Rel) > 0 || l.HrefLang != "" || l.Height != nil || l.Width != nil
}

func (l *LinkEntity) HRef() string        { return l.Href }
func (l *LinkEntity) SetHRef(href string) { l.Href = href }

// NewLink creates a reference-only link.
func NewLink(href string) *typemap.TypeMap {
	tm, l := Build[LinkEntity]()
	l.Href = href
	return tm
}

// Refs turns IRIs into links, for use in node-valued fields.
func Refs(hrefs ...string) []*typemap.TypeMap {
	out := make([]*typemap.TypeMap, len(hrefs))
	for i, href := range hrefs {
		out[i] = NewLink(href)
	}
	return out
}
