package extended

import (
	"github.com/teranos/astypes/as"
	"github.com/teranos/astypes/typemap"
)

// MentionType is the only extended link type.
const MentionType = "Mention"

func registerLinks(r *typemap.Registry) {
	typemap.MustRegister[MentionEntity](r, typemap.Descriptor{TypeName: MentionType, BaseTypeName: as.LinkType})
}

// MentionEntity is the "Mention" facet. A mention keeps its type, so it is
// never collapsed to a bare string.
type MentionEntity struct{}

func (*MentionEntity) RequiresObjectForm() bool { return true }

// NewMention creates a mention of href.
func NewMention(href string) *typemap.TypeMap {
	tm, _ := as.Build[MentionEntity]()
	link, err := typemap.AsEntity[as.LinkEntity](tm)
	if err != nil {
		panic(err)
	}
	link.Href = href
	return tm
}
