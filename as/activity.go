package as

import (
	"github.com/teranos/astypes/typemap"
)

// ActivityEntity is the "Activity" facet.
type ActivityEntity struct {
	Actor      []*typemap.TypeMap `json:"actor,omitempty"`
	Object     []*typemap.TypeMap `json:"object,omitempty"`
	Target     []*typemap.TypeMap `json:"target,omitempty"`
	Result     []*typemap.TypeMap `json:"result,omitempty"`
	Origin     []*typemap.TypeMap `json:"origin,omitempty"`
	Instrument []*typemap.TypeMap `json:"instrument,omitempty"`
}

func (*ActivityEntity) RequiresObjectForm() bool { return true }

// IntransitiveActivityEntity is the "IntransitiveActivity" facet: an
// activity without an object.
type IntransitiveActivityEntity struct{}

func (*IntransitiveActivityEntity) RequiresObjectForm() bool { return true }

// NewActivity creates a node typed "Activity".
func NewActivity() (*typemap.TypeMap, *ActivityEntity) {
	return Build[ActivityEntity]()
}
