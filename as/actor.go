package as

import (
	"github.com/teranos/astypes/jsontree"
	"github.com/teranos/astypes/typemap"
)

// ActorEntity carries the ActivityPub actor properties. ActivityStreams has
// no "Actor" type name, so the facet attaches to any node that has an inbox
// or outbox.
type ActorEntity struct {
	Inbox             *typemap.TypeMap   `json:"inbox,omitempty"`
	Outbox            *typemap.TypeMap   `json:"outbox,omitempty"`
	Following         *typemap.TypeMap   `json:"following,omitempty"`
	Followers         *typemap.TypeMap   `json:"followers,omitempty"`
	Liked             *typemap.TypeMap   `json:"liked,omitempty"`
	PreferredUsername string             `json:"preferredUsername,omitempty"`
	Endpoints         jsontree.Value     `json:"endpoints,omitempty"`
	Streams           []*typemap.TypeMap `json:"streams,omitempty"`
}

func (*ActorEntity) RequiresObjectForm() bool { return true }

func isActor(props *jsontree.Object) bool {
	return hasAny(props, "inbox", "outbox")
}

// ApplicationEntity is the "Application" facet.
type ApplicationEntity struct{}

func (*ApplicationEntity) RequiresObjectForm() bool { return true }

// GroupEntity is the "Group" facet.
type GroupEntity struct{}

func (*GroupEntity) RequiresObjectForm() bool { return true }

// OrganizationEntity is the "Organization" facet.
type OrganizationEntity struct{}

func (*OrganizationEntity) RequiresObjectForm() bool { return true }

// PersonEntity is the "Person" facet.
type PersonEntity struct{}

func (*PersonEntity) RequiresObjectForm() bool { return true }

// ServiceEntity is the "Service" facet.
type ServiceEntity struct{}

func (*ServiceEntity) RequiresObjectForm() bool { return true }

// NewPerson creates a "Person" node with the actor facet attached.
func NewPerson() (*typemap.TypeMap, *ActorEntity) {
	tm, _ := Build[PersonEntity]()
	actor, err := typemap.Extend[ActorEntity](tm)
	if err != nil {
		panic(err)
	}
	return tm, actor
}
