// Package as defines the core ActivityStreams 2.0 facets: the structural
// properties every node shares, Object, Link, Activity, the actor
// properties, and collections.
//
// Importing the package registers its facets in typemap.Global().
package as

import (
	"github.com/teranos/astypes/jsontree"
	"github.com/teranos/astypes/typemap"
)

// Type names of the core vocabulary.
const (
	ObjectType                = "Object"
	LinkType                  = "Link"
	ActivityType              = "Activity"
	IntransitiveActivityType  = "IntransitiveActivity"
	CollectionType            = "Collection"
	OrderedCollectionType     = "OrderedCollection"
	CollectionPageType        = "CollectionPage"
	OrderedCollectionPageType = "OrderedCollectionPage"
	ApplicationType           = "Application"
	GroupType                 = "Group"
	OrganizationType          = "Organization"
	PersonType                = "Person"
	ServiceType               = "Service"
)

func init() {
	r := typemap.Global()

	typemap.MustRegister[TypeEntity](r, typemap.Descriptor{Implicit: true})
	typemap.MustRegister[ObjectEntity](r, typemap.Descriptor{TypeName: ObjectType})
	typemap.MustRegister[LinkEntity](r, typemap.Descriptor{TypeName: LinkType})

	typemap.MustRegister[ActivityEntity](r, typemap.Descriptor{TypeName: ActivityType, BaseTypeName: ObjectType})
	typemap.MustRegister[IntransitiveActivityEntity](r, typemap.Descriptor{TypeName: IntransitiveActivityType, BaseTypeName: ActivityType})

	typemap.MustRegister[ActorEntity](r, typemap.Descriptor{Anonymous: isActor})
	typemap.MustRegister[ApplicationEntity](r, typemap.Descriptor{TypeName: ApplicationType, BaseTypeName: ObjectType})
	typemap.MustRegister[GroupEntity](r, typemap.Descriptor{TypeName: GroupType, BaseTypeName: ObjectType})
	typemap.MustRegister[OrganizationEntity](r, typemap.Descriptor{TypeName: OrganizationType, BaseTypeName: ObjectType})
	typemap.MustRegister[PersonEntity](r, typemap.Descriptor{TypeName: PersonType, BaseTypeName: ObjectType})
	typemap.MustRegister[ServiceEntity](r, typemap.Descriptor{TypeName: ServiceType, BaseTypeName: ObjectType})

	typemap.MustRegister[CollectionEntity](r, typemap.Descriptor{TypeName: CollectionType, BaseTypeName: ObjectType})
	typemap.MustRegister[OrderedCollectionEntity](r, typemap.Descriptor{TypeName: OrderedCollectionType, BaseTypeName: CollectionType})
	typemap.MustRegister[CollectionPageEntity](r, typemap.Descriptor{TypeName: CollectionPageType, BaseTypeName: CollectionType})
	typemap.MustRegister[OrderedCollectionPageEntity](r, typemap.Descriptor{TypeName: OrderedCollectionPageType, BaseTypeName: CollectionPageType})
}

// TypeEntity holds the properties shared by objects and links. Every node
// owns one.
type TypeEntity struct {
	ID           string             `json:"id,omitempty"`
	AttributedTo []*typemap.TypeMap `json:"attributedTo,omitempty"`
	Name         string             `json:"name,omitempty"`
	NameMap      map[string]string  `json:"nameMap,omitempty"`
	Preview      []*typemap.TypeMap `json:"preview,omitempty"`
	MediaType    string             `json:"mediaType,omitempty"`
}

// RequiresObjectForm reports whether any structural property is set.
func (t *TypeEntity) RequiresObjectForm() bool {
	return t.ID != "" || len(t.AttributedTo) > 0 || t.Name != "" ||
		len(t.NameMap) > 0 || len(t.Preview) > 0 || t.MediaType != ""
}

// New creates an empty node bound to the default registry.
func New() *typemap.TypeMap {
	return typemap.New(nil)
}

// Base returns the structural facet of tm.
func Base(tm *typemap.TypeMap) *TypeEntity {
	t, err := typemap.Project[TypeEntity](tm, true)
	if err != nil {
		panic(err)
	}
	return t
}

// ID returns the "id" of tm, or "" for anonymous nodes and bare links.
func ID(tm *typemap.TypeMap) string {
	if t, err := typemap.AsEntity[TypeEntity](tm); err == nil && t.ID != "" {
		return t.ID
	}
	if l, err := typemap.AsEntity[LinkEntity](tm); err == nil {
		return l.Href
	}
	return ""
}

// Build creates a node owning facet F and its ancestors. F must be
// registered; anything else is a programming error and panics.
func Build[F any, P typemap.FacetPtr[F]]() (*typemap.TypeMap, P) {
	tm := typemap.New(nil)
	f, err := typemap.Project[F, P](tm, true)
	if err != nil {
		panic(err)
	}
	return tm, f
}

func hasAny(props *jsontree.Object, keys ...string) bool {
	for _, k := range keys {
		if props.Has(k) {
			return true
		}
	}
	return false
}
