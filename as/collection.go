package as

import (
	"github.com/teranos/astypes/typemap"
)

// CollectionEntity is the "Collection" facet.
type CollectionEntity struct {
	TotalItems *uint              `json:"totalItems,omitempty"`
	Current    *typemap.TypeMap   `json:"current,omitempty"`
	First      *typemap.TypeMap   `json:"first,omitempty"`
	Last       *typemap.TypeMap   `json:"last,omitempty"`
	Items      []*typemap.TypeMap `json:"items,omitempty"`
}

func (*CollectionEntity) RequiresObjectForm() bool { return true }

// OrderedCollectionEntity is the "OrderedCollection" facet.
type OrderedCollectionEntity struct {
	OrderedItems []*typemap.TypeMap `json:"orderedItems,omitempty"`
}

func (*OrderedCollectionEntity) RequiresObjectForm() bool { return true }

// CollectionPageEntity is the "CollectionPage" facet.
type CollectionPageEntity struct {
	PartOf *typemap.TypeMap `json:"partOf,omitempty"`
	Next   *typemap.TypeMap `json:"next,omitempty"`
	Prev   *typemap.TypeMap `json:"prev,omitempty"`
}

func (*CollectionPageEntity) RequiresObjectForm() bool { return true }

// OrderedCollectionPageEntity is the "OrderedCollectionPage" facet. It
// extends CollectionPage; its "orderedItems" are kept as unmapped data
// unless the node is also an OrderedCollection.
type OrderedCollectionPageEntity struct {
	StartIndex *uint `json:"startIndex,omitempty"`
}

func (*OrderedCollectionPageEntity) RequiresObjectForm() bool { return true }

// NewCollection creates a node typed "Collection".
func NewCollection() (*typemap.TypeMap, *CollectionEntity) {
	return Build[CollectionEntity]()
}

// NewOrderedCollection creates a node typed "OrderedCollection".
func NewOrderedCollection() (*typemap.TypeMap, *OrderedCollectionEntity) {
	return Build[OrderedCollectionEntity]()
}
