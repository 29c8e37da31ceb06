package extended

import (
	"time"

	"github.com/teranos/astypes/as"
	"github.com/teranos/astypes/typemap"
)

// Object type names.
const (
	ArticleType      = "Article"
	AudioType        = "Audio"
	DocumentType     = "Document"
	EventType        = "Event"
	ImageType        = "Image"
	NoteType         = "Note"
	PageType         = "Page"
	PlaceType        = "Place"
	ProfileType      = "Profile"
	RelationshipType = "Relationship"
	TombstoneType    = "Tombstone"
	VideoType        = "Video"
)

func registerObjects(r *typemap.Registry) {
	typemap.MustRegister[ArticleEntity](r, typemap.Descriptor{TypeName: ArticleType, BaseTypeName: as.ObjectType})
	typemap.MustRegister[DocumentEntity](r, typemap.Descriptor{TypeName: DocumentType, BaseTypeName: as.ObjectType})
	typemap.MustRegister[AudioEntity](r, typemap.Descriptor{TypeName: AudioType, BaseTypeName: DocumentType})
	typemap.MustRegister[ImageEntity](r, typemap.Descriptor{TypeName: ImageType, BaseTypeName: DocumentType})
	typemap.MustRegister[PageEntity](r, typemap.Descriptor{TypeName: PageType, BaseTypeName: DocumentType})
	typemap.MustRegister[VideoEntity](r, typemap.Descriptor{TypeName: VideoType, BaseTypeName: DocumentType})
	typemap.MustRegister[EventEntity](r, typemap.Descriptor{TypeName: EventType, BaseTypeName: as.ObjectType})
	typemap.MustRegister[NoteEntity](r, typemap.Descriptor{TypeName: NoteType, BaseTypeName: as.ObjectType})
	typemap.MustRegister[PlaceEntity](r, typemap.Descriptor{TypeName: PlaceType, BaseTypeName: as.ObjectType})
	typemap.MustRegister[ProfileEntity](r, typemap.Descriptor{TypeName: ProfileType, BaseTypeName: as.ObjectType})
	typemap.MustRegister[RelationshipEntity](r, typemap.Descriptor{TypeName: RelationshipType, BaseTypeName: as.ObjectType})
	typemap.MustRegister[TombstoneEntity](r, typemap.Descriptor{TypeName: TombstoneType, BaseTypeName: as.ObjectType})
}

// ArticleEntity is the "Article" facet.
type ArticleEntity struct{}

func (*ArticleEntity) RequiresObjectForm() bool { return true }

// DocumentEntity is the "Document" facet.
type DocumentEntity struct{}

func (*DocumentEntity) RequiresObjectForm() bool { return true }

// AudioEntity is the "Audio" facet.
type AudioEntity struct{}

func (*AudioEntity) RequiresObjectForm() bool { return true }

// ImageEntity is the "Image" facet.
type ImageEntity struct{}

func (*ImageEntity) RequiresObjectForm() bool { return true }

// PageEntity is the "Page" facet.
type PageEntity struct{}

func (*PageEntity) RequiresObjectForm() bool { return true }

// VideoEntity is the "Video" facet.
type VideoEntity struct{}

func (*VideoEntity) RequiresObjectForm() bool { return true }

// EventEntity is the "Event" facet.
type EventEntity struct{}

func (*EventEntity) RequiresObjectForm() bool { return true }

// NoteEntity is the "Note" facet.
type NoteEntity struct{}

func (*NoteEntity) RequiresObjectForm() bool { return true }

// PlaceEntity is the "Place" facet.
type PlaceEntity struct {
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Altitude  *float64 `json:"altitude,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Radius    *float64 `json:"radius,omitempty"`
	Units     string   `json:"units,omitempty"`
}

func (*PlaceEntity) RequiresObjectForm() bool { return true }

// ProfileEntity is the "Profile" facet.
type ProfileEntity struct {
	Describes *typemap.TypeMap `json:"describes,omitempty"`
}

func (*ProfileEntity) RequiresObjectForm() bool { return true }

// RelationshipEntity is the "Relationship" facet. Its "object" property is
// owned by Activity, so on a Relationship node it stays unmapped.
type RelationshipEntity struct {
	Subject      *typemap.TypeMap   `json:"subject,omitempty"`
	Relationship []*typemap.TypeMap `json:"relationship,omitempty"`
}

func (*RelationshipEntity) RequiresObjectForm() bool { return true }

// TombstoneEntity is the "Tombstone" facet.
type TombstoneEntity struct {
	FormerType []string   `json:"formerType,omitempty"`
	Deleted    *time.Time `json:"deleted,omitempty"`
}

func (*TombstoneEntity) RequiresObjectForm() bool { return true }

// NewNote creates a "Note" and returns its Object facet.
func NewNote() (*typemap.TypeMap, *as.ObjectEntity) {
	return object[NoteEntity]()
}

// NewArticle creates an "Article" and returns its Object facet.
func NewArticle() (*typemap.TypeMap, *as.ObjectEntity) {
	return object[ArticleEntity]()
}

// NewImage creates an "Image" and returns its Object facet.
func NewImage() (*typemap.TypeMap, *as.ObjectEntity) {
	return object[ImageEntity]()
}

// NewTombstone marks a deleted object.
func NewTombstone(id string, formerType ...string) *typemap.TypeMap {
	tm, t := as.Build[TombstoneEntity]()
	as.Base(tm).ID = id
	t.FormerType = formerType
	return tm
}

func object[F any, P typemap.FacetPtr[F]]() (*typemap.TypeMap, *as.ObjectEntity) {
	tm, _ := as.Build[F, P]()
	obj, err := typemap.AsEntity[as.ObjectEntity](tm)
	if err != nil {
		panic(err)
	}
	return tm, obj
}
