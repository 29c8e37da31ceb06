package extended

import (
	"github.com/teranos/astypes/as"
	"github.com/teranos/astypes/jsontree"
	"github.com/teranos/astypes/typemap"
)

// Activity type names.
const (
	AcceptType          = "Accept"
	AddType             = "Add"
	AnnounceType        = "Announce"
	ArriveType          = "Arrive"
	BlockType           = "Block"
	CreateType          = "Create"
	DeleteType          = "Delete"
	DislikeType         = "Dislike"
	FlagType            = "Flag"
	FollowType          = "Follow"
	IgnoreType          = "Ignore"
	InviteType          = "Invite"
	JoinType            = "Join"
	LeaveType           = "Leave"
	LikeType            = "Like"
	ListenType          = "Listen"
	MoveType            = "Move"
	OfferType           = "Offer"
	QuestionType        = "Question"
	ReadType            = "Read"
	RejectType          = "Reject"
	RemoveType          = "Remove"
	TentativeAcceptType = "TentativeAccept"
	TentativeRejectType = "TentativeReject"
	TravelType          = "Travel"
	UndoType            = "Undo"
	UpdateType          = "Update"
	ViewType            = "View"
)

func registerActivities(r *typemap.Registry) {
	typemap.MustRegister[AcceptEntity](r, typemap.Descriptor{TypeName: AcceptType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[AddEntity](r, typemap.Descriptor{TypeName: AddType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[AnnounceEntity](r, typemap.Descriptor{TypeName: AnnounceType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[ArriveEntity](r, typemap.Descriptor{TypeName: ArriveType, BaseTypeName: as.IntransitiveActivityType})
	typemap.MustRegister[BlockEntity](r, typemap.Descriptor{TypeName: BlockType, BaseTypeName: IgnoreType})
	typemap.MustRegister[CreateEntity](r, typemap.Descriptor{TypeName: CreateType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[DeleteEntity](r, typemap.Descriptor{TypeName: DeleteType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[DislikeEntity](r, typemap.Descriptor{TypeName: DislikeType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[FlagEntity](r, typemap.Descriptor{TypeName: FlagType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[FollowEntity](r, typemap.Descriptor{TypeName: FollowType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[IgnoreEntity](r, typemap.Descriptor{TypeName: IgnoreType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[InviteEntity](r, typemap.Descriptor{TypeName: InviteType, BaseTypeName: OfferType})
	typemap.MustRegister[JoinEntity](r, typemap.Descriptor{TypeName: JoinType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[LeaveEntity](r, typemap.Descriptor{TypeName: LeaveType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[LikeEntity](r, typemap.Descriptor{TypeName: LikeType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[ListenEntity](r, typemap.Descriptor{TypeName: ListenType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[MoveEntity](r, typemap.Descriptor{TypeName: MoveType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[OfferEntity](r, typemap.Descriptor{TypeName: OfferType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[ReadEntity](r, typemap.Descriptor{TypeName: ReadType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[RejectEntity](r, typemap.Descriptor{TypeName: RejectType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[RemoveEntity](r, typemap.Descriptor{TypeName: RemoveType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[TentativeAcceptEntity](r, typemap.Descriptor{TypeName: TentativeAcceptType, BaseTypeName: AcceptType})
	typemap.MustRegister[TentativeRejectEntity](r, typemap.Descriptor{TypeName: TentativeRejectType, BaseTypeName: RejectType})
	typemap.MustRegister[TravelEntity](r, typemap.Descriptor{TypeName: TravelType, BaseTypeName: as.IntransitiveActivityType})
	typemap.MustRegister[UndoEntity](r, typemap.Descriptor{TypeName: UndoType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[UpdateEntity](r, typemap.Descriptor{TypeName: UpdateType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[ViewEntity](r, typemap.Descriptor{TypeName: ViewType, BaseTypeName: as.ActivityType})
	typemap.MustRegister[QuestionEntity](r, typemap.Descriptor{TypeName: QuestionType, BaseTypeName: as.IntransitiveActivityType})
}

// AcceptEntity is the "Accept" facet.
type AcceptEntity struct{}

func (*AcceptEntity) RequiresObjectForm() bool { return true }

// AddEntity is the "Add" facet.
type AddEntity struct{}

func (*AddEntity) RequiresObjectForm() bool { return true }

// AnnounceEntity is the "Announce" facet.
type AnnounceEntity struct{}

func (*AnnounceEntity) RequiresObjectForm() bool { return true }

// ArriveEntity is the "Arrive" facet.
type ArriveEntity struct{}

func (*ArriveEntity) RequiresObjectForm() bool { return true }

// BlockEntity is the "Block" facet.
type BlockEntity struct{}

func (*BlockEntity) RequiresObjectForm() bool { return true }

// CreateEntity is the "Create" facet.
type CreateEntity struct{}

func (*CreateEntity) RequiresObjectForm() bool { return true }

// DeleteEntity is the "Delete" facet.
type DeleteEntity struct{}

func (*DeleteEntity) RequiresObjectForm() bool { return true }

// DislikeEntity is the "Dislike" facet.
type DislikeEntity struct{}

func (*DislikeEntity) RequiresObjectForm() bool { return true }

// FlagEntity is the "Flag" facet.
type FlagEntity struct{}

func (*FlagEntity) RequiresObjectForm() bool { return true }

// FollowEntity is the "Follow" facet.
type FollowEntity struct{}

func (*FollowEntity) RequiresObjectForm() bool { return true }

// IgnoreEntity is the "Ignore" facet.
type IgnoreEntity struct{}

func (*IgnoreEntity) RequiresObjectForm() bool { return true }

// InviteEntity is the "Invite" facet.
type InviteEntity struct{}

func (*InviteEntity) RequiresObjectForm() bool { return true }

// JoinEntity is the "Join" facet.
type JoinEntity struct{}

func (*JoinEntity) RequiresObjectForm() bool { return true }

// LeaveEntity is the "Leave" facet.
type LeaveEntity struct{}

func (*LeaveEntity) RequiresObjectForm() bool { return true }

// LikeEntity is the "Like" facet.
type LikeEntity struct{}

func (*LikeEntity) RequiresObjectForm() bool { return true }

// ListenEntity is the "Listen" facet.
type ListenEntity struct{}

func (*ListenEntity) RequiresObjectForm() bool { return true }

// MoveEntity is the "Move" facet.
type MoveEntity struct{}

func (*MoveEntity) RequiresObjectForm() bool { return true }

// OfferEntity is the "Offer" facet.
type OfferEntity struct{}

func (*OfferEntity) RequiresObjectForm() bool { return true }

// ReadEntity is the "Read" facet.
type ReadEntity struct{}

func (*ReadEntity) RequiresObjectForm() bool { return true }

// RejectEntity is the "Reject" facet.
type RejectEntity struct{}

func (*RejectEntity) RequiresObjectForm() bool { return true }

// RemoveEntity is the "Remove" facet.
type RemoveEntity struct{}

func (*RemoveEntity) RequiresObjectForm() bool { return true }

// TentativeAcceptEntity is the "TentativeAccept" facet.
type TentativeAcceptEntity struct{}

func (*TentativeAcceptEntity) RequiresObjectForm() bool { return true }

// TentativeRejectEntity is the "TentativeReject" facet.
type TentativeRejectEntity struct{}

func (*TentativeRejectEntity) RequiresObjectForm() bool { return true }

// TravelEntity is the "Travel" facet.
type TravelEntity struct{}

func (*TravelEntity) RequiresObjectForm() bool { return true }

// UndoEntity is the "Undo" facet.
type UndoEntity struct{}

func (*UndoEntity) RequiresObjectForm() bool { return true }

// UpdateEntity is the "Update" facet.
type UpdateEntity struct{}

func (*UpdateEntity) RequiresObjectForm() bool { return true }

// ViewEntity is the "View" facet.
type ViewEntity struct{}

func (*ViewEntity) RequiresObjectForm() bool { return true }

// QuestionEntity is the "Question" facet. Only one of OneOf and AnyOf is
// meant to be set.
type QuestionEntity struct {
	OneOf  []*typemap.TypeMap `json:"oneOf,omitempty"`
	AnyOf  []*typemap.TypeMap `json:"anyOf,omitempty"`
	Closed jsontree.Value     `json:"closed,omitempty"`
}

func (*QuestionEntity) RequiresObjectForm() bool { return true }

// NewCreate creates a "Create" activity.
func NewCreate() (*typemap.TypeMap, *as.ActivityEntity) {
	return activity[CreateEntity]()
}

// NewFollow creates a "Follow" activity.
func NewFollow() (*typemap.TypeMap, *as.ActivityEntity) {
	return activity[FollowEntity]()
}

// NewLike creates a "Like" activity.
func NewLike() (*typemap.TypeMap, *as.ActivityEntity) {
	return activity[LikeEntity]()
}

// NewAnnounce creates an "Announce" activity.
func NewAnnounce() (*typemap.TypeMap, *as.ActivityEntity) {
	return activity[AnnounceEntity]()
}

// NewUndo creates an "Undo" activity.
func NewUndo() (*typemap.TypeMap, *as.ActivityEntity) {
	return activity[UndoEntity]()
}

// activity builds an activity of kind F and returns its Activity facet,
// which is where the interesting fields live.
func activity[F any, P typemap.FacetPtr[F]]() (*typemap.TypeMap, *as.ActivityEntity) {
	tm, _ := as.Build[F, P]()
	act, err := typemap.AsEntity[as.ActivityEntity](tm)
	if err != nil {
		panic(err)
	}
	return tm, act
}
