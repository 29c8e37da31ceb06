package as

import (
	"time"

	"github.com/teranos/astypes/typemap"
)

// ObjectEntity is the "Object" facet. Date-time properties are written in
// RFC 3339 form with the offset they were read with and without trailing
// zero fractional seconds.
type ObjectEntity struct {
	Attachment []*typemap.TypeMap `json:"attachment,omitempty"`
	Audience   []*typemap.TypeMap `json:"audience,omitempty"`
	BCC        []*typemap.TypeMap `json:"bcc,omitempty"`
	BTo        []*typemap.TypeMap `json:"bto,omitempty"`
	CC         []*typemap.TypeMap `json:"cc,omitempty"`
	Content    string             `json:"content,omitempty"`
	ContentMap map[string]string  `json:"contentMap,omitempty"`
	Context    []*typemap.TypeMap `json:"context,omitempty"`
	Duration   string             `json:"duration,omitempty"`
	EndTime    *time.Time         `json:"endTime,omitempty"`
	Generator  []*typemap.TypeMap `json:"generator,omitempty"`
	Icon       []*typemap.TypeMap `json:"icon,omitempty"`
	Image      []*typemap.TypeMap `json:"image,omitempty"`
	InReplyTo  []*typemap.TypeMap `json:"inReplyTo,omitempty"`
	Location   []*typemap.TypeMap `json:"location,omitempty"`
	Published  *time.Time         `json:"published,omitempty"`
	Replies    *typemap.TypeMap   `json:"replies,omitempty"`
	StartTime  *time.Time         `json:"startTime,omitempty"`
	Summary    string             `json:"summary,omitempty"`
	SummaryMap map[string]string  `json:"summaryMap,omitempty"`
	Tag        []*typemap.TypeMap `json:"tag,omitempty"`
	To         []*typemap.TypeMap `json:"to,omitempty"`
	Updated    *time.Time         `json:"updated,omitempty"`
	URL        []*typemap.TypeMap `json:"url,omitempty"`
	Likes      *typemap.TypeMap   `json:"likes,omitempty"`
	Shares     *typemap.TypeMap   `json:"shares,omitempty"`
	Source     *typemap.TypeMap   `json:"source,omitempty"`
}

func (*ObjectEntity) RequiresObjectForm() bool { return true }

// NewObject creates a node typed "Object".
func NewObject() (*typemap.TypeMap, *ObjectEntity) {
	return Build[ObjectEntity]()
}
