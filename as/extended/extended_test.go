package extended_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/astypes/as"
	"github.com/teranos/astypes/as/extended"
	"github.com/teranos/astypes/typemap"
)

func TestRegistered(t *testing.T) {
	var reg *typemap.Registry
	require.NotPanics(t, func() { reg = typemap.Default() })

	for _, name := range []string{
		extended.CreateType, extended.TentativeAcceptType, extended.QuestionType,
		extended.NoteType, extended.ImageType, extended.PlaceType, extended.TombstoneType,
		extended.MentionType,
	} {
		_, ok := reg.Lookup(name)
		assert.True(t, ok, name)
	}
}

func TestBaseChains(t *testing.T) {
	reg := typemap.Default()

	tests := []struct {
		typeName string
		want     []string
	}{
		{extended.BlockType, []string{"Object", "Activity", "Ignore", "Block"}},
		{extended.InviteType, []string{"Object", "Activity", "Offer", "Invite"}},
		{extended.TentativeRejectType, []string{"Object", "Activity", "Reject", "TentativeReject"}},
		{extended.QuestionType, []string{"Object", "Activity", "IntransitiveActivity", "Question"}},
		{extended.VideoType, []string{"Object", "Document", "Video"}},
		{extended.MentionType, []string{"Link", "Mention"}},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			d, ok := reg.Lookup(tt.typeName)
			require.True(t, ok)
			var got []string
			for _, anc := range reg.Chain(d) {
				got = append(got, anc.TypeName)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActivityConstructors(t *testing.T) {
	tests := []struct {
		name string
		new  func() (*typemap.TypeMap, *as.ActivityEntity)
		want string
	}{
		{"create", extended.NewCreate, extended.CreateType},
		{"follow", extended.NewFollow, extended.FollowType},
		{"like", extended.NewLike, extended.LikeType},
		{"announce", extended.NewAnnounce, extended.AnnounceType},
		{"undo", extended.NewUndo, extended.UndoType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, act := tt.new()
			require.NotNil(t, act)
			assert.Equal(t, []string{tt.want}, tm.Types())
			assert.True(t, typemap.IsModel[as.ObjectEntity](tm))
		})
	}
}

func TestObjectConstructors(t *testing.T) {
	note, obj := extended.NewNote()
	obj.Content = "hello"
	assert.Equal(t, []string{extended.NoteType}, note.Types())

	image, _ := extended.NewImage()
	assert.Equal(t, []string{extended.ImageType}, image.Types())
	assert.True(t, typemap.IsModel[extended.DocumentEntity](image))

	article, _ := extended.NewArticle()
	assert.Equal(t, []string{extended.ArticleType}, article.Types())
}

func TestNewTombstone(t *testing.T) {
	tm := extended.NewTombstone("https://example.com/n/1", extended.NoteType)
	assert.Equal(t, "https://example.com/n/1", as.ID(tm))

	ts, err := typemap.AsEntity[extended.TombstoneEntity](tm)
	require.NoError(t, err)
	assert.Equal(t, []string{"Note"}, ts.FormerType)
}

func TestNewMention(t *testing.T) {
	tm := extended.NewMention("https://example.com/bob")
	assert.Equal(t, []string{extended.MentionType}, tm.Types())
	assert.Equal(t, "https://example.com/bob", as.ID(tm))

	m, err := typemap.AsEntity[extended.MentionEntity](tm)
	require.NoError(t, err)
	assert.True(t, m.RequiresObjectForm())
}
