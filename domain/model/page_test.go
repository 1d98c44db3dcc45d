package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	p := NewPage([]string{"a", "b"}, 25, 2, 10)

	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasPrevPage)
	assert.True(t, p.HasNextPage)
	require.NotNil(t, p.PrevPage)
	require.NotNil(t, p.NextPage)
	assert.Equal(t, 1, *p.PrevPage)
	assert.Equal(t, 3, *p.NextPage)
}

func TestNewPage_Empty(t *testing.T) {
	p := NewPage[string](nil, 0, 1, 10)

	assert.NotNil(t, p.Docs)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.Nil(t, p.NextPage)
	assert.Nil(t, p.PrevPage)
}

func TestNormalizePage(t *testing.T) {
	page, limit := NormalizePage(0, 500)
	assert.Equal(t, 1, page)
	assert.Equal(t, MaxPageLimit, limit)

	page, limit = NormalizePage(3, 0)
	assert.Equal(t, 3, page)
	assert.Equal(t, DefaultPageLimit, limit)
}

func TestNewLike(t *testing.T) {
	like := NewLike(LikeTarget{Kind: LikeComment, ID: [12]byte{1}}, [12]byte{2})

	require.NotNil(t, like.Comment)
	assert.Nil(t, like.Video)
	assert.Nil(t, like.CommunityPost)
	assert.Equal(t, "comment", LikeTarget{Kind: LikeComment}.Field())
}
