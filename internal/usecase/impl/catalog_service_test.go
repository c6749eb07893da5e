package impl

import (
	"context"
	"testing"

	"tabiptv/internal/domain/entity"
	domainerrors "tabiptv/internal/domain/errors"
	"tabiptv/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService() usecase.CatalogUsecase {
	return NewCatalogService(newMemTxManager(), newDiscardLogger())
}

func TestCatalogService_CreateChannel(t *testing.T) {
	srv := createTestCatalogService()
	ctx := context.Background()

	channel, err := srv.CreateChannel(ctx, usecase.CreateChannelInput{
		GroupTitle: "News",
		TvgID:      "CCTV-1",
		TvgName:    "CCTV-1",
		TvgURL:     "http://example.com/cctv1.m3u8",
	})
	require.NoError(t, err)
	assert.NotZero(t, channel.ID)
	assert.Equal(t, "News", channel.GroupTitle)
	assert.NotEmpty(t, channel.CreatedAt)
	assert.Equal(t, channel.CreatedAt, channel.UpdatedAt)
	assert.False(t, channel.Deleted)
}

func TestCatalogService_CreateChannel_DefaultsGroupTitle(t *testing.T) {
	srv := createTestCatalogService()
	ctx := context.Background()

	channel, err := srv.CreateChannel(ctx, usecase.CreateChannelInput{
		TvgName: "Unsorted",
		TvgURL:  "http://example.com/x.m3u8",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultGroupTitle, channel.GroupTitle)
}

func TestCatalogService_GetChannel_NotFound(t *testing.T) {
	srv := createTestCatalogService()

	_, err := srv.GetChannel(context.Background(), 42)
	assert.True(t, errors.Is(err, domainerrors.ErrChannelNotFound))
}

func TestCatalogService_GetChannel_IncludesDeleted(t *testing.T) {
	srv := createTestCatalogService()
	ctx := context.Background()

	created, err := srv.CreateChannel(ctx, usecase.CreateChannelInput{TvgName: "A", TvgURL: "http://a"})
	require.NoError(t, err)

	deleted := true
	_, err = srv.UpdateChannel(ctx, created.ID, entity.ChannelPatch{Deleted: &deleted})
	require.NoError(t, err)

	// Direct lookup still resolves soft-deleted channels.
	found, err := srv.GetChannel(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found.Deleted)
}

func TestCatalogService_ListChannels_Paging(t *testing.T) {
	srv := createTestCatalogService()
	ctx := context.Background()

	names := []string{"A", "B", "C", "D", "E"}
	for _, name := range names {
		_, err := srv.CreateChannel(ctx, usecase.CreateChannelInput{TvgName: name, TvgURL: "http://" + name})
		require.NoError(t, err)
	}

	// Page 0 returns everything.
	all, err := srv.ListChannels(ctx, usecase.ListChannelsInput{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	// Page 2 of size 2 returns the third and fourth entries.
	page, err := srv.ListChannels(ctx, usecase.ListChannelsInput{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "C", page[0].TvgName)
	assert.Equal(t, "D", page[1].TvgName)
}

func TestCatalogService_ListChannels_SkipsDeleted(t *testing.T) {
	srv := createTestCatalogService()
	ctx := context.Background()

	kept, err := srv.CreateChannel(ctx, usecase.CreateChannelInput{TvgName: "Kept", TvgURL: "http://kept"})
	require.NoError(t, err)

	hidden, err := srv.CreateChannel(ctx, usecase.CreateChannelInput{TvgName: "Hidden", TvgURL: "http://hidden"})
	require.NoError(t, err)

	deleted := true
	_, err = srv.UpdateChannel(ctx, hidden.ID, entity.ChannelPatch{Deleted: &deleted})
	require.NoError(t, err)

	listed, err := srv.ListChannels(ctx, usecase.ListChannelsInput{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, kept.ID, listed[0].ID)
}

func TestCatalogService_UpdateChannel_PartialPatch(t *testing.T) {
	srv := createTestCatalogService()
	ctx := context.Background()

	created, err := srv.CreateChannel(ctx, usecase.CreateChannelInput{
		GroupTitle: "News",
		TvgName:    "CCTV-1",
		TvgURL:     "http://old",
	})
	require.NoError(t, err)

	newName := "CCTV-1 HD"
	updated, err := srv.UpdateChannel(ctx, created.ID, entity.ChannelPatch{TvgName: &newName})
	require.NoError(t, err)

	// Only the patched field changes; the rest is untouched.
	assert.Equal(t, "CCTV-1 HD", updated.TvgName)
	assert.Equal(t, "News", updated.GroupTitle)
	assert.Equal(t, "http://old", updated.TvgURL)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestCatalogService_UpdateChannel_NotFound(t *testing.T) {
	srv := createTestCatalogService()

	name := "x"
	_, err := srv.UpdateChannel(context.Background(), 42, entity.ChannelPatch{TvgName: &name})
	assert.True(t, errors.Is(err, domainerrors.ErrChannelNotFound))
}

func TestCatalogService_UpdateChannelURL(t *testing.T) {
	srv := createTestCatalogService()
	ctx := context.Background()

	created, err := srv.CreateChannel(ctx, usecase.CreateChannelInput{TvgName: "A", TvgURL: "http://old"})
	require.NoError(t, err)

	updated, err := srv.UpdateChannelURL(ctx, created.ID, "http://new")
	require.NoError(t, err)
	assert.Equal(t, "http://new", updated.TvgURL)

	// The change is persisted, not just returned.
	found, err := srv.GetChannel(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://new", found.TvgURL)
}

func TestCatalogService_DeleteChannel(t *testing.T) {
	srv := createTestCatalogService()
	ctx := context.Background()

	created, err := srv.CreateChannel(ctx, usecase.CreateChannelInput{TvgName: "A", TvgURL: "http://a"})
	require.NoError(t, err)

	require.NoError(t, srv.DeleteChannel(ctx, created.ID))

	_, err = srv.GetChannel(ctx, created.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrChannelNotFound))

	// Deleting again reports not found.
	err = srv.DeleteChannel(ctx, created.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrChannelNotFound))
}
