package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse-social/pulse-api/internal/domain"
	"github.com/pulse-social/pulse-api/internal/mocks"
	"github.com/pulse-social/pulse-api/internal/service"
	"github.com/pulse-social/pulse-api/internal/store"
)

func TestGroupServiceGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	groupStore := mocks.NewMockGroupStore()

	group, err := domain.NewGroup("Go Developers", "go-developers", "All things Go")
	require.NoError(t, err)
	require.NoError(t, groupStore.Create(ctx, group))

	svc := service.NewGroupService(groupStore, nil)

	got, err := svc.Get(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, group.Title, got.Title)

	_, err = svc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrGroupNotFound)
}

func TestGroupServiceList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	groupStore := mocks.NewMockGroupStore()
	svc := service.NewGroupService(groupStore, nil)

	groups, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)

	for _, slug := range []string{"first", "second"} {
		group, err := domain.NewGroup("Group "+slug, slug, "")
		require.NoError(t, err)
		require.NoError(t, groupStore.Create(ctx, group))
	}

	groups, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}
