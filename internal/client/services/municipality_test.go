package services

import (
	"context"
	"testing"

	"github.com/TheReeds/turisync/internal/client/models"
	"github.com/TheReeds/turisync/internal/client/remote"
	"github.com/TheReeds/turisync/internal/logging"
	"github.com/TheReeds/turisync/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMunicipalityWatchAll_CachedThenRemote(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Municipalities(store.DB).Upsert(ctx,
		&models.Municipality{ID: 3, Name: "Old Name", District: "North"}))

	src := &fakeSource{municipalities: []remote.MunicipalityPayload{
		{ID: 3, Name: "New Name", District: "North", Province: "P", Region: "R"},
	}}
	svc := NewMunicipalityService(store, src, logging.NewDiscard())

	got := collect(t, svc.WatchAll(ctx))

	require.Equal(t, []result.State{result.StateLoading, result.StateSuccess, result.StateSuccess}, states(got))
	assert.Equal(t, "Old Name", got[1].Data()[0].Name)
	assert.Equal(t, "New Name", got[2].Data()[0].Name)
	assert.Equal(t, "P", got[2].Data()[0].Province)
}

func TestMunicipalityWatchAll_FillsProjectionPlaceholders(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	// a projection row left behind by a vendor sync: id, name and district only
	require.NoError(t, store.Municipalities(store.DB).UpsertRef(ctx,
		models.MunicipalityRef{ID: 4, Name: "Township Z", District: "South"}))

	src := &fakeSource{municipalities: []remote.MunicipalityPayload{
		{ID: 4, Name: "Township Z", District: "South", Province: "Prov", Region: "Reg", Description: "Lakeside town"},
	}}
	svc := NewMunicipalityService(store, src, logging.NewDiscard())

	collect(t, svc.WatchAll(ctx))

	m, err := store.Municipalities(store.DB).GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Prov", m.Province)
	assert.Equal(t, "Lakeside town", m.Description)
}

func TestMunicipalityWatchAll_DoesNotPruneAbsentRows(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Municipalities(store.DB).Upsert(ctx,
		&models.Municipality{ID: 5, Name: "Link Target", District: "East"}))

	src := &fakeSource{municipalities: []remote.MunicipalityPayload{
		{ID: 6, Name: "Other", District: "West"},
	}}
	svc := NewMunicipalityService(store, src, logging.NewDiscard())

	collect(t, svc.WatchAll(ctx))

	// id 5 may still be the target of a vendor link, it must survive
	_, err := store.Municipalities(store.DB).GetByID(ctx, 5)
	require.NoError(t, err)
}

func TestMunicipalityWatchByID_MissRemoteFailure(t *testing.T) {
	store := setupStore(t)
	src := &fakeSource{}
	svc := NewMunicipalityService(store, src, logging.NewDiscard())

	got := collect(t, svc.WatchByID(context.Background(), 99))

	require.Equal(t, []result.State{result.StateLoading, result.StateError}, states(got))
}

func TestMunicipalityWatchByID_CachedRemoteFailure(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Municipalities(store.DB).Upsert(ctx,
		&models.Municipality{ID: 3, Name: "Township", District: "North"}))

	src := &fakeSource{} // lookup map is nil, every fetch fails
	svc := NewMunicipalityService(store, src, logging.NewDiscard())

	got := collect(t, svc.WatchByID(ctx, 3))

	require.Equal(t, []result.State{result.StateLoading, result.StateSuccess}, states(got))
	assert.Equal(t, "Township", got[1].Data().Name)
}

func TestMunicipalityWatchByID_Fetches(t *testing.T) {
	store := setupStore(t)
	src := &fakeSource{municipalityByID: map[int64]*remote.MunicipalityPayload{
		4: {ID: 4, Name: "Township Z", District: "South", Region: "Reg"},
	}}
	svc := NewMunicipalityService(store, src, logging.NewDiscard())

	got := collect(t, svc.WatchByID(context.Background(), 4))

	require.Equal(t, []result.State{result.StateLoading, result.StateSuccess}, states(got))
	assert.Equal(t, "Township Z", got[1].Data().Name)

	m, err := store.Municipalities(store.DB).GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Reg", m.Region)
}

func TestMunicipalityWatchByID_RemoteMissSurfacesError(t *testing.T) {
	store := setupStore(t)
	src := &fakeSource{municipalityByID: map[int64]*remote.MunicipalityPayload{}}
	svc := NewMunicipalityService(store, src, logging.NewDiscard())

	got := collect(t, svc.WatchByID(context.Background(), 42))

	require.Equal(t, []result.State{result.StateLoading, result.StateError}, states(got))
	assert.NotEmpty(t, got[1].Message())
}
