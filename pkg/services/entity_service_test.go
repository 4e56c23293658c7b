package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aether-home/aether/pkg/models"
	testdb "github.com/aether-home/aether/test/database"
)

func TestEntityService_UpsertBatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEntityService(client.Client)
	ctx := context.Background()

	t.Run("inserts and updates in place", func(t *testing.T) {
		err := service.UpsertBatch(ctx, []models.EntitySnapshot{
			{EntityID: "light.porch", State: "off", FriendlyName: "Porch Light"},
			{EntityID: "sensor.kitchen_temp", State: "21.4", Attributes: map[string]interface{}{"unit_of_measurement": "°C"}},
		})
		require.NoError(t, err)

		err = service.UpsertBatch(ctx, []models.EntitySnapshot{
			{EntityID: "light.porch", State: "on", FriendlyName: "Porch Light"},
		})
		require.NoError(t, err)

		e, err := service.Get(ctx, "light.porch")
		require.NoError(t, err)
		assert.Equal(t, "on", e.State)
		assert.Equal(t, "light", e.Domain)

		n, err := service.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("parses last_changed timestamps", func(t *testing.T) {
		err := service.UpsertBatch(ctx, []models.EntitySnapshot{
			{EntityID: "binary_sensor.front_door", State: "off", LastChanged: "2026-08-20T07:15:00Z"},
		})
		require.NoError(t, err)

		e, err := service.Get(ctx, "binary_sensor.front_door")
		require.NoError(t, err)
		require.NotNil(t, e.LastChanged)
		assert.Equal(t, 2026, e.LastChanged.UTC().Year())
	})

	t.Run("skips blank ids and empty batches", func(t *testing.T) {
		require.NoError(t, service.UpsertBatch(ctx, nil))
		require.NoError(t, service.UpsertBatch(ctx, []models.EntitySnapshot{{EntityID: "", State: "x"}}))
	})
}

func TestEntityService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEntityService(client.Client)
	ctx := context.Background()

	err := service.UpsertBatch(ctx, []models.EntitySnapshot{
		{EntityID: "light.porch", State: "on"},
		{EntityID: "light.kitchen", State: "off"},
		{EntityID: "sensor.kitchen_temp", State: "21.4"},
	})
	require.NoError(t, err)

	items, err := service.List(ctx, "light", 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "light.kitchen", items[0].ID, "listed in id order")

	all, err := service.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestEntityService_PurgeStale(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEntityService(client.Client)
	ctx := context.Background()

	err := service.UpsertBatch(ctx, []models.EntitySnapshot{{EntityID: "light.removed", State: "off"}})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	cutoff := time.Now()

	err = service.UpsertBatch(ctx, []models.EntitySnapshot{{EntityID: "light.kept", State: "on"}})
	require.NoError(t, err)

	n, err := service.PurgeStale(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = service.Get(ctx, "light.removed")
	assert.Equal(t, ErrNotFound, err)
	_, err = service.Get(ctx, "light.kept")
	assert.NoError(t, err)
}
