package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashlink/cashlink/internal/pkg/constants"
	"github.com/cashlink/cashlink/internal/pkg/database"
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/services/rides/repository"
)

func setupLocationRepo(t *testing.T) (*repository.LocationRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	redisClient := &database.RedisClient{Client: client}
	return repository.NewLocationRepository(&models.Config{}, redisClient), mr
}

func TestSetAvailable_IndexesDriver(t *testing.T) {
	repo, mr := setupLocationRepo(t)
	ctx := context.Background()

	pos := models.DriverPosition{
		DriverID:  "driver-1",
		Latitude:  -1.286389,
		Longitude: 36.817223,
	}
	require.NoError(t, repo.SetAvailable(ctx, pos))

	assert.True(t, mr.Exists(constants.KeyDriverGeo))
	members, err := mr.SMembers(constants.KeyAvailableDrivers)
	require.NoError(t, err)
	assert.Contains(t, members, "driver-1")

	cell, err := mr.Get(fmt.Sprintf(constants.KeyDriverGeohash, "driver-1"))
	require.NoError(t, err)
	assert.Len(t, cell, 6)
}

func TestSetUnavailable_RemovesDriver(t *testing.T) {
	repo, mr := setupLocationRepo(t)
	ctx := context.Background()

	pos := models.DriverPosition{DriverID: "driver-1", Latitude: -1.28, Longitude: 36.82}
	require.NoError(t, repo.SetAvailable(ctx, pos))
	require.NoError(t, repo.SetUnavailable(ctx, "driver-1"))

	members, err := mr.SMembers(constants.KeyAvailableDrivers)
	if err == nil {
		assert.NotContains(t, members, "driver-1")
	}
	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeyDriverGeohash, "driver-1")))
}

func TestNearbyDrivers_RadiusFilter(t *testing.T) {
	repo, _ := setupLocationRepo(t)
	ctx := context.Background()

	// Nairobi CBD
	require.NoError(t, repo.SetAvailable(ctx, models.DriverPosition{
		DriverID: "close", Latitude: -1.2864, Longitude: 36.8172,
	}))
	// Roughly 15km away
	require.NoError(t, repo.SetAvailable(ctx, models.DriverPosition{
		DriverID: "far", Latitude: -1.3940, Longitude: 36.7442,
	}))

	drivers, err := repo.NearbyDrivers(ctx, -1.2864, 36.8172, 5)
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, "close", drivers[0].DriverID)
	assert.NotEmpty(t, drivers[0].Geohash)
}
