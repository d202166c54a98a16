package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/cashlink/cashlink/internal/pkg/constants"
	"github.com/cashlink/cashlink/internal/pkg/database"
	"github.com/cashlink/cashlink/internal/pkg/models"
	"github.com/cashlink/cashlink/internal/utils"
)

// geohashPrecision of 6 gives cells of roughly 1.2km by 0.6km, fine
// enough for neighborhood dispatch.
const geohashPrecision = 6

// positionTTL bounds how long a stale position stays in the cell index
const positionTTL = 30 * time.Minute

// LocationRepo tracks driver availability in Redis: a GEO set for radius
// queries plus a geohash cell key per driver.
type LocationRepo struct {
	cfg   *models.Config
	redis *database.RedisClient
}

func NewLocationRepository(
	cfg *models.Config,
	redis *database.RedisClient,
) *LocationRepo {
	return &LocationRepo{
		cfg:   cfg,
		redis: redis,
	}
}

// SetAvailable marks a driver available at a position
func (r *LocationRepo) SetAvailable(ctx context.Context, position models.DriverPosition) error {
	if err := r.redis.GeoAdd(ctx, constants.KeyDriverGeo, position.Longitude, position.Latitude, position.DriverID); err != nil {
		return err
	}
	if err := r.redis.SAdd(ctx, constants.KeyAvailableDrivers, position.DriverID); err != nil {
		return err
	}

	cell := utils.EncodePosition(position.Latitude, position.Longitude, geohashPrecision)
	key := fmt.Sprintf(constants.KeyDriverGeohash, position.DriverID)
	return r.redis.Set(ctx, key, cell, positionTTL)
}

// SetUnavailable removes a driver from the availability index
func (r *LocationRepo) SetUnavailable(ctx context.Context, driverID string) error {
	if err := r.redis.SRem(ctx, constants.KeyAvailableDrivers, driverID); err != nil {
		return err
	}
	if err := r.redis.ZRem(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return err
	}
	return r.redis.Delete(ctx, fmt.Sprintf(constants.KeyDriverGeohash, driverID))
}

// NearbyDrivers returns available drivers within radiusKm of a point,
// nearest first.
func (r *LocationRepo) NearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.DriverPosition, error) {
	locations, err := r.redis.GeoRadius(ctx, constants.KeyDriverGeo, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, err
	}

	drivers := make([]models.DriverPosition, 0, len(locations))
	for _, loc := range locations {
		drivers = append(drivers, models.DriverPosition{
			DriverID:   loc.Name,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			Geohash:    utils.EncodePosition(loc.Latitude, loc.Longitude, geohashPrecision),
			DistanceKm: loc.Dist,
			Timestamp:  time.Now(),
		})
	}
	return drivers, nil
}
