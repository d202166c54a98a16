package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance_KnownPoints(t *testing.T) {
	// Dubai Marina to Deira is roughly 25km
	marina := GeoPoint{Latitude: 25.0806, Longitude: 55.1403}
	deira := GeoPoint{Latitude: 25.2711, Longitude: 55.3083}

	d := CalculateDistance(marina, deira)
	assert.InDelta(t, 27.0, d, 2.0)
}

func TestCalculateDistance_SamePoint(t *testing.T) {
	p := GeoPoint{Latitude: 25.2048, Longitude: 55.2708}
	assert.Equal(t, 0.0, CalculateDistance(p, p))
}

func TestEncodeDecodePosition(t *testing.T) {
	hash := EncodePosition(25.2048, 55.2708, 9)
	assert.Len(t, hash, 9)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, 25.2048, lat, 0.001)
	assert.InDelta(t, 55.2708, lng, 0.001)
}
