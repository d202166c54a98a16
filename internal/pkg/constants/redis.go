package constants

// Redis key formats
const (
	// Driver availability
	KeyDriverGeo        = "driver:geo"         // GEO set of available driver positions
	KeyDriverGeohash    = "driver:geohash:%s"  // Format: driver:geohash:{driver_id}
	KeyAvailableDrivers = "drivers:available"  // Set of available driver IDs
)
