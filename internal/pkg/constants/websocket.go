package constants

// WebSocket event types
const (
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Ride booking events pushed to driver clients. Payload carries booking
	// id and status only; clients refetch on every event.
	EventRideUpdate = "ride_update"
)
