package constants

// NATS subjects
const (
	// Transaction ledger events
	SubjectTransactionCompleted = "transaction.completed"
	SubjectTransactionCancelled = "transaction.cancelled"

	// Ride booking live updates; one subject per driver
	SubjectRideUpdates       = "ride.updates.%s" // Format: ride.updates.{driver_id}
	SubjectRideUpdatesPrefix = "ride.updates."

	// Moderation decisions
	SubjectModerationDecided = "moderation.decided"
)
