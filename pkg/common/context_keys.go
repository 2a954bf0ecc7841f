package common

type contextKey string

const (
	UserIDContextKey  contextKey = "user_id"
	MetadataKey       contextKey = "metadata"
	LatencyContextKey contextKey = "__execution_time"
)
