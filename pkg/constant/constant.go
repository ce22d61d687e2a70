package constant

const (
	DefaultRole = "admin"

	DefaultMaxLoginAttempts = 5
	DefaultLockoutMinutes   = 15

	DefaultAccessExpiryMin  = 60
	DefaultRefreshExpiryMin = 10080

	RevocationBackendPostgres = "postgres"
	RevocationBackendRedis    = "redis"
)
