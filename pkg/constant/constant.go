package constant

const (
	// OTPKeyPrefix namespaces one-time codes in the ephemeral store.
	OTPKeyPrefix = "otp:"

	// RateLimitAuthPrefix and RateLimitAPIPrefix namespace the two
	// admission-control windows in redis.
	RateLimitAuthPrefix = "ratelimit:auth:"
	RateLimitAPIPrefix  = "ratelimit:api:"

	// UserIDKey is the request-locals key the authorization gate sets.
	UserIDKey = "userID"

	BearerScheme = "Bearer"

	OTPEmailSubject = "Your OTP for Task Management App"

	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)
