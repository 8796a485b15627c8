package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDBK_CLI_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	SessionStorageDriverRedis  = "redis"
	SessionStorageDriverMongo  = "mongo"
	SessionStorageDriverMemory = "memory"
)

const (
	MongoCollectionSessions = "sessions"
)

const (
	RedisSessionTokenKeyFormat   = "medibook:session:%s:token"
	RedisSessionProfileKeyFormat = "medibook:session:%s:profile"
)

const (
	NavigateMyAppointments = "/my-appointment"
	NavigateLogin          = "/login"
)
