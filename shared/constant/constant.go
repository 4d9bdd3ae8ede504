package constant

import (
	"time"
)

const (
	RequestParamID   = "id"
	RequestParamUUID = "uuid"
)

const (
	DateFormat = time.RFC3339
)

const (
	SQLiteDriverName = "sqlite"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelQueryAttributeKey   = "db.query"
)

const (
	RequestHeaderContentType = "Content-Type"
	RequestHeaderUserAgent   = "User-Agent"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseMessageHealthy       = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
