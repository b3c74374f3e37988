package constant

import (
	"time"
)

const (
	RequestParamID     = "id"
	RequestParamIsDone = "isDone"
	RequestParamSearch = "search"
)

const (
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderContentType  = "Content-Type"
	RequestHeaderUserAgent    = "User-Agent"
	RequestHeaderForwardedFor = "X-Forwarded-For"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
