package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySession   contextKey = "session"
	ContextKeyRequestID contextKey = "request_id"
)

const (
	SessionCookieName = "admin_token"
	// LegacySessionCookieName is still cleared on logout for sessions issued
	// before the cookie rename.
	LegacySessionCookieName = "admin_session"

	SessionCookieMaxAgeSeconds = 86400
)

const (
	RequestParamPage   = "page"
	RequestParamLimit  = "limit"
	RequestParamStatus = "status"
	RequestParamSearch = "search"
	RequestParamDate   = "date"
)

const (
	RequestParamID = "id"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	// DateFormatISO is the calendar-date format used on this service's own
	// surface and by the remote API's read paths.
	DateFormatISO = "2006-01-02"
	// DateFormatRemote is the day-first format the remote API expects on the
	// booking-creation path.
	DateFormatRemote = "02-01-2006"
)

const (
	OtelServiceScopeName    = "service"
	OtelGatewayScopeName    = "gateway"
	OtelHandlerScopeName    = "handler"
	OtelMiddlewareScopeName = "middleware"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderAuthToken          = "x-auth-token"
	RequestHeaderAccept             = "Accept"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	MessageNotAuthenticated = "Not authenticated"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	AdminPathPrefix    = "/admin"
	AdminAPIPathPrefix = "/api/admin"
	AdminLoginPath     = "/admin/login"
)

const (
	Empty = ""
)
