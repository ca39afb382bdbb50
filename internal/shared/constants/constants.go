package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware
	ContextKeyTenantID   = "tenant_id"
	ContextKeyUserID     = "user_id"
	ContextKeyUserRole   = "user_role"
	ContextKeyLocationID = "session_location_id"
	ContextKeyRequestID  = "request_id"

	// Database table names
	TableLocations                  = "locations"
	TableCategories                 = "categories"
	TableMenuItems                  = "menu_items"
	TableItemAvailabilityOverlays   = "item_availability_overlays"
	TableCategoryVisibilityOverlays = "category_visibility_overlays"
	TableAuditLogs                  = "audit_logs"
	TableCasbinRules                = "casbin_rule"

	// Bulk write statements are split into batches of this many rows
	DefaultBatchSize = 500

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgValidationFailed    = "Validation failed"
)
