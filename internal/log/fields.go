package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldRequestID     = "request_id"
	FieldClientIP      = "client_ip"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldStatusCode    = "status_code"
	FieldDuration      = "duration_ms"
	FieldUserAgent     = "user_agent"
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldUserID        = "user_id"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldBudgetID      = "budget_id"
	FieldAmountCents   = "amount_cents"
	FieldTxType        = "transaction_type"
	FieldKey           = "key"
)

// Components defines standard component names
const (
	ComponentApp         = "app"
	ComponentHTTP        = "http"
	ComponentStorage     = "storage"
	ComponentTransaction = "transaction"
	ComponentBudget      = "budget"
	ComponentUser        = "user"
	ComponentEvents      = "events"
	ComponentWorker      = "worker"
	ComponentCache       = "cache"
)

// Operations defines standard operation names
const (
	OpCreate    = "create"
	OpRead      = "read"
	OpUpdate    = "update"
	OpList      = "list"
	OpAppend    = "append"
	OpReconcile = "reconcile"
	OpReset     = "reset"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
