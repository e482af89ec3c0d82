package http

// StartProcessRequest is the body of a start-work call. Equipment is only
// honored for process kinds that declare an equipment slot.
type StartProcessRequest struct {
	Equipment string            `json:"equipment"  validate:"omitempty,max=100"`
	Variables map[string]string `json:"variables"  validate:"omitempty,max=50"`
}

// CompleteProcessRequest is the body of a complete-work call. ExecutionID is
// optional; when absent the caller's latest active session is completed.
type CompleteProcessRequest struct {
	ExecutionID string            `json:"execution_id" validate:"omitempty,uuid"`
	Variables   map[string]string `json:"variables"    validate:"omitempty,max=50"`
}

// CreateOrderRequest is the body for registering a new order. Processes are
// production step names in execution sequence.
type CreateOrderRequest struct {
	OrderNumber string   `json:"order_number" validate:"required,min=1,max=50"`
	Description string   `json:"description"  validate:"omitempty,max=2000"`
	PhotoURL    string   `json:"photo_url"    validate:"omitempty,url"`
	Processes   []string `json:"processes"    validate:"omitempty,dive,required"`
}

// CreateWorkerRequest is the body for registering a worker account. The
// password is hashed before it reaches the application layer.
type CreateWorkerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"required,oneof=employee admin"`
}

// LoginRequest is the body of an authentication call.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
