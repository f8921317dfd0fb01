package blogsdk

import "time"

// ============================================================================
// Common Response Types
// ============================================================================

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	// Error is a machine readable code (e.g., "not_found", "conflict")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// MessageResponse is returned by endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Auth
// ============================================================================

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"       example:"alice"`
	Email    string `json:"email"    validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required"       example:"correct horse battery staple"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"correct horse battery staple"`
}

// LoginResponse carries the bearer token used for the /api/blogs routes.
type LoginResponse struct {
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token"`
}

// ============================================================================
// Blogs
// ============================================================================

// BlogRequest is the body of POST /api/blogs and PUT /api/blogs/{id}.
type BlogRequest struct {
	Title   string `json:"title"   validate:"required" example:"Hello, world"`
	Content string `json:"content"                     example:"My first post."`
}

// Blog is a single post as returned by the API.
type Blog struct {
	ID        string    `json:"id"         example:"01HZX3J9Q4Y8K2V7M5N6P0R1ST"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"  example:"01HZX3G2B7C4D5E6F7G8H9J0KM"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogResponse wraps a single post.
type BlogResponse struct {
	Blog Blog `json:"blog"`
}

// BlogListResponse wraps the caller's posts, newest first.
type BlogListResponse struct {
	Blogs []Blog `json:"blogs"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz includes Checks).
type HealthResponse struct {
	// Status indicates the overall health status ("ok" or "degraded")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of the service's dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
