package domain

// User represents an application user for administration and audit trails.
// Session management lives outside this service; only credential storage and
// identity belong here.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // bcrypt; never serialized
	IsActive     bool   `json:"isActive"`
	AuditFields
}
