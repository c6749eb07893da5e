package entity

// Account is the single administrative identity of the deployment.
// The system creates at most one account, ever; the bootstrap operation
// refuses once any account row exists, deleted or not.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string // Opaque bcrypt hash; never serialized to clients.
	Deleted      bool   // A deleted account is inactive for all authorization checks.
	CreatedAt    string // Formatted with TimeLayout.
}
