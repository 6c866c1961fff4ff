package models

// Role is the closed set of account roles
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// UserRecord binds an authenticated user id to its role and email
type UserRecord struct {
	UID   string `dynamodbav:"uid" json:"uid"`
	Role  Role   `dynamodbav:"role" json:"role"`
	Email string `dynamodbav:"email" json:"email"`
}
