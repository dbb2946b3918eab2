package constant

type ContextKey string

const (
	UserIDKey   ContextKey = "user_id"
	UserRoleKey ContextKey = "user_role"
)

const (
	RoleSuperadmin = "superadmin"
	RoleCustomer   = "customer"
)
