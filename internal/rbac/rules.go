package rbac

// RolePermissions is the default policy. Learners need no token at all;
// these roles only gate catalog maintenance.
var RolePermissions = map[string][]string{
	"editor": {
		"question:view",
		"question:write",
	},
	"admin": {
		"*", // everything
	},
}
