package rbac

// Casbin model: subjects are role names, objects are feature resources,
// keyMatch lets the admin wildcard cover everything.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && keyMatch(r.act, p.act)
`

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// defaultPolicies is the fixed permission grid: three roles, no per-company
// customization. Managers see their team's records and approve leave;
// employees act on their own records only (the services enforce ownership,
// rbac gates the verbs).
var defaultPolicies = [][]string{
	{RoleAdmin, "*", "*"},

	{RoleManager, "employee", "read"},
	{RoleManager, "attendance", "read"},
	{RoleManager, "attendance", "punch"},
	{RoleManager, "leave", "read"},
	{RoleManager, "leave", "create"},
	{RoleManager, "leave", "approve"},
	{RoleManager, "payroll", "read"},

	{RoleEmployee, "employee", "read"},
	{RoleEmployee, "attendance", "punch"},
	{RoleEmployee, "attendance", "read"},
	{RoleEmployee, "leave", "create"},
	{RoleEmployee, "leave", "read"},
	{RoleEmployee, "payroll", "read"},
}
