package permission

// Resources guarded by the policy.
const (
	ResourceMenuItem = "menu_item"
	ResourceCategory = "category"
)

// Actions on a resource. Toggle flips availability overlays without
// editing the item itself.
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionToggle = "toggle"
)

// PermissionEnforcer decides whether a role may perform an action.
type PermissionEnforcer interface {
	Enforce(role string, resource string, action string) (bool, error)
	AddPolicy(role string, resource string, action string) error
	RemovePolicy(role string, resource string, action string) error
	LoadPolicy() error
}
