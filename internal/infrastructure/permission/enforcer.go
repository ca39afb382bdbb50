package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"qravy/internal/domain/permission"
	"qravy/internal/shared/authorization"
	"qravy/internal/shared/constants"
	"qravy/internal/shared/logger"
)

var _ permission.PermissionEnforcer = (*Enforcer)(nil)

// rbacModel grants a role the policies of every role it inherits through g.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// defaultPolicies is seeded on startup; AddPolicy skips rows already stored.
var defaultPolicies = [][]string{
	{authorization.RoleEditor.String(), permission.ResourceMenuItem, permission.ActionRead},
	{authorization.RoleEditor.String(), permission.ResourceMenuItem, permission.ActionWrite},
	{authorization.RoleEditor.String(), permission.ResourceMenuItem, permission.ActionToggle},
	{authorization.RoleEditor.String(), permission.ResourceCategory, permission.ActionRead},
	{authorization.RoleEditor.String(), permission.ResourceCategory, permission.ActionWrite},

	{authorization.RoleViewer.String(), permission.ResourceMenuItem, permission.ActionRead},
	{authorization.RoleViewer.String(), permission.ResourceCategory, permission.ActionRead},

	{authorization.RoleBranch.String(), permission.ResourceMenuItem, permission.ActionRead},
	{authorization.RoleBranch.String(), permission.ResourceMenuItem, permission.ActionToggle},
}

var defaultGroupings = [][]string{
	{authorization.RoleAdmin.String(), authorization.RoleEditor.String()},
	{authorization.RoleOwner.String(), authorization.RoleAdmin.String()},
}

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer stores policies in the casbin_rule table through gorm.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", constants.TableCasbinRules)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log}
	if err := e.seed(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewMemoryEnforcer keeps the default policies in memory only.
func NewMemoryEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log}
	if err := e.seed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Enforcer) seed() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, policy := range defaultPolicies {
		if _, err := e.enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	for _, grouping := range defaultGroupings {
		if _, err := e.enforcer.AddGroupingPolicy(grouping[0], grouping[1]); err != nil {
			e.logger.Errorw("failed to add role inheritance", "error", err, "role", grouping[0], "inherits", grouping[1])
			return fmt.Errorf("failed to add grouping [%s, %s]: %w", grouping[0], grouping[1], err)
		}
	}

	e.logger.Infow("permission policies initialized", "policies", len(defaultPolicies), "groupings", len(defaultGroupings))
	return nil
}

func (e *Enforcer) Enforce(role string, resource string, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) AddPolicy(role string, resource string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

func (e *Enforcer) RemovePolicy(role string, resource string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}
