package policy

import (
	"strings"

	"github.com/kingrain94/business-feed-api/internal/domain"
)

// Rule gates every request whose path falls under Prefix. A rule with no
// roles and Public=false admits any authenticated principal.
type Rule struct {
	Prefix string
	Public bool
	Roles  []domain.Role
}

var allMembers = []domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleDefault}

// Routes is evaluated top to bottom; the first matching prefix wins.
var Routes = []Rule{
	{Prefix: "/actuator", Public: true},
	{Prefix: "/swagger", Public: true},
	{Prefix: "/v1/files/public", Public: true},
	{Prefix: "/oauth2", Public: true},
	{Prefix: "/login/oauth2/code", Public: true},
	{Prefix: "/v1/auth", Public: true},
	{Prefix: "/v1/users", Roles: allMembers},
	{Prefix: "/v1/files", Roles: allMembers},
	{Prefix: "/v1/posts", Roles: []domain.Role{domain.RoleAdmin, domain.RoleDefault}},
	{Prefix: "/v1/business", Roles: allMembers},
}

var authenticated = Rule{Prefix: "/"}

// Match returns the rule that governs path.
func Match(path string) Rule {
	for _, rule := range Routes {
		if path == rule.Prefix || strings.HasPrefix(path, rule.Prefix+"/") {
			return rule
		}
	}
	return authenticated
}

func IsPublic(path string) bool {
	return Match(path).Public
}

// Permits reports whether a principal with role may pass the rule.
func (r Rule) Permits(role domain.Role) bool {
	if r.Public || len(r.Roles) == 0 {
		return true
	}
	return domain.HasAnyRole(role, r.Roles...)
}
