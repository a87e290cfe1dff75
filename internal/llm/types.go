package llm

// Role identifies a message role.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ParseRole converts a role name from a flag or transcript file.
// An empty name means assistant; anything else is kept verbatim.
func ParseRole(s string) Role {
	if s == "" {
		return RoleAssistant
	}
	return Role(s)
}

// IsUser reports whether r is the user role.
func (r Role) IsUser() bool {
	return r == RoleUser
}
