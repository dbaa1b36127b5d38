package workflow

import "strings"

// Role is the canonical access level of an authenticated user
type Role string

const (
	RoleAdministrador Role = "administrador"
	RoleGestor        Role = "gestor"
	RoleBanca         Role = "banca"
	RoleEquipe        Role = "equipe"

	// RoleUnknown marks an unrecognized nivel; callers must treat the
	// actor as unauthenticated.
	RoleUnknown Role = ""
)

// NormalizeRole maps the stored nivel vocabulary, including legacy synonyms,
// to a canonical Role. This is the only place raw role strings are
// interpreted; everything downstream compares Role values.
func NormalizeRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "administrador", "admin", "geral":
		return RoleAdministrador
	case "gestor":
		return RoleGestor
	case "banca":
		return RoleBanca
	case "equipe":
		return RoleEquipe
	}
	return RoleUnknown
}

// Valid reports whether r is one of the four canonical roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrador, RoleGestor, RoleBanca, RoleEquipe:
		return true
	}
	return false
}

// Display returns the label shown on the dashboards
func (r Role) Display() string {
	switch r {
	case RoleAdministrador:
		return "Administrador"
	case RoleGestor:
		return "Gestor"
	case RoleBanca:
		return "Banca"
	case RoleEquipe:
		return "Equipe"
	}
	return "Desconhecido"
}
