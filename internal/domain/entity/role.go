package entity

// Roles válidos del panel (claim "role" del token).
const (
	RoleAdmin       = "admin"
	RoleOperaciones = "operaciones"
	RoleBodega      = "bodega"
	RoleFinanzas    = "finanzas"
	RoleMensajero   = "mensajero"
	RoleCliente     = "cliente"
)

// CanViewCost indica si el rol puede ver el costo interno de los artículos.
func CanViewCost(role string) bool {
	return role == RoleAdmin || role == RoleFinanzas
}

// IsValidRole indica si role pertenece al conjunto conocido.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOperaciones, RoleBodega, RoleFinanzas, RoleMensajero, RoleCliente:
		return true
	}
	return false
}
