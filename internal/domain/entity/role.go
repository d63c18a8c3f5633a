package entity

// Role papel de acesso de um perfil. A hierarquia é uma enumeração ordenada
// (none < client < staff < admin) em vez de comparações ad hoc de strings:
// staff entra em rotas de staff, admin entra em tudo, rotas de admin excluem staff.
type Role string

const (
	RoleNone   Role = ""
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

// roleRank posição de cada papel na hierarquia. Papéis desconhecidos ficam no nível 0.
var roleRank = map[Role]int{
	RoleNone:   0,
	RoleClient: 1,
	RoleStaff:  2,
	RoleAdmin:  3,
}

// Valid informa se o papel é um dos três papéis atribuíveis a um perfil.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleStaff || r == RoleAdmin
}

// AtLeast informa se o papel alcança o nível mínimo exigido.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min]
}

// ParseRole converte uma string em Role; ok=false para valores desconhecidos.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	if r.Valid() {
		return r, true
	}
	return RoleNone, false
}
