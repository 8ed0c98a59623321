package models

// Operator roles. Only administrators may archive artifacts.
const (
	RoleAdministrator = "Administrador"
	RoleCurator       = "Curador"
	RoleTechnician    = "Técnico"
)

type UserModel struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"column:username;type:varchar(255);not null;uniqueIndex"`
	Password string `json:"password" gorm:"type:varchar(100);not null"`
	Name     string `json:"name" gorm:"type:varchar(120);not null"`
	Role     string `json:"role" gorm:"type:varchar(40);not null;default:Técnico"`
}

// Actor identifies the operator behind a mutating call, for the audit log.
type Actor struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
