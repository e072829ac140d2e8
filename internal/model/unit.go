package model

// Care unit types
const (
	UnitTypeHospital = "HOSPITAL"
	UnitTypeClinic   = "CLINICA"
	UnitTypeLab      = "LABORATORIO"
	UnitTypeHomecare = "HOMECARE"
)

type Unit struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"nome" db:"nome"`
	Type    string `json:"tipo_unidade" db:"tipo_unidade"`
	Address string `json:"endereco" db:"endereco"`
	Phone   string `json:"telefone" db:"telefone"`
}

type CreateUnitRequest struct {
	Name    string `json:"nome" binding:"required"`
	Type    string `json:"tipo_unidade" binding:"required,oneof=HOSPITAL CLINICA LABORATORIO HOMECARE"`
	Address string `json:"endereco" binding:"required"`
	Phone   string `json:"telefone" binding:"required"`
}

type UpdateUnitRequest struct {
	Name    *string `json:"nome"`
	Type    *string `json:"tipo_unidade" binding:"omitempty,oneof=HOSPITAL CLINICA LABORATORIO HOMECARE"`
	Address *string `json:"endereco"`
	Phone   *string `json:"telefone"`
}
