package domain

import (
	"time"
)

// PGR / NR-01 hazard-inventory graph:
// Company -> Sector -> Hazard -> Risk -> ControlAction.

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	CNPJ      string    `gorm:"column:cnpj" json:"cnpj"`
	Address   string    `gorm:"column:endereco" json:"endereco"`
	Activity  string    `gorm:"column:atividade" json:"atividade"`
	RiskGrade int       `gorm:"column:grau_risco" json:"grau_risco"`
	CreatedAt time.Time `gorm:"not null;column:criado_em" json:"criado_em"`

	Sectors []Sector `gorm:"foreignKey:CompanyID" json:"sectors,omitempty"`
}

func (Company) TableName() string { return "companies" }

type Sector struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CompanyID   uint   `gorm:"index;not null" json:"company_id"`
	Name        string `gorm:"not null;column:nome" json:"nome"`
	Description string `gorm:"type:text;column:descricao" json:"descricao"`

	Hazards []Hazard `gorm:"foreignKey:SectorID" json:"hazards,omitempty"`
}

func (Sector) TableName() string { return "sectors" }

type Hazard struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	SectorID    uint   `gorm:"index;not null" json:"sector_id"`
	Name        string `gorm:"not null;column:nome" json:"nome"`
	Agent       string `gorm:"column:agente" json:"agente"`
	Source      string `gorm:"column:fonte" json:"fonte"`
	Description string `gorm:"type:text;column:descricao" json:"descricao"`

	Risks []Risk `gorm:"foreignKey:HazardID" json:"risks,omitempty"`
}

func (Hazard) TableName() string { return "hazards" }

type Risk struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	HazardID         uint   `gorm:"index;not null" json:"hazard_id"`
	Probability      int    `gorm:"column:probabilidade" json:"probabilidade"`
	Severity         int    `gorm:"column:severidade" json:"severidade"`
	ExistingMeasures string `gorm:"type:text;column:medidas_existentes" json:"medidas_existentes"`

	Actions []ControlAction `gorm:"foreignKey:RiskID" json:"actions,omitempty"`
}

func (Risk) TableName() string { return "risks" }

type ControlAction struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	RiskID         uint       `gorm:"index;not null" json:"risk_id"`
	Recommendation string     `gorm:"type:text;column:recomendacao" json:"recomendacao"`
	Kind           string     `gorm:"column:tipo" json:"tipo"`
	Deadline       *time.Time `gorm:"type:date;column:prazo" json:"prazo"`
	Responsible    string     `gorm:"column:responsavel" json:"responsavel"`
	Status         string     `gorm:"not null;default:pendente;column:status" json:"status"`
}

func (ControlAction) TableName() string { return "actions" }
