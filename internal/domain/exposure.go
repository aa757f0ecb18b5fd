package domain

import (
	"time"
)

// ExposureAgentRecord is one LTCAT occupational-exposure entry. Agent
// may be NULL/empty; the dashboard collapses those rows under a
// placeholder label instead of failing.
type ExposureAgentRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Company     string `gorm:"not null;column:empresa" json:"empresa"`
	CNPJ        string `gorm:"column:cnpj" json:"cnpj"`
	Sector      string `gorm:"not null;column:setor" json:"setor"`
	JobFunction string `gorm:"not null;column:funcao" json:"funcao"`
	GHE         string `gorm:"column:ghe" json:"ghe"`

	Agent          *string `gorm:"column:agente" json:"agente"`
	Classification string  `gorm:"column:classificacao" json:"classificacao"`

	Source    string `gorm:"column:fonte" json:"fonte"`
	Medium    string `gorm:"column:meio" json:"meio"`
	Intensity string `gorm:"column:intensidade" json:"intensidade"`
	Unit      string `gorm:"column:unidade" json:"unidade"`

	DailyHours    *float64 `gorm:"column:jornada" json:"jornada"`
	DaysPerWeek   *int     `gorm:"column:dias_semana" json:"dias_semana"`
	ExposureYears *float64 `gorm:"column:tempo_anos" json:"tempo_anos"`

	PPEEffective      string `gorm:"not null;default:Sim;column:epi_eficaz" json:"epi_eficaz"`
	RegulatoryFraming string `gorm:"not null;default:Sem enquadramento;column:enquadramento" json:"enquadramento"`

	EvaluationDate *time.Time `gorm:"type:date;column:data_avaliacao" json:"data_avaliacao"`
	Responsible    string     `gorm:"column:responsavel" json:"responsavel"`
	Notes          string     `gorm:"type:text;column:observacoes" json:"observacoes"`
}

func (ExposureAgentRecord) TableName() string { return "ltcat_records" }
