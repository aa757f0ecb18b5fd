package domain

import (
	"time"
)

// ErgonomicAssessment is one NR-17 workstation evaluation. RiskLevel
// is unnormalized free text ("Baixo", "MÉDIO", "alto", ...); the
// dashboard buckets it through normalization.ClassifyRiskLevel and
// must tolerate any casing, missing diacritics, or NULL.
type ErgonomicAssessment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Company         string    `gorm:"column:empresa" json:"empresa"`
	Sector          string    `gorm:"not null;column:setor" json:"setor"`
	JobFunction     string    `gorm:"not null;column:funcao" json:"funcao"`
	Worker          string    `gorm:"column:trabalhador" json:"trabalhador"`
	WorkstationType string    `gorm:"not null;column:tipo_posto" json:"tipo_posto"`
	AssessmentDate  time.Time `gorm:"type:date;not null;column:data_avaliacao" json:"data_avaliacao"`

	RiskLevel *string `gorm:"column:risco" json:"risco"`
	Score     *int    `gorm:"column:score" json:"score"`

	Notes string `gorm:"type:text;column:observacoes" json:"observacoes"`
}

func (ErgonomicAssessment) TableName() string { return "nr17_records" }
