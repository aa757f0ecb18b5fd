package domain

import (
	"time"
)

// ExamRecord is one completed occupational medical exam (ASO). JSON
// field names follow the wire format the frontend already consumes.
//
// ExpirationDate drives the validity-window buckets on the exam
// dashboard; records without one are treated as valid.
type ExamRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Name        string `gorm:"not null;column:nome" json:"nome"`
	CPF         string `gorm:"not null;column:cpf" json:"cpf"`
	JobFunction string `gorm:"not null;column:funcao" json:"funcao"`
	Sector      string `gorm:"not null;column:setor" json:"setor"`

	ExamType string    `gorm:"not null;column:tipo_exame" json:"tipo_exame"`
	ExamDate time.Time `gorm:"type:date;not null;column:data_exame" json:"data_exame"`

	Physician string `gorm:"column:medico" json:"medico"`
	Result    string `gorm:"not null;column:resultado" json:"resultado"`

	ExpirationDate *time.Time `gorm:"type:date;column:data_validade" json:"data_validade,omitempty"`
}

func (ExamRecord) TableName() string { return "aso_records" }
