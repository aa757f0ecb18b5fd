package domain

// AllModels is the migration set, ordered parents before children.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&UserToken{},

		&Company{},
		&Sector{},
		&Hazard{},
		&Risk{},
		&ControlAction{},

		&ExamRecord{},
		&ErgonomicAssessment{},
		&ExposureAgentRecord{},
	}
}
