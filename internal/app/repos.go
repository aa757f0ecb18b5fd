package app

import (
	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/platform/logger"
	"github.com/datainsight/sst-backend/internal/repos"
)

type Repos struct {
	User       repos.UserRepo
	UserToken  repos.UserTokenRepo
	Exam       repos.ExamRepo
	Assessment repos.AssessmentRepo
	Exposure   repos.ExposureRepo
	PGR        repos.PGRRepo
	Dashboard  repos.DashboardRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:       repos.NewUserRepo(db, log),
		UserToken:  repos.NewUserTokenRepo(db, log),
		Exam:       repos.NewExamRepo(db, log),
		Assessment: repos.NewAssessmentRepo(db, log),
		Exposure:   repos.NewExposureRepo(db, log),
		PGR:        repos.NewPGRRepo(db, log),
		Dashboard:  repos.NewDashboardRepo(db, log),
	}
}
