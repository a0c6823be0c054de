package controller

import (
	"log"
	"math"
	"sort"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentModel "socialearning_backend/internals/features/academics/students/model"
	"socialearning_backend/internals/features/progress/engine"
	"socialearning_backend/internals/features/progress/leaderboard/dto"
	progressModel "socialearning_backend/internals/features/progress/student_progress/model"
	helper "socialearning_backend/internals/helpers"
)

type LeaderboardController struct {
	DB *gorm.DB
}

func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{DB: db}
}

// GET /api/u/leaderboard?subject=
// Points are recomputed from the mission records on every load; the
// denormalized points column is only a convenience for raw table views.
func (ctrl *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	subject := c.Query("subject")
	if subject == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject query parameter is required")
	}

	students, progressByDNI, err := ctrl.loadSubject(subject)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load leaderboard")
	}

	standings := make([]engine.Standing, 0, len(students))
	for _, s := range students {
		standings = append(standings, engine.Standing{
			DNI:      s.StudentDNI,
			Nickname: s.StudentNickname,
			Points:   engine.TotalPoints(progressByDNI[s.StudentDNI]),
		})
	}

	return helper.JsonList(c, "", engine.RankStandings(standings))
}

// GET /api/a/students?subject=
// The tutor monitoring table: every enrolled student with the derived
// current module, its mission tri-states, points, completion and rank.
func (ctrl *LeaderboardController) GetSubjectOverview(c *fiber.Ctx) error {
	subject := c.Query("subject")
	if subject == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject query parameter is required")
	}

	students, progressByDNI, err := ctrl.loadSubject(subject)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}

	rows := make([]dto.MonitorRowDTO, 0, len(students))
	for _, s := range students {
		pm := progressByDNI[s.StudentDNI]
		currentModule := engine.CurrentModule(pm)
		current := pm[currentModule]

		completed := 0
		for _, mp := range pm {
			completed += mp.PassedCount()
		}
		totalMissions := engine.ModuleCount * engine.MissionCount

		rows = append(rows, dto.MonitorRowDTO{
			DNI:           s.StudentDNI,
			Nickname:      s.StudentNickname,
			Subject:       subject,
			CurrentModule: currentModule,
			M1:            current.Mission(1).String(),
			M2:            current.Mission(2).String(),
			M3:            current.Mission(3).String(),
			M4:            current.Mission(4).String(),
			Blocked:       current.Blocked,
			Points:        engine.TotalPoints(pm),
			Percentage:    int(math.Round(float64(completed) / float64(totalMissions) * 100)),
		})
	}

	// Same ordering and rank rule as the student leaderboard.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].DNI < rows[j].DNI
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return helper.JsonList(c, "", rows)
}

// loadSubject pulls the cohort and all its module records in two
// queries and groups them in memory; cohorts are classroom sized.
func (ctrl *LeaderboardController) loadSubject(subject string) ([]studentModel.StudentModel, map[string]engine.ProgressMap, error) {
	var students []studentModel.StudentModel
	err := ctrl.DB.
		Where("subject = ?", subject).
		Order("dni ASC").
		Find(&students).Error
	if err != nil {
		log.Println("[ERROR] loading students:", err)
		return nil, nil, err
	}

	var records []progressModel.StudentProgressModel
	err = ctrl.DB.
		Where("subject = ?", subject).
		Find(&records).Error
	if err != nil {
		log.Println("[ERROR] loading student_progress:", err)
		return nil, nil, err
	}

	progressByDNI := make(map[string]engine.ProgressMap, len(students))
	for _, rec := range records {
		pm, ok := progressByDNI[rec.StudentProgressDNI]
		if !ok {
			pm = engine.ProgressMap{}
			progressByDNI[rec.StudentProgressDNI] = pm
		}
		pm[rec.StudentProgressModule] = rec.ToEngine()
	}

	return students, progressByDNI, nil
}
