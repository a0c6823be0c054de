package service

import (
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"socialearning_backend/internals/features/progress/engine"
	"socialearning_backend/internals/features/progress/student_progress/model"
)

// LoadRecords fetches every module record of one student in one subject,
// ordered by module number.
func LoadRecords(db *gorm.DB, dni, subject string) ([]model.StudentProgressModel, error) {
	var records []model.StudentProgressModel
	err := db.
		Where("dni = ? AND subject = ?", dni, subject).
		Order("module ASC").
		Find(&records).Error
	if err != nil {
		log.Println("[ERROR] loading student_progress:", err)
		return nil, err
	}
	return records, nil
}

// BuildProgressMap lifts the stored records into the engine view and
// returns the most recent session timestamp across modules (records are
// stamped together on save, but blocked modules can lag behind).
func BuildProgressMap(records []model.StudentProgressModel) (engine.ProgressMap, *time.Time) {
	pm := make(engine.ProgressMap, len(records))
	var last *time.Time
	for _, rec := range records {
		pm[rec.StudentProgressModule] = rec.ToEngine()
		if rec.StudentProgressLastSessionDate != nil {
			if last == nil || rec.StudentProgressLastSessionDate.After(*last) {
				ts := *rec.StudentProgressLastSessionDate
				last = &ts
			}
		}
	}
	return pm, last
}

// EnsureSessionReset applies the session-reset policy once, at load
// time: when a new calendar day has started, every blocked module gets
// its failed missions cleared and its block lifted, and the change is
// persisted immediately. Returns the refreshed engine view.
func EnsureSessionReset(db *gorm.DB, dni, subject string, records []model.StudentProgressModel, now time.Time) (engine.ProgressMap, *time.Time, error) {
	pm, last := BuildProgressMap(records)
	if !engine.IsNewSession(last, now) {
		return pm, last, nil
	}

	reset, changed := engine.ApplyNewSession(pm)
	for _, module := range changed {
		if err := SaveModule(db, dni, subject, module, reset[module], now); err != nil {
			return pm, last, err
		}
		log.Printf("[INFO] session reset: dni=%s subject=%q module=%d unblocked", dni, subject, module)
	}
	if len(changed) > 0 {
		return reset, &now, nil
	}
	return reset, last, nil
}

// SaveModule upserts one module record keyed by (dni, subject, module).
// Last write wins; there is no concurrency token.
func SaveModule(db *gorm.DB, dni, subject string, module int, mp engine.ModuleProgress, now time.Time) error {
	rec := model.StudentProgressModel{
		StudentProgressDNI:             dni,
		StudentProgressSubject:         subject,
		StudentProgressModule:          module,
		StudentProgressLastSessionDate: &now,
	}
	rec.ApplyEngine(mp)

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "dni"}, {Name: "subject"}, {Name: "module"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"m1", "m2", "m3", "m4",
			"points", "blocked_until_next_class", "last_session_date", "updated_at",
		}),
	}).Create(&rec).Error
	if err != nil {
		log.Println("[ERROR] saving student_progress:", err)
	}
	return err
}

// WithFirstModule guarantees the map a new student works against: an
// all-unanswered module 1. Absent rows are "new entity", not an error.
func WithFirstModule(pm engine.ProgressMap) engine.ProgressMap {
	if pm == nil {
		pm = engine.ProgressMap{}
	}
	if _, ok := pm[1]; !ok {
		pm[1] = engine.ModuleProgress{}
	}
	return pm
}

// DeleteBySubject is the bulk semester reset for one subject's progress.
func DeleteBySubject(db *gorm.DB, subject string) error {
	err := db.Where("subject = ?", subject).Delete(&model.StudentProgressModel{}).Error
	if err != nil {
		log.Println("[ERROR] deleting student_progress by subject:", err)
	}
	return err
}
