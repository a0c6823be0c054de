package seeds

import (
	"gorm.io/gorm"

	questions "socialearning_backend/internals/seeds/academics/questions"
	subjects "socialearning_backend/internals/seeds/academics/subjects"
)

// RunAllSeeds loads the starter catalog. Every seeder skips rows that
// already exist, so running it twice is safe.
func RunAllSeeds(db *gorm.DB) {
	subjects.SeedSubjectsFromJSON(db, "internals/seeds/academics/subjects/data_subjects.json")
	questions.SeedQuestionsFromJSON(db, "internals/seeds/academics/questions/data_questions.json")
}
