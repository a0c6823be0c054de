package questions

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"socialearning_backend/internals/features/academics/questions/model"
)

type QuestionSeed struct {
	Subject       string   `json:"subject"`
	Module        int      `json:"module"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

func SeedQuestionsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read JSON file: %v", err)
	}

	var data []QuestionSeed
	if err := sonic.Unmarshal(content, &data); err != nil {
		log.Fatalf("❌ Failed to decode JSON: %v", err)
	}

	for _, item := range data {
		var existing model.QuestionModel
		err := db.First(&existing,
			"subject = ? AND module = ? AND question = ?",
			item.Subject, item.Module, item.Question,
		).Error
		if err == nil {
			log.Printf("ℹ️ Question %q already exists, skipping...", item.Question)
			continue
		}

		record := model.QuestionModel{
			QuestionID:            uuid.NewString(),
			QuestionSubject:       item.Subject,
			QuestionModule:        item.Module,
			QuestionText:          item.Question,
			QuestionOptions:       datatypes.NewJSONSlice(item.Options),
			QuestionCorrectOption: item.CorrectOption,
		}

		if err := db.Create(&record).Error; err != nil {
			log.Printf("❌ Failed to insert question %q: %v", item.Question, err)
		} else {
			log.Printf("✅ Inserted question %q", item.Question)
		}
	}
}
