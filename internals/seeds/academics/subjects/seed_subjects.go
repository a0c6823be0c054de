package subjects

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"socialearning_backend/internals/features/academics/subjects/model"
)

func SeedSubjectsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read JSON file: %v", err)
	}

	var names []string
	if err := sonic.Unmarshal(content, &names); err != nil {
		log.Fatalf("❌ Failed to decode JSON: %v", err)
	}

	for _, name := range names {
		var existing model.SubjectModel
		if err := db.First(&existing, "name = ?", name).Error; err == nil {
			log.Printf("ℹ️ Subject %q already exists, skipping...", name)
			continue
		}

		if err := db.Create(&model.SubjectModel{SubjectName: name}).Error; err != nil {
			log.Printf("❌ Failed to insert subject %q: %v", name, err)
		} else {
			log.Printf("✅ Inserted subject %q", name)
		}
	}
}
