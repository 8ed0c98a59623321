package seed

import (
	"log"
	"time"

	"github.com/NUGEP/NUGEP-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func Seed(db *gorm.DB) {
	// Users
	var user models.UserModel
	result := db.Where("username = ?", "nugep").First(&user)
	if result.Error == nil {
		log.Println("User 'nugep' already exists")
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("nugep"), bcrypt.DefaultCost)

		newUser := models.UserModel{
			Username: "nugep",
			Password: string(hashedPassword),
			Name:     "Administrador NUGEP",
			Role:     models.RoleAdministrator,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create user: %v\n", err)
		} else {
			log.Println("User 'nugep' created")
		}
	}

	// Spaces seeding - the museum's fixed set of galleries, reserves and labs
	log.Println("Checking and creating default spaces...")
	spaces := []models.SpaceModel{
		{Name: "Galeria Principal", Type: models.SpaceGallery, Responsible: strPtr("Maria Costa")},
		{Name: "Sala 2", Type: models.SpaceGallery, Responsible: strPtr("João Silva")},
		{Name: models.DefaultHomeLocation, Type: models.SpaceStorage},
		{Name: "Reserva Técnica B", Type: models.SpaceStorage},
		{Name: "Arquivo Fotográfico", Type: models.SpaceArchive},
		{Name: models.SpaceRestorationLab, Type: models.SpaceLab, Responsible: strPtr("Lab. Restauro")},
	}
	createdCount := 0
	for _, space := range spaces {
		var existing models.SpaceModel
		checkResult := db.Where("name = ?", space.Name).First(&existing)
		if checkResult.Error == nil {
			continue
		}
		if err := db.Create(&space).Error; err != nil {
			log.Printf("Failed to create space %q: %v\n", space.Name, err)
		} else {
			log.Printf("Space %q created\n", space.Name)
			createdCount++
		}
	}
	if createdCount > 0 {
		log.Printf("Finished creating %d new spaces\n", createdCount)
	} else {
		log.Println("All default spaces already exist")
	}

	// Exhibitions seeding - the two running shows of the original catalog
	exhibitions := []models.ExhibitionModel{
		{
			Name:      "Pós-Impressionismo Hoje",
			StartDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC),
			Location:  "Galeria Principal",
			Curator:   "Maria Costa",
		},
		{
			Name:      "Modernismo Brasileiro",
			StartDate: time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC),
			Location:  "Sala 2",
			Curator:   "João Silva",
		},
	}
	for _, exhibition := range exhibitions {
		var existing models.ExhibitionModel
		checkResult := db.Where("name = ?", exhibition.Name).First(&existing)
		if checkResult.Error == nil {
			continue
		}
		if err := db.Create(&exhibition).Error; err != nil {
			log.Printf("Failed to create exhibition %q: %v\n", exhibition.Name, err)
		} else {
			log.Printf("Exhibition %q created\n", exhibition.Name)
		}
	}
}
