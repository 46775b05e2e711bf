package seed

import (
	"fmt"
	"log"

	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB) {
	// Users
	var user models.UserModel
	result := db.Where("email = ?", "admin@libritrack.local").First(&user)
	if result.Error == nil {
		log.Println("User 'admin' already exists")
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)

		newUser := models.UserModel{
			Name:     "admin",
			Email:    "admin@libritrack.local",
			Password: string(hashedPassword),
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create user: %v\n", err)
		} else {
			log.Println("User 'admin' created")
		}
	}

	// Genres seeding
	genreNames := []string{"Novel", "Poetry", "Essay", "History", "Science", "Comics"}
	for _, name := range genreNames {
		var existing models.GenreModel
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&models.GenreModel{Name: name}).Error; err != nil {
			log.Printf("Failed to create genre %s: %v\n", name, err)
		}
	}

	// Floors seeding - Create floors 1 to 3, each with room for 4 zones
	log.Println("Checking and creating floors 1 to 3...")
	createdCount := 0
	for i := 1; i <= 3; i++ {
		var existingFloor models.FloorModel
		checkResult := db.Where("floor_number = ?", i).First(&existingFloor)
		if checkResult.Error == nil {
			log.Printf("Floor %d already exists, skipping\n", i)
		} else {
			floor := models.FloorModel{
				FloorNumber: i,
				Capacity:    4,
			}
			if err := db.Create(&floor).Error; err != nil {
				log.Printf("Failed to create floor %d: %v\n", i, err)
			} else {
				log.Printf("Floor %d created\n", i)
				createdCount++
			}
		}
	}
	if createdCount > 0 {
		log.Printf("Finished creating %d new floors\n", createdCount)
	} else {
		log.Println("All floors already exist")
	}

	// Zones and bookcases for every floor
	log.Println("Checking and creating zones and bookcases...")
	var allFloors []models.FloorModel
	if err := db.Find(&allFloors).Error; err != nil {
		log.Printf("Failed to list floors: %v\n", err)
		return
	}

	for _, floor := range allFloors {
		for z := 1; z <= 2; z++ {
			var existingZone models.ZoneModel
			checkResult := db.Where("floor_id = ? AND number = ?", floor.ID, z).First(&existingZone)
			if checkResult.Error == nil {
				continue
			}

			zone := models.ZoneModel{
				Number:    z,
				Capacity:  6,
				GenreName: genreNames[(floor.FloorNumber+z)%len(genreNames)],
				FloorId:   floor.ID,
			}
			if err := db.Create(&zone).Error; err != nil {
				log.Printf("Failed to create zone %d on floor %d: %v\n", z, floor.FloorNumber, err)
				continue
			}

			for b := 1; b <= 3; b++ {
				bookcase := models.BookcaseModel{
					Number:   b,
					Capacity: 20,
					ZoneId:   zone.ID,
				}
				if err := db.Create(&bookcase).Error; err != nil {
					log.Printf("Failed to create bookcase %d in zone %d: %v\n", b, zone.ID, err)
				}
			}

			log.Printf("Zone %d on floor %d created with 3 bookcases\n", z, floor.FloorNumber)
		}
	}

	// A few books so the UI has something to show
	var firstBookcase models.BookcaseModel
	if err := db.First(&firstBookcase).Error; err != nil {
		log.Printf("No bookcase available for book seeding: %v\n", err)
		return
	}

	books := []models.BookModel{
		{Title: "La plaça del Diamant", Author: "Mercè Rodoreda", Editor: "Club Editor", ISBN: "9788473291033", Length: 256, BookcaseId: firstBookcase.ID},
		{Title: "Cien años de soledad", Author: "Gabriel García Márquez", Editor: "Sudamericana", ISBN: "9780307474728", Length: 417, BookcaseId: firstBookcase.ID},
		{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", Editor: "Ace Books", ISBN: "9780441478125", Length: 304, BookcaseId: firstBookcase.ID},
	}
	for _, book := range books {
		var existing models.BookModel
		if err := db.Where("isbn = ?", book.ISBN).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&book).Error; err != nil {
			log.Printf("Failed to create book %s: %v\n", book.ISBN, err)
		} else {
			log.Println(fmt.Sprintf("Book %q created", book.Title))
		}
	}
}
