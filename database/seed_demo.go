package database

import (
	"log"
	"time"

	"github.com/wambuidev/learning_center/models"
	"gorm.io/datatypes"
)

// DemoDataset is an explicit, injectable starter dataset. Nothing in the
// application reads it as ambient state; callers pass one to SeedDemoData
// (main does so only when SEED_DEMO_DATA=true).
type DemoDataset struct {
	Rooms    []models.Room
	Teachers []models.Teacher
	Staff    []models.Staff
	Students []models.Student
	Classes  []models.Class
	Expenses []models.Expense
}

func DefaultDemoDataset() DemoDataset {
	mon14 := "14:00"
	sat10 := "10:00"
	return DemoDataset{
		Rooms: []models.Room{
			{Name: "Room 1", Capacity: 12},
			{Name: "Room 2", Capacity: 8},
		},
		Teachers: []models.Teacher{
			{FullName: "Grace Njeri", Salary: 45000},
			{FullName: "Peter Otieno", Salary: 40000},
		},
		Staff: []models.Staff{
			{FullName: "Mary Wanjiku", Title: "Receptionist", Salary: 25000},
		},
		Students: []models.Student{
			{FullName: "Amina Hassan"},
			{FullName: "Brian Kiprop", HasDiscount: true, DiscountPercentage: 10},
		},
		Classes: []models.Class{
			{
				Name:      "Mathematics Form 2",
				Fees:      3500,
				Weekdays:  datatypes.JSONSlice[int]{1, 3, 5},
				StartTime: &mon14,
			},
			{
				Name:              "Chess Club",
				Fees:              2000,
				Weekdays:          datatypes.JSONSlice[int]{6},
				StartTime:         &sat10,
				IsSpecial:         true,
				TeacherPercentage: 60,
				CenterPercentage:  40,
			},
		},
		Expenses: []models.Expense{
			{Title: "Rent", Category: "facilities", Amount: 30000, Kind: models.ExpenseKindRecurring, Date: time.Now()},
			{Title: "Internet", Category: "utilities", Amount: 5000, Kind: models.ExpenseKindRecurring, Date: time.Now()},
		},
	}
}

// SeedDemoData loads the given dataset into an empty database. A non-empty
// rooms table is taken to mean seeding already happened.
func SeedDemoData(ds DemoDataset) {
	var count int64
	if err := DB.Model(&models.Room{}).Count(&count).Error; err != nil {
		log.Printf("🔥 Failed to check for existing demo data: %v", err)
		return
	}
	if count > 0 {
		log.Println("Demo data already present, skipping seed.")
		return
	}

	for i := range ds.Rooms {
		if err := DB.Create(&ds.Rooms[i]).Error; err != nil {
			log.Printf("🔥 Failed to seed room %q: %v", ds.Rooms[i].Name, err)
			return
		}
	}
	for i := range ds.Teachers {
		if err := DB.Create(&ds.Teachers[i]).Error; err != nil {
			log.Printf("🔥 Failed to seed teacher %q: %v", ds.Teachers[i].FullName, err)
			return
		}
	}
	for i := range ds.Staff {
		if err := DB.Create(&ds.Staff[i]).Error; err != nil {
			log.Printf("🔥 Failed to seed staff %q: %v", ds.Staff[i].FullName, err)
			return
		}
	}
	for i := range ds.Students {
		if err := DB.Create(&ds.Students[i]).Error; err != nil {
			log.Printf("🔥 Failed to seed student %q: %v", ds.Students[i].FullName, err)
			return
		}
	}
	for i := range ds.Classes {
		if len(ds.Rooms) > 0 && ds.Classes[i].RoomID == nil {
			ds.Classes[i].RoomID = &ds.Rooms[i%len(ds.Rooms)].ID
		}
		if err := DB.Create(&ds.Classes[i]).Error; err != nil {
			log.Printf("🔥 Failed to seed class %q: %v", ds.Classes[i].Name, err)
			return
		}
	}
	for i := range ds.Expenses {
		if err := DB.Create(&ds.Expenses[i]).Error; err != nil {
			log.Printf("🔥 Failed to seed expense %q: %v", ds.Expenses[i].Title, err)
			return
		}
	}

	log.Println("✅ Demo dataset seeded successfully")
}
