package configs

import (
	"fmt"
	"log"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Staff{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Staff{
		Email:    email,
		Password: string(hash),
		FullName: "Admin",
		Role:     "admin",
		IsActive: true,
	}
	return db.Create(&admin).Error
}

// SeedLookups seeds payment methods, areas and the table pool.
func SeedLookups() error {
	db := DB()

	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: "Cash"})
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: "Credit Card"})
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: "Bank Transfer"})

	var mainHall, terrace entity.Area
	db.FirstOrCreate(&mainHall, entity.Area{AreaName: "Main Hall"})
	db.FirstOrCreate(&terrace, entity.Area{AreaName: "Terrace"})

	var tables int64
	db.Model(&entity.Table{}).Count(&tables)
	if tables == 0 {
		for i := 1; i <= 10; i++ {
			t := entity.Table{
				TableName: fmt.Sprintf("T%02d", i),
				Status:    entity.TableAvailable,
				Capacity:  4,
				IsWindow:  i%5 == 0,
				QRToken:   uuid.NewString(),
				AreaID:    mainHall.ID,
			}
			if i > 7 {
				t.AreaID = terrace.ID
				t.Capacity = 6
			}
			if err := db.Create(&t).Error; err != nil {
				return err
			}
		}
	}

	log.Println("lookup tables seeded")
	return nil
}
