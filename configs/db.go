package configs

import (
	"github.com/Dung-L3/SEP490-G20-sub000/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	// TranslateError maps driver unique-constraint failures to gorm.ErrDuplicatedKey,
	// which the invoice get-or-create and group membership paths rely on.
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Staff{}, &entity.Shift{},
		&entity.Area{}, &entity.Table{},
		&entity.TableGroup{}, &entity.TableGroupItem{},
		&entity.Category{}, &entity.Dish{}, &entity.Combo{}, &entity.ComboItem{},
		&entity.Order{}, &entity.OrderDetail{},
		&entity.Promotion{}, &entity.PromoUsage{},
		&entity.PaymentMethod{}, &entity.Invoice{}, &entity.PaymentRecord{},
		&entity.Reservation{},
	)
}
