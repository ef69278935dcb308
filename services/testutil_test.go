package services

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database private to the test. The shared-cache
// DSN lets repository reads run alongside an open transaction (some services
// mix pooled reads into transactional writes); idle connections are pinned so
// the memory database survives the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(4)
	sqlDB.SetConnMaxLifetime(0)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, migrateAll(db))
	return db
}

// newRaceDB opens a file-backed database for tests that need two connections
// genuinely contending. The shared-cache memory DB serializes writers at the
// table-lock level and would turn the race into a spurious lock error; WAL plus
// an immediate txlock gives the loser a clean wait-then-retry instead.
func newRaceDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "race.db") +
		"?_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, migrateAll(db))
	return db
}

func migrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
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

// ----- Fixtures -----

func seedDish(t *testing.T, db *gorm.DB, name string, price string) *entity.Dish {
	t.Helper()
	cat := entity.Category{CategoryName: "Cat for " + name}
	require.NoError(t, db.Create(&cat).Error)
	d := entity.Dish{
		DishName:   name,
		Price:      decimal.RequireFromString(price),
		IsActive:   true,
		CategoryID: cat.ID,
	}
	require.NoError(t, db.Create(&d).Error)
	return &d
}

func seedCombo(t *testing.T, db *gorm.DB, name string, price string) *entity.Combo {
	t.Helper()
	c := entity.Combo{ComboName: name, Price: decimal.RequireFromString(price), IsActive: true}
	require.NoError(t, db.Create(&c).Error)
	return &c
}

func seedTable(t *testing.T, db *gorm.DB, name string, status entity.TableStatus, capacity int, window bool) *entity.Table {
	t.Helper()
	tb := entity.Table{
		TableName: name,
		Status:    status,
		Capacity:  capacity,
		IsWindow:  window,
		QRToken:   uuid.NewString(),
	}
	require.NoError(t, db.Create(&tb).Error)
	return &tb
}

func seedMethod(t *testing.T, db *gorm.DB, name string) *entity.PaymentMethod {
	t.Helper()
	m := entity.PaymentMethod{MethodName: name}
	require.NoError(t, db.Create(&m).Error)
	return &m
}

// ----- Service builders -----

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCatalogRepository(db),
		repository.NewTableRepository(db),
		nil)
}

func newPromoService(db *gorm.DB) *PromotionService {
	return NewPromotionService(db,
		repository.NewPromotionRepository(db),
		repository.NewOrderRepository(db))
}

func newBillingService(db *gorm.DB) *BillingService {
	return NewBillingService(db,
		repository.NewInvoiceRepository(db),
		repository.NewOrderRepository(db),
		repository.NewTableRepository(db),
		repository.NewCatalogRepository(db),
		nil)
}

func newReservService(db *gorm.DB) *ReservationService {
	return NewReservationService(db,
		repository.NewReservationRepository(db),
		repository.NewTableRepository(db),
		newOrderService(db),
		0)
}

func newTabService(db *gorm.DB) *TableService {
	return NewTableService(db, repository.NewTableRepository(db))
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got),
		"want %s, got %s", want, got.String())
}

func tableStatus(t *testing.T, db *gorm.DB, id uint) entity.TableStatus {
	t.Helper()
	var tb entity.Table
	require.NoError(t, db.First(&tb, id).Error)
	return tb.Status
}
