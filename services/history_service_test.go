package services

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/antarcticanco/storefront-app/models"
	"github.com/antarcticanco/storefront-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Order{}, &models.StorageBlob{}))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, code string, createdAt time.Time) models.Order {
	t.Helper()
	order := models.Order{
		Code:          code,
		CustomerName:  "Amundsen",
		Total:         1450.00,
		ItemCount:     1,
		Status:        models.StatusServed,
		PaymentStatus: models.PaymentPaidCash,
		CreatedAt:     createdAt,
	}
	assert.NoError(t, db.Create(&order).Error)
	return order
}

func TestLoadEmptyHistory(t *testing.T) {
	hs := NewHistoryService(setupTestDB(t))

	buckets, recovered, err := hs.Load()
	assert.NoError(t, err)
	assert.False(t, recovered)
	assert.Empty(t, buckets)
}

func TestLoadMalformedBlobRecovers(t *testing.T) {
	db := setupTestDB(t)
	hs := NewHistoryService(db)

	blob := models.StorageBlob{Key: OrderHistoryKey, Value: "{not-json", UpdatedAt: time.Now()}
	assert.NoError(t, db.Create(&blob).Error)

	buckets, recovered, err := hs.Load()
	assert.NoError(t, err)
	assert.True(t, recovered)
	assert.Empty(t, buckets)
}

func TestLoadNonArrayBlobRecovers(t *testing.T) {
	db := setupTestDB(t)
	hs := NewHistoryService(db)

	blob := models.StorageBlob{Key: OrderHistoryKey, Value: "null", UpdatedAt: time.Now()}
	assert.NoError(t, db.Create(&blob).Error)

	buckets, recovered, err := hs.Load()
	assert.NoError(t, err)
	assert.True(t, recovered)
	assert.Empty(t, buckets)
}

func TestArchiveTodayEmpty(t *testing.T) {
	hs := NewHistoryService(setupTestDB(t))

	_, err := hs.ArchiveToday(time.Now())
	assert.ErrorIs(t, err, ErrNothingToArchive)
}

func TestArchiveToday(t *testing.T) {
	db := setupTestDB(t)
	hs := NewHistoryService(db)

	now := time.Date(2026, 2, 20, 14, 0, 0, 0, time.UTC)
	seedOrder(t, db, "ORD-AAA111", now.Add(-2*time.Hour))
	seedOrder(t, db, "ORD-BBB222", now.Add(-1*time.Hour))

	bucket, err := hs.ArchiveToday(now)
	assert.NoError(t, err)
	assert.Equal(t, "2026-02-20", bucket.Date)
	assert.Len(t, bucket.Orders, 2)
	assert.Equal(t, "ORD-AAA111", bucket.Orders[0].Code)

	// Order aktif habis setelah arsip.
	var count int64
	assert.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)

	buckets, recovered, err := hs.Load()
	assert.NoError(t, err)
	assert.False(t, recovered)
	assert.Len(t, buckets, 1)
}

// Arsip kedua di hari yang sama mengganti bucket, bukan menambah.
func TestArchiveTodayReplacesSameDayBucket(t *testing.T) {
	db := setupTestDB(t)
	hs := NewHistoryService(db)
	now := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)

	seedOrder(t, db, "ORD-AAA111", now)
	_, err := hs.ArchiveToday(now)
	assert.NoError(t, err)

	seedOrder(t, db, "ORD-BBB222", now.Add(time.Hour))
	_, err = hs.ArchiveToday(now.Add(2 * time.Hour))
	assert.NoError(t, err)

	buckets, _, err := hs.Load()
	assert.NoError(t, err)
	assert.Len(t, buckets, 1)
	assert.Len(t, buckets[0].Orders, 1)
	assert.Equal(t, "ORD-BBB222", buckets[0].Orders[0].Code)
}

func TestArchiveTodaySortsBucketsDescending(t *testing.T) {
	db := setupTestDB(t)
	hs := NewHistoryService(db)

	older := []models.HistoricalDayOrders{
		{Date: "2026-02-18", Orders: []models.Order{{Code: "ORD-OLD001"}}},
		{Date: "2026-02-19", Orders: []models.Order{{Code: "ORD-OLD002"}}},
	}
	raw, err := json.Marshal(older)
	assert.NoError(t, err)
	assert.NoError(t, db.Create(&models.StorageBlob{
		Key:       OrderHistoryKey,
		Value:     string(raw),
		UpdatedAt: time.Now(),
	}).Error)

	now := time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)
	seedOrder(t, db, "ORD-NEW001", now)
	_, err = hs.ArchiveToday(now)
	assert.NoError(t, err)

	buckets, _, err := hs.Load()
	assert.NoError(t, err)
	assert.Len(t, buckets, 3)
	assert.Equal(t, "2026-02-20", buckets[0].Date)
	assert.Equal(t, "2026-02-19", buckets[1].Date)
	assert.Equal(t, "2026-02-18", buckets[2].Date)
}

func TestClearHistory(t *testing.T) {
	db := setupTestDB(t)
	hs := NewHistoryService(db)

	now := time.Now()
	seedOrder(t, db, "ORD-AAA111", now)
	_, err := hs.ArchiveToday(now)
	assert.NoError(t, err)

	assert.NoError(t, hs.Clear())

	buckets, recovered, err := hs.Load()
	assert.NoError(t, err)
	assert.False(t, recovered)
	assert.Empty(t, buckets)

	// Clear pada arsip kosong juga aman.
	assert.NoError(t, hs.Clear())
}
