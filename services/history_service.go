package services

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/antarcticanco/storefront-app/models"
	"github.com/antarcticanco/storefront-app/utils"
)

// OrderHistoryKey adalah satu-satunya key blob yang dipakai untuk arsip
// (nama diwarisi dari versi browser demo ini).
const OrderHistoryKey = "antarticanCoOrderHistory"

var ErrNothingToArchive = errors.New("no orders to archive")

// HistoryService mengelola arsip order harian di atas StorageBlob.
type HistoryService struct {
	DB *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{DB: db}
}

// Load membaca seluruh bucket arsip. Blob yang korup atau bukan array
// di-treat sebagai history kosong (reset, bukan fatal); recovered=true
// menandakan reset itu terjadi supaya caller bisa menampilkan notice.
func (hs *HistoryService) Load() (buckets []models.HistoricalDayOrders, recovered bool, err error) {
	var blob models.StorageBlob
	if err := hs.DB.First(&blob, "key = ?", OrderHistoryKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.HistoricalDayOrders{}, false, nil
		}
		return nil, false, err
	}

	if err := json.Unmarshal([]byte(blob.Value), &buckets); err != nil {
		utils.ErrorLogger.Printf("order history blob is malformed, resetting: %v", err)
		return []models.HistoricalDayOrders{}, true, nil
	}
	if buckets == nil {
		// JSON valid tapi bukan array (mis. "null" atau object)
		return []models.HistoricalDayOrders{}, true, nil
	}
	return buckets, false, nil
}

// ArchiveToday memindahkan seluruh order aktif ke bucket hari ini.
// Bucket untuk hari yang sama DIGANTI (bukan di-append), bucket diurutkan
// menurun berdasarkan tanggal, lalu order aktif dihapus. Order set kosong
// mengembalikan ErrNothingToArchive tanpa menulis apapun.
func (hs *HistoryService) ArchiveToday(now time.Time) (models.HistoricalDayOrders, error) {
	var orders []models.Order
	if err := hs.DB.Order("created_at asc").Find(&orders).Error; err != nil {
		return models.HistoricalDayOrders{}, err
	}
	if len(orders) == 0 {
		return models.HistoricalDayOrders{}, ErrNothingToArchive
	}

	buckets, _, err := hs.Load()
	if err != nil {
		return models.HistoricalDayOrders{}, err
	}

	dayKey := now.Format("2006-01-02")
	bucket := models.HistoricalDayOrders{Date: dayKey, Orders: orders}

	replaced := false
	for i := range buckets {
		if buckets[i].Date == dayKey {
			buckets[i] = bucket
			replaced = true
			break
		}
	}
	if !replaced {
		buckets = append(buckets, bucket)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date > buckets[j].Date
	})

	tx := hs.DB.Begin()
	raw, err := json.Marshal(buckets)
	if err != nil {
		tx.Rollback()
		return models.HistoricalDayOrders{}, err
	}
	blob := models.StorageBlob{Key: OrderHistoryKey, Value: string(raw), UpdatedAt: now}
	if err := tx.Save(&blob).Error; err != nil {
		tx.Rollback()
		return models.HistoricalDayOrders{}, err
	}
	if err := tx.Where("1 = 1").Delete(&models.Order{}).Error; err != nil {
		tx.Rollback()
		return models.HistoricalDayOrders{}, err
	}
	if err := tx.Commit().Error; err != nil {
		return models.HistoricalDayOrders{}, err
	}

	utils.InfoLogger.Printf("Archived %d order(s) into bucket %s", len(orders), dayKey)
	return bucket, nil
}

// Clear menghapus seluruh arsip.
func (hs *HistoryService) Clear() error {
	return hs.DB.Delete(&models.StorageBlob{}, "key = ?", OrderHistoryKey).Error
}
