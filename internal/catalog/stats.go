// internal/catalog/stats.go
package catalog

import "github.com/codevault/codevault-backend/internal/models"

type UserStats struct {
	TotalProducts  int     `json:"totalProducts"`
	TotalPurchases int64   `json:"totalPurchases"`
	TotalEarnings  float64 `json:"totalEarnings"`
	AverageRating  float64 `json:"averageRating"`
}

// ComputeStats folds a user's authored products (with ratings loaded)
// into aggregate statistics. Earnings are price times downloads summed
// over every product. The average rating spans every score on every
// product and is exactly 0 when no ratings exist, never NaN.
func ComputeStats(products []models.Product, purchaseCount int64) UserStats {
	stats := UserStats{
		TotalProducts:  len(products),
		TotalPurchases: purchaseCount,
	}

	var scoreSum, scoreCount int
	for i := range products {
		p := &products[i]
		stats.TotalEarnings += p.Price * float64(p.Downloads)
		for _, r := range p.Ratings {
			scoreSum += r.Score
			scoreCount++
		}
	}

	if scoreCount > 0 {
		stats.AverageRating = float64(scoreSum) / float64(scoreCount)
	}

	return stats
}
