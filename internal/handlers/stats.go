package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yptkiasma/admin-backend/db"
	"github.com/yptkiasma/admin-backend/internal/models"
	"golang.org/x/sync/errgroup"
)

type StatsCounts struct {
	News              int64 `json:"news"`
	Programs          int64 `json:"programs"`
	Donors            int64 `json:"donors"`
	Donations         int64 `json:"donations"`
	PendingDonations  int64 `json:"pendingDonations"`
	VerifiedDonations int64 `json:"verifiedDonations"`
}

type MonthlyDonation struct {
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

type RecentNews struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type StatsResponse struct {
	Counts              StatsCounts       `json:"counts"`
	TotalDonationAmount float64           `json:"totalDonationAmount"`
	MonthlyDonations    []MonthlyDonation `json:"monthlyDonations"`
	RecentNews          []RecentNews      `json:"recentNews"`
	RecentDonations     []models.Donation `json:"recentDonations"`
}

const monthlyDonationsPostgres = `
	SELECT EXTRACT(MONTH FROM donated_at)::int AS month,
	       SUM(amount) AS total
	FROM donations
	WHERE EXTRACT(YEAR FROM donated_at) = ?
	  AND status = ?
	GROUP BY EXTRACT(MONTH FROM donated_at)
	ORDER BY month`

const monthlyDonationsSQLite = `
	SELECT CAST(strftime('%m', donated_at) AS integer) AS month,
	       SUM(amount) AS total
	FROM donations
	WHERE CAST(strftime('%Y', donated_at) AS integer) = ?
	  AND status = ?
	GROUP BY month
	ORDER BY month`

// sqlite has no EXTRACT; it backs the in-memory test databases.
func monthlyDonationsSQL() string {
	if db.DB.Dialector.Name() == "sqlite" {
		return monthlyDonationsSQLite
	}
	return monthlyDonationsPostgres
}

// GetStats aggregates the dashboard numbers. Every query is independent,
// so they all run concurrently and join before the response is built.
func GetStats(ctx *gin.Context) {
	var stats StatsResponse

	g := new(errgroup.Group)

	g.Go(func() error {
		return db.DB.Model(&models.News{}).Count(&stats.Counts.News).Error
	})

	g.Go(func() error {
		return db.DB.Model(&models.Program{}).Count(&stats.Counts.Programs).Error
	})

	g.Go(func() error {
		return db.DB.Model(&models.Donor{}).Count(&stats.Counts.Donors).Error
	})

	g.Go(func() error {
		return db.DB.Model(&models.Donation{}).Count(&stats.Counts.Donations).Error
	})

	g.Go(func() error {
		return db.DB.Model(&models.Donation{}).
			Where("status = ?", models.DonationPending).
			Count(&stats.Counts.PendingDonations).Error
	})

	g.Go(func() error {
		return db.DB.Model(&models.Donation{}).
			Where("status = ?", models.DonationVerified).
			Count(&stats.Counts.VerifiedDonations).Error
	})

	g.Go(func() error {
		return db.DB.Model(&models.Donation{}).
			Where("status = ?", models.DonationVerified).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&stats.TotalDonationAmount).Error
	})

	g.Go(func() error {
		return db.DB.Raw(monthlyDonationsSQL(),
			time.Now().Year(), models.DonationVerified,
		).Scan(&stats.MonthlyDonations).Error
	})

	g.Go(func() error {
		return db.DB.Model(&models.News{}).
			Select("id", "title", "status", "created_at").
			Order("created_at desc").
			Limit(5).
			Scan(&stats.RecentNews).Error
	})

	g.Go(func() error {
		return db.DB.
			Preload("Donor").
			Order("donated_at desc").
			Limit(5).
			Find(&stats.RecentDonations).Error
	})

	if err := g.Wait(); err != nil {
		log.Printf("Error fetching stats: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	if stats.MonthlyDonations == nil {
		stats.MonthlyDonations = []MonthlyDonation{}
	}

	if stats.RecentNews == nil {
		stats.RecentNews = []RecentNews{}
	}

	if stats.RecentDonations == nil {
		stats.RecentDonations = []models.Donation{}
	}

	ctx.JSON(http.StatusOK, stats)
}
