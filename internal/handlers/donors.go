package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yptkiasma/admin-backend/db"
	"github.com/yptkiasma/admin-backend/internal/models"
	"github.com/yptkiasma/admin-backend/internal/types"
	"github.com/yptkiasma/admin-backend/internal/utils"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type DonorRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type DonorSummary struct {
	models.Donor
	DonationCount int `json:"donationCount"`
}

func ListDonors(ctx *gin.Context) {
	page, limit, skip := utils.ParsePageQuery(ctx)

	var donors []models.Donor
	var total int64

	g := new(errgroup.Group)

	g.Go(func() error {
		return db.DB.
			Preload("Donations", func(tx *gorm.DB) *gorm.DB {
				return tx.Select("id", "donor_id", "amount", "status")
			}).
			Order("created_at desc").
			Offset(skip).
			Limit(limit).
			Find(&donors).Error
	})

	g.Go(func() error {
		return db.DB.Model(&models.Donor{}).Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		log.Printf("Failed to list donors: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donors"})
		return
	}

	summaries := make([]DonorSummary, 0, len(donors))

	for _, donor := range donors {
		summaries = append(summaries, DonorSummary{
			Donor:         donor,
			DonationCount: len(donor.Donations),
		})
	}

	ctx.JSON(http.StatusOK, types.ListResponse{
		Data:       summaries,
		Pagination: utils.NewPagination(page, limit, total),
	})
}

func CreateDonor(ctx *gin.Context) {
	var body DonorRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	donor := models.Donor{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Address: body.Address,
	}

	if err := db.DB.Create(&donor).Error; err != nil {
		log.Printf("Failed to create donor: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donor"})
		return
	}

	ctx.JSON(http.StatusCreated, donor)
}

func GetDonor(ctx *gin.Context) {
	var donor models.Donor

	err := db.DB.
		Preload("Donations", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("donated_at desc")
		}).
		Where("id = ?", ctx.Param("id")).
		First(&donor).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Donor not found"})
		} else {
			log.Printf("Failed to fetch donor: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donor"})
		}
		return
	}

	if donor.Donations == nil {
		donor.Donations = []models.Donation{}
	}

	ctx.JSON(http.StatusOK, donor)
}

func UpdateDonor(ctx *gin.Context) {
	var body DonorRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var donor models.Donor

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&donor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Donor not found"})
		} else {
			log.Printf("Failed to fetch donor: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donor"})
		}
		return
	}

	donor.Name = body.Name
	donor.Email = body.Email
	donor.Phone = body.Phone
	donor.Address = body.Address

	if err := db.DB.Save(&donor).Error; err != nil {
		log.Printf("Failed to update donor: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donor"})
		return
	}

	ctx.JSON(http.StatusOK, donor)
}

func DeleteDonor(ctx *gin.Context) {
	var donor models.Donor

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&donor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Donor not found"})
		} else {
			log.Printf("Failed to fetch donor: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donor"})
		}
		return
	}

	if err := db.DB.Delete(&donor).Error; err != nil {
		log.Printf("Failed to delete donor: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete donor"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Donor deleted successfully"})
}
