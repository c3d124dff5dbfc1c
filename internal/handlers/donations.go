package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yptkiasma/admin-backend/db"
	"github.com/yptkiasma/admin-backend/internal/models"
	"github.com/yptkiasma/admin-backend/internal/types"
	"github.com/yptkiasma/admin-backend/internal/utils"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type CreateDonationRequest struct {
	DonorID       string      `json:"donorId" binding:"required"`
	Amount        interface{} `json:"amount" binding:"required"`
	PaymentMethod string      `json:"paymentMethod" binding:"required"`
	Status        string      `json:"status" binding:"omitempty,oneof=PENDING VERIFIED REJECTED"`
	Notes         *string     `json:"notes"`
}

type UpdateDonationRequest struct {
	Amount        interface{} `json:"amount" binding:"required"`
	PaymentMethod string      `json:"paymentMethod" binding:"required"`
	Status        string      `json:"status" binding:"required,oneof=PENDING VERIFIED REJECTED"`
	Notes         *string     `json:"notes"`
}

func ListDonations(ctx *gin.Context) {
	page, limit, skip := utils.ParsePageQuery(ctx)
	status := ctx.Query("status")

	var donations []models.Donation
	var total int64

	g := new(errgroup.Group)

	g.Go(func() error {
		query := db.DB.Preload("Donor").Order("donated_at desc").Offset(skip).Limit(limit)
		if status != "" {
			query = query.Where("status = ?", status)
		}
		return query.Find(&donations).Error
	})

	g.Go(func() error {
		query := db.DB.Model(&models.Donation{})
		if status != "" {
			query = query.Where("status = ?", status)
		}
		return query.Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		log.Printf("Failed to list donations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donations"})
		return
	}

	if donations == nil {
		donations = []models.Donation{}
	}

	ctx.JSON(http.StatusOK, types.ListResponse{
		Data:       donations,
		Pagination: utils.NewPagination(page, limit, total),
	})
}

func CreateDonation(ctx *gin.Context) {
	var body CreateDonationRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	amount, err := utils.ParseAmount(body.Amount)

	if err != nil || amount < 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a non-negative number"})
		return
	}

	status := body.Status

	if status == "" {
		status = models.DonationPending
	}

	donation := models.Donation{
		DonorID:       body.DonorID,
		Amount:        amount,
		PaymentMethod: body.PaymentMethod,
		Status:        status,
		Notes:         body.Notes,
		DonatedAt:     time.Now(),
	}

	if err := db.DB.Create(&donation).Error; err != nil {
		log.Printf("Failed to create donation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donation"})
		return
	}

	if err := db.DB.Preload("Donor").First(&donation, "id = ?", donation.ID).Error; err != nil {
		log.Printf("Failed to reload donation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donation"})
		return
	}

	ctx.JSON(http.StatusCreated, donation)
}

func GetDonation(ctx *gin.Context) {
	var donation models.Donation

	err := db.DB.Preload("Donor").Where("id = ?", ctx.Param("id")).First(&donation).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		} else {
			log.Printf("Failed to fetch donation: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donation"})
		}
		return
	}

	ctx.JSON(http.StatusOK, donation)
}

func UpdateDonation(ctx *gin.Context) {
	var body UpdateDonationRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	amount, err := utils.ParseAmount(body.Amount)

	if err != nil || amount < 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a non-negative number"})
		return
	}

	var donation models.Donation

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&donation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		} else {
			log.Printf("Failed to fetch donation: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donation"})
		}
		return
	}

	donation.Amount = amount
	donation.PaymentMethod = body.PaymentMethod
	donation.Status = body.Status
	donation.Notes = body.Notes

	// Every update that submits VERIFIED restamps the verification time,
	// and other statuses never clear it.
	if body.Status == models.DonationVerified {
		now := time.Now()
		donation.VerifiedAt = &now
	}

	if err := db.DB.Save(&donation).Error; err != nil {
		log.Printf("Failed to update donation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation"})
		return
	}

	if err := db.DB.Preload("Donor").First(&donation, "id = ?", donation.ID).Error; err != nil {
		log.Printf("Failed to reload donation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation"})
		return
	}

	ctx.JSON(http.StatusOK, donation)
}

func DeleteDonation(ctx *gin.Context) {
	var donation models.Donation

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&donation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		} else {
			log.Printf("Failed to fetch donation: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donation"})
		}
		return
	}

	if err := db.DB.Delete(&donation).Error; err != nil {
		log.Printf("Failed to delete donation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete donation"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Donation deleted successfully"})
}
