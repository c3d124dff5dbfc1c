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

type ProgramRequest struct {
	Title           string      `json:"title" binding:"required"`
	Description     string      `json:"description" binding:"required"`
	FeaturedImage   *string     `json:"featuredImage"`
	StartDate       *time.Time  `json:"startDate"`
	EndDate         *time.Time  `json:"endDate"`
	Location        *string     `json:"location"`
	MaxParticipants interface{} `json:"maxParticipants"`
	Status          string      `json:"status" binding:"omitempty,oneof=UPCOMING RUNNING COMPLETED"`
}

type ProgramSummary struct {
	models.Program
	RegistrationCount int64 `json:"registrationCount"`
}

// registrationCounts returns the number of registrations per program for
// the given ids in a single grouped query.
func registrationCounts(programIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(programIDs))

	if len(programIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ProgramID string
		Count     int64
	}

	err := db.DB.Model(&models.Registration{}).
		Select("program_id, count(*) as count").
		Where("program_id IN ?", programIDs).
		Group("program_id").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.ProgramID] = row.Count
	}

	return counts, nil
}

func ListPrograms(ctx *gin.Context) {
	page, limit, skip := utils.ParsePageQuery(ctx)
	status := ctx.Query("status")

	var programs []models.Program
	var total int64

	g := new(errgroup.Group)

	g.Go(func() error {
		query := db.DB.Preload("Author", authorSelect).Order("created_at desc").Offset(skip).Limit(limit)
		if status != "" {
			query = query.Where("status = ?", status)
		}
		return query.Find(&programs).Error
	})

	g.Go(func() error {
		query := db.DB.Model(&models.Program{})
		if status != "" {
			query = query.Where("status = ?", status)
		}
		return query.Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		log.Printf("Failed to list programs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch programs"})
		return
	}

	ids := make([]string, 0, len(programs))

	for _, program := range programs {
		ids = append(ids, program.ID)
	}

	counts, err := registrationCounts(ids)

	if err != nil {
		log.Printf("Failed to count registrations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch programs"})
		return
	}

	summaries := make([]ProgramSummary, 0, len(programs))

	for _, program := range programs {
		summaries = append(summaries, ProgramSummary{
			Program:           program,
			RegistrationCount: counts[program.ID],
		})
	}

	ctx.JSON(http.StatusOK, types.ListResponse{
		Data:       summaries,
		Pagination: utils.NewPagination(page, limit, total),
	})
}

func CreateProgram(ctx *gin.Context) {
	var body ProgramRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	maxParticipants, err := utils.ParseOptionalInt(body.MaxParticipants)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "maxParticipants must be a number"})
		return
	}

	status := body.Status

	if status == "" {
		status = models.ProgramUpcoming
	}

	program := models.Program{
		Title:           body.Title,
		Slug:            utils.Slugify(body.Title),
		Description:     body.Description,
		FeaturedImage:   body.FeaturedImage,
		StartDate:       body.StartDate,
		EndDate:         body.EndDate,
		Location:        body.Location,
		MaxParticipants: maxParticipants,
		Status:          status,
		AuthorID:        userID,
	}

	if err := db.DB.Create(&program).Error; err != nil {
		log.Printf("Failed to create program: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create program"})
		return
	}

	if err := db.DB.Preload("Author", authorSelect).First(&program, "id = ?", program.ID).Error; err != nil {
		log.Printf("Failed to reload program: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create program"})
		return
	}

	ctx.JSON(http.StatusCreated, program)
}

func GetProgram(ctx *gin.Context) {
	var program models.Program

	err := db.DB.
		Preload("Author", authorSelect).
		Preload("Registrations").
		Where("id = ?", ctx.Param("id")).
		First(&program).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Program not found"})
		} else {
			log.Printf("Failed to fetch program: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch program"})
		}
		return
	}

	if program.Registrations == nil {
		program.Registrations = []models.Registration{}
	}

	ctx.JSON(http.StatusOK, program)
}

func UpdateProgram(ctx *gin.Context) {
	var body ProgramRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	maxParticipants, err := utils.ParseOptionalInt(body.MaxParticipants)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "maxParticipants must be a number"})
		return
	}

	var program models.Program

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Program not found"})
		} else {
			log.Printf("Failed to fetch program: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch program"})
		}
		return
	}

	program.Title = body.Title
	program.Slug = utils.Slugify(body.Title)
	program.Description = body.Description
	program.FeaturedImage = body.FeaturedImage
	program.StartDate = body.StartDate
	program.EndDate = body.EndDate
	program.Location = body.Location
	program.MaxParticipants = maxParticipants

	// An omitted status keeps the stored value instead of writing the
	// zero value.
	if body.Status != "" {
		program.Status = body.Status
	}

	if err := db.DB.Save(&program).Error; err != nil {
		log.Printf("Failed to update program: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update program"})
		return
	}

	if err := db.DB.Preload("Author", authorSelect).First(&program, "id = ?", program.ID).Error; err != nil {
		log.Printf("Failed to reload program: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update program"})
		return
	}

	ctx.JSON(http.StatusOK, program)
}

func DeleteProgram(ctx *gin.Context) {
	var program models.Program

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Program not found"})
		} else {
			log.Printf("Failed to fetch program: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch program"})
		}
		return
	}

	if err := db.DB.Delete(&program).Error; err != nil {
		log.Printf("Failed to delete program: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete program"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Program deleted successfully"})
}
