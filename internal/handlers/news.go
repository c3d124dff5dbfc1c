package handlers

import (
	"encoding/json"
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

type NewsRequest struct {
	Title         string     `json:"title" binding:"required"`
	Content       string     `json:"content" binding:"required"`
	Excerpt       *string    `json:"excerpt"`
	FeaturedImage *string    `json:"featuredImage"`
	Category      *string    `json:"category"`
	Tags          []string   `json:"tags"`
	Status        string     `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

func authorSelect(tx *gorm.DB) *gorm.DB {
	return tx.Select("id", "name", "email")
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

func ListNews(ctx *gin.Context) {
	page, limit, skip := utils.ParsePageQuery(ctx)
	status := ctx.Query("status")

	var news []models.News
	var total int64

	g := new(errgroup.Group)

	g.Go(func() error {
		query := db.DB.Preload("Author", authorSelect).Order("created_at desc").Offset(skip).Limit(limit)
		if status != "" {
			query = query.Where("status = ?", status)
		}
		return query.Find(&news).Error
	})

	g.Go(func() error {
		query := db.DB.Model(&models.News{})
		if status != "" {
			query = query.Where("status = ?", status)
		}
		return query.Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		log.Printf("Failed to list news: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	if news == nil {
		news = []models.News{}
	}

	ctx.JSON(http.StatusOK, types.ListResponse{
		Data:       news,
		Pagination: utils.NewPagination(page, limit, total),
	})
}

func CreateNews(ctx *gin.Context) {
	var body NewsRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tags, err := marshalTags(body.Tags)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tags"})
		return
	}

	status := body.Status

	if status == "" {
		status = models.NewsDraft
	}

	news := models.News{
		Title:         body.Title,
		Slug:          utils.Slugify(body.Title),
		Content:       body.Content,
		Excerpt:       body.Excerpt,
		FeaturedImage: body.FeaturedImage,
		Category:      body.Category,
		Tags:          tags,
		Status:        status,
		PublishedAt:   body.PublishedAt,
		AuthorID:      userID,
	}

	if err := db.DB.Create(&news).Error; err != nil {
		log.Printf("Failed to create news: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news"})
		return
	}

	if err := db.DB.Preload("Author", authorSelect).First(&news, "id = ?", news.ID).Error; err != nil {
		log.Printf("Failed to reload news: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news"})
		return
	}

	ctx.JSON(http.StatusCreated, news)
}

func GetNews(ctx *gin.Context) {
	var news models.News

	err := db.DB.Preload("Author", authorSelect).Where("id = ?", ctx.Param("id")).First(&news).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		} else {
			log.Printf("Failed to fetch news: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		}
		return
	}

	ctx.JSON(http.StatusOK, news)
}

func UpdateNews(ctx *gin.Context) {
	var body NewsRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var news models.News

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&news).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		} else {
			log.Printf("Failed to fetch news: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		}
		return
	}

	tags, err := marshalTags(body.Tags)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tags"})
		return
	}

	// Full-replace semantics: the slug always re-derives from the
	// submitted title, and an absent publishedAt clears the stored one.
	// Status is the exception: an omitted status keeps the stored value
	// instead of writing the zero value.
	news.Title = body.Title
	news.Slug = utils.Slugify(body.Title)
	news.Content = body.Content
	news.Excerpt = body.Excerpt
	news.FeaturedImage = body.FeaturedImage
	news.Category = body.Category
	news.Tags = tags
	news.PublishedAt = body.PublishedAt

	if body.Status != "" {
		news.Status = body.Status
	}

	if err := db.DB.Save(&news).Error; err != nil {
		log.Printf("Failed to update news: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news"})
		return
	}

	if err := db.DB.Preload("Author", authorSelect).First(&news, "id = ?", news.ID).Error; err != nil {
		log.Printf("Failed to reload news: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news"})
		return
	}

	ctx.JSON(http.StatusOK, news)
}

func DeleteNews(ctx *gin.Context) {
	var news models.News

	if err := db.DB.Where("id = ?", ctx.Param("id")).First(&news).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		} else {
			log.Printf("Failed to fetch news: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		}
		return
	}

	if err := db.DB.Delete(&news).Error; err != nil {
		log.Printf("Failed to delete news: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "News deleted successfully"})
}
