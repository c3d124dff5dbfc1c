package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yptkiasma/admin-backend/db"
	"github.com/yptkiasma/admin-backend/internal/models"
	"github.com/yptkiasma/admin-backend/internal/types"
	"github.com/yptkiasma/admin-backend/internal/utils"
)

// Public feed shapes match what the YPT Kiasma website consumes; they
// are a projection of the admin entities, not the entities themselves.

type PublicPost struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Excerpt     string             `json:"excerpt"`
	Category    string             `json:"category"`
	Date        time.Time          `json:"date"`
	Author      string             `json:"author"`
	Featured    bool               `json:"featured"`
	ImageURL    string             `json:"imageUrl"`
	Content     []string           `json:"content"`
	SourceLinks []utils.SourceLink `json:"sourceLinks"`
}

type PublicProgram struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	ImageURL    string               `json:"imageUrl"`
	Status      string               `json:"status"`
	Date        time.Time            `json:"date"`
	Location    string               `json:"location"`
	Details     PublicProgramDetails `json:"details"`
}

type PublicProgramDetails struct {
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	MaxParticipants *int       `json:"maxParticipants"`
	RegisteredCount int64      `json:"registeredCount"`
}

type PublicAlbum struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CoverImage  string    `json:"coverImage"`
	ImageCount  int       `json:"imageCount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
}

func publicLimit(ctx *gin.Context) int {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	if err != nil || limit < 1 {
		return 20
	}

	return limit
}

func publicFailure(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusInternalServerError, types.PublicError{
		Success: false,
		Error:   message,
		Data:    []interface{}{},
	})
}

func PublicNews(ctx *gin.Context) {
	var news []models.News

	err := db.DB.
		Preload("Author", authorSelect).
		Where("status = ?", models.NewsPublished).
		Order("published_at desc").
		Limit(publicLimit(ctx)).
		Find(&news).Error

	if err != nil {
		log.Printf("Error fetching public news: %v", err)
		publicFailure(ctx, "Failed to fetch news")
		return
	}

	posts := make([]PublicPost, 0, len(news))

	for _, item := range news {
		excerpt := utils.ExtractExcerpt(item.Content)

		if item.Excerpt != nil && *item.Excerpt != "" {
			excerpt = *item.Excerpt
		}

		category := "umum"

		if item.Category != nil && *item.Category != "" {
			category = *item.Category
		}

		date := item.CreatedAt

		if item.PublishedAt != nil {
			date = *item.PublishedAt
		}

		imageURL := "/images/default-news.jpg"

		if item.FeaturedImage != nil && *item.FeaturedImage != "" {
			imageURL = *item.FeaturedImage
		}

		author := ""

		if item.Author != nil {
			author = item.Author.Name
		}

		posts = append(posts, PublicPost{
			ID:          item.ID,
			Title:       item.Title,
			Excerpt:     excerpt,
			Category:    category,
			Date:        date,
			Author:      author,
			Featured:    false,
			ImageURL:    imageURL,
			Content:     utils.SplitParagraphs(item.Content),
			SourceLinks: utils.ExtractSourceLinks(item.Content),
		})
	}

	ctx.JSON(http.StatusOK, types.PublicResponse{
		Success:     true,
		Data:        posts,
		Count:       len(posts),
		GeneratedAt: time.Now(),
	})
}

func PublicPrograms(ctx *gin.Context) {
	query := db.DB.Order("created_at desc").Limit(publicLimit(ctx))

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", strings.ToUpper(status))
	}

	var programs []models.Program

	if err := query.Find(&programs).Error; err != nil {
		log.Printf("Error fetching public programs: %v", err)
		publicFailure(ctx, "Failed to fetch programs")
		return
	}

	ids := make([]string, 0, len(programs))

	for _, program := range programs {
		ids = append(ids, program.ID)
	}

	counts, err := registrationCounts(ids)

	if err != nil {
		log.Printf("Error counting registrations: %v", err)
		publicFailure(ctx, "Failed to fetch programs")
		return
	}

	feed := make([]PublicProgram, 0, len(programs))

	for _, program := range programs {
		date := program.CreatedAt

		if program.StartDate != nil {
			date = *program.StartDate
		}

		imageURL := "/images/default-program.jpg"

		if program.FeaturedImage != nil && *program.FeaturedImage != "" {
			imageURL = *program.FeaturedImage
		}

		location := "Bukittinggi"

		if program.Location != nil && *program.Location != "" {
			location = *program.Location
		}

		feed = append(feed, PublicProgram{
			ID:          program.ID,
			Title:       program.Title,
			Description: utils.StripHTML(program.Description),
			Category:    utils.ProgramCategory(program.Title),
			ImageURL:    imageURL,
			Status:      utils.PublicProgramStatus(program.Status),
			Date:        date,
			Location:    location,
			Details: PublicProgramDetails{
				StartDate:       program.StartDate,
				EndDate:         program.EndDate,
				MaxParticipants: program.MaxParticipants,
				RegisteredCount: counts[program.ID],
			},
		})
	}

	ctx.JSON(http.StatusOK, types.PublicResponse{
		Success:     true,
		Data:        feed,
		Count:       len(feed),
		GeneratedAt: time.Now(),
	})
}

// PublicAlbums repurposes programs that carry a featured image as photo
// albums for the website gallery.
func PublicAlbums(ctx *gin.Context) {
	var programs []models.Program

	err := db.DB.
		Where("featured_image IS NOT NULL").
		Order("created_at desc").
		Limit(12).
		Find(&programs).Error

	if err != nil {
		log.Printf("Error fetching albums: %v", err)
		publicFailure(ctx, "Failed to fetch albums")
		return
	}

	albums := make([]PublicAlbum, 0, len(programs))

	for _, program := range programs {
		coverImage := ""

		if program.FeaturedImage != nil {
			coverImage = *program.FeaturedImage
		}

		albums = append(albums, PublicAlbum{
			ID:          program.ID,
			Title:       program.Title,
			Description: utils.TruncateText(utils.StripHTML(program.Description), 150),
			CoverImage:  coverImage,
			ImageCount:  1,
			Category:    utils.ProgramCategory(program.Title),
			Date:        program.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, types.PublicResponse{
		Success:     true,
		Data:        albums,
		Count:       len(albums),
		GeneratedAt: time.Now(),
	})
}
