package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/madhyam/madhyam-api/initializers"
	"github.com/madhyam/madhyam-api/models"
	"github.com/madhyam/madhyam-api/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// generateSlug turns a title into a URL-safe slug.
func generateSlug(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// parseList accepts either a JSON array or a comma-separated string and
// returns the cleaned items.
func parseList(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return []string{}
	}

	if strings.HasPrefix(value, "[") {
		var items []string
		if err := json.Unmarshal([]byte(value), &items); err == nil {
			return items
		}
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if items == nil {
		items = []string{}
	}
	return items
}

func toJSONList(items []string) datatypes.JSON {
	raw, _ := json.Marshal(items)
	return datatypes.JSON(raw)
}

type blogRequest struct {
	Title    string `json:"title" form:"title" binding:"required"`
	Content  string `json:"content" form:"content" binding:"required"`
	AuthorID int    `json:"authorId" form:"authorId" binding:"required"`
	Image    string `json:"image" form:"image"`
	Tags     string `json:"tags" form:"tags"`
	Status   string `json:"status" form:"status" binding:"omitempty,oneof=draft published archived"`
}

// resolveUploadedImage stores an attached image file when present, otherwise
// falls back to an image URL carried in the request body.
func resolveUploadedImage(ctx *gin.Context, scope, bodyImage string) (string, error) {
	file, err := ctx.FormFile("image")
	if err != nil {
		return bodyImage, nil
	}
	return utils.SaveUpload(file, scope)
}

// CreateBlog publishes a new blog post, storing an uploaded image when one
// is attached.
func CreateBlog(ctx *gin.Context) {
	var blogData blogRequest
	if err := ctx.ShouldBind(&blogData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Title, content and authorId are required")
		return
	}

	image, err := resolveUploadedImage(ctx, "blogs", blogData.Image)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to store image", err)
		return
	}

	status := blogData.Status
	if status == "" {
		status = "published"
	}

	blog := models.Blog{
		Title:    blogData.Title,
		Content:  blogData.Content,
		AuthorID: blogData.AuthorID,
		Image:    image,
		Tags:     toJSONList(parseList(blogData.Tags)),
		Status:   status,
		Slug:     generateSlug(blogData.Title),
	}
	if result := initializers.DB.Create(&blog); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error creating blog post", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "data": blog})
}

// GetBlogs lists blog posts with pagination. Passing authorId shows that
// author's drafts as well; otherwise only published posts are returned.
func GetBlogs(ctx *gin.Context) {
	page, limit, offset := utils.PageParams(ctx, 10)

	applyFilters := func(db *gorm.DB) *gorm.DB {
		if authorId := ctx.Query("authorId"); authorId != "" {
			db = db.Where("author_id = ?", authorId)
		} else {
			db = db.Where("status = ?", "published")
		}
		if tag := ctx.Query("tag"); tag != "" {
			db = db.Where(datatypes.JSONArrayQuery("tags").Contains(tag))
		}
		if search := ctx.Query("search"); search != "" {
			db = db.Where("title LIKE ? OR content LIKE ?", "%"+search+"%", "%"+search+"%")
		}
		return db
	}

	var blogs []models.Blog
	result := applyFilters(initializers.DB).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&blogs)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting blogs", result.Error)
		return
	}

	var count int64
	if err := applyFilters(initializers.DB.Model(&models.Blog{})).Count(&count).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting blogs", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":    true,
		"data":       blogs,
		"pagination": utils.Paginate(page, limit, count),
	})
}

// GetBlogBySlug returns a published post and bumps its view count.
func GetBlogBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	var blog models.Blog
	result := initializers.DB.
		Where("slug = ? AND status = ?", slug, "published").
		Preload("Author").
		First(&blog)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Blog post not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Error getting blog post", result.Error)
		}
		return
	}

	if err := initializers.DB.Model(&blog).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		log.Println("View count update error:", err)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": blog})
}

// GetBlogTags returns the distinct tags across published posts.
func GetBlogTags(ctx *gin.Context) {
	var rows []models.Blog
	result := initializers.DB.
		Select("tags").
		Where("status = ?", "published").
		Find(&rows)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting blog tags", result.Error)
		return
	}

	seen := map[string]bool{}
	uniqueTags := []string{}
	for _, row := range rows {
		var tags []string
		if err := json.Unmarshal(row.Tags, &tags); err != nil {
			continue
		}
		for _, tag := range tags {
			if !seen[tag] {
				seen[tag] = true
				uniqueTags = append(uniqueTags, tag)
			}
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": uniqueTags})
}

// GetBlogsByAuthor lists an author's posts, drafts included.
func GetBlogsByAuthor(ctx *gin.Context) {
	authorId, err := strconv.Atoi(ctx.Param("authorId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid author ID")
		return
	}

	page, limit, offset := utils.PageParams(ctx, 10)

	var blogs []models.Blog
	result := initializers.DB.
		Where("author_id = ?", authorId).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&blogs)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting blogs by author", result.Error)
		return
	}

	var count int64
	if err := initializers.DB.Model(&models.Blog{}).
		Where("author_id = ?", authorId).
		Count(&count).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error getting blogs by author", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":    true,
		"data":       blogs,
		"pagination": utils.Paginate(page, limit, count),
	})
}

type blogUpdateRequest struct {
	Title   *string `json:"title" form:"title"`
	Content *string `json:"content" form:"content"`
	Image   *string `json:"image" form:"image"`
	Tags    *string `json:"tags" form:"tags"`
	Status  *string `json:"status" form:"status" binding:"omitempty,oneof=draft published archived"`
}

// UpdateBlog applies a partial update, regenerating the slug when the title
// changes.
func UpdateBlog(ctx *gin.Context) {
	blogId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	var updateData blogUpdateRequest
	if err := ctx.ShouldBind(&updateData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var blog models.Blog
	if err := initializers.DB.First(&blog, blogId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Blog post not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Error updating blog post", err)
		}
		return
	}

	updates := map[string]any{}
	if updateData.Title != nil && *updateData.Title != blog.Title {
		updates["title"] = *updateData.Title
		updates["slug"] = generateSlug(*updateData.Title)
	}
	if updateData.Content != nil {
		updates["content"] = *updateData.Content
	}
	if updateData.Tags != nil {
		updates["tags"] = toJSONList(parseList(*updateData.Tags))
	}
	if updateData.Status != nil {
		updates["status"] = *updateData.Status
	}

	bodyImage := ""
	if updateData.Image != nil {
		bodyImage = *updateData.Image
	}
	image, err := resolveUploadedImage(ctx, "blogs", bodyImage)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to store image", err)
		return
	}
	if image != "" {
		updates["image"] = image
	}

	if len(updates) > 0 {
		if err := initializers.DB.Model(&blog).Updates(updates).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Error updating blog post", err)
			return
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": blog})
}

// DeleteBlog removes a post.
func DeleteBlog(ctx *gin.Context) {
	blogId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	var blog models.Blog
	if err := initializers.DB.First(&blog, blogId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Blog post not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Error deleting blog post", err)
		}
		return
	}

	if err := initializers.DB.Delete(&blog).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error deleting blog post", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Blog post deleted successfully"})
}
