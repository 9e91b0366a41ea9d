package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go-blog-platform/internal/service"
	"go-blog-platform/pkg/cache"
	"go-blog-platform/pkg/logger"
	"go-blog-platform/pkg/pagination"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostHandler serves the post read views and mutations. The list views go
// through the short-lived response cache when one is wired in; everything
// else always hits the database.
type PostHandler struct {
	postService    *service.PostService
	commentService *service.CommentService
	feedService    *service.FeedService
	imageService   *service.ImageService
	cache          *cache.ResponseCache
}

func NewPostHandler(
	postService *service.PostService,
	commentService *service.CommentService,
	feedService *service.FeedService,
	imageService *service.ImageService,
	responseCache *cache.ResponseCache,
) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
		feedService:    feedService,
		imageService:   imageService,
		cache:          responseCache,
	}
}

func (h *PostHandler) cached(key string, c *gin.Context) bool {
	if h.cache == nil {
		return false
	}
	payload, ok := h.cache.Get(key)
	if !ok {
		return false
	}
	c.JSON(http.StatusOK, payload)
	return true
}

func (h *PostHandler) storeAndRespond(key string, c *gin.Context, payload gin.H) {
	if h.cache != nil {
		h.cache.Set(key, payload)
	}
	c.JSON(http.StatusOK, payload)
}

// Index lists all posts, newest first.
func (h *PostHandler) Index(c *gin.Context) {
	page := pagination.ParsePageParam(c.Query("page"))
	key := cache.Key("index", page)
	if h.cached(key, c) {
		return
	}

	result, err := h.feedService.Index(page)
	if err != nil {
		respondError(c, err)
		return
	}
	h.storeAndRespond(key, c, gin.H{
		"posts":      result.Posts,
		"pagination": result.Page,
	})
}

// Feed lists posts by the authors the viewer follows. Anonymous viewers get
// an empty feed rather than an error.
func (h *PostHandler) Feed(c *gin.Context) {
	viewer := viewerID(c)
	page := pagination.ParsePageParam(c.Query("page"))
	key := cache.Key("feed", viewer, page)
	if h.cached(key, c) {
		return
	}

	result, err := h.feedService.Feed(viewer, page)
	if err != nil {
		respondError(c, err)
		return
	}
	h.storeAndRespond(key, c, gin.H{
		"posts":      result.Posts,
		"pagination": result.Page,
	})
}

// Detail returns a single post with its comments.
func (h *PostHandler) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	comments, err := h.commentService.ForPost(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
	})
}

// postForm reads a post submission from either JSON or multipart form data.
// Multipart is used when an image rides along.
func (h *PostHandler) postForm(c *gin.Context) (service.PostInput, *string, error) {
	var in service.PostInput

	if c.ContentType() == "application/json" {
		if err := c.ShouldBindJSON(&in); err != nil {
			return in, nil, err
		}
		return in, nil, nil
	}

	in.Text = c.PostForm("text")
	if raw := c.PostForm("group_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return in, nil, errors.New("invalid group_id")
		}
		groupID := uint(id)
		in.GroupID = &groupID
	}

	file, err := c.FormFile("image")
	if err != nil {
		// No image attached.
		return in, nil, nil
	}
	ref, err := h.imageService.Store(file)
	if err != nil {
		return in, nil, err
	}
	logger.L.Info("Stored post image", zap.String("ref", ref))
	return in, &ref, nil
}

func submittedFields(in service.PostInput) gin.H {
	return gin.H{"text": in.Text, "group_id": in.GroupID}
}

// Create publishes a new post for the authenticated user.
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	in, imageRef, err := h.postForm(c)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			respondValidation(c, ve, submittedFields(in))
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image := ""
	if imageRef != nil {
		image = *imageRef
	}
	post, err := h.postService.Create(userID, in, image)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			respondValidation(c, ve, submittedFields(in))
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// Update edits a post. A viewer who is not the author is redirected to the
// post's read view instead of getting an error page.
func (h *PostHandler) Update(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	in, imageRef, err := h.postForm(c)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			respondValidation(c, ve, submittedFields(in))
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Update(id, userID, in, imageRef)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.Redirect(http.StatusFound, fmt.Sprintf("/api/posts/%d", id))
			return
		}
		if ve, ok := service.AsValidationError(err); ok {
			respondValidation(c, ve, submittedFields(in))
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Delete removes a post. Non-authors are redirected like on Update.
func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.postService.Delete(id, userID); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.Redirect(http.StatusFound, fmt.Sprintf("/api/posts/%d", id))
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
