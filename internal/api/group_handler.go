package api

import (
	"net/http"

	"go-blog-platform/internal/service"
	"go-blog-platform/pkg/cache"
	"go-blog-platform/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groupService *service.GroupService
	feedService  *service.FeedService
	cache        *cache.ResponseCache
}

func NewGroupHandler(groupService *service.GroupService, feedService *service.FeedService, responseCache *cache.ResponseCache) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
		feedService:  feedService,
		cache:        responseCache,
	}
}

// List returns all groups ordered by title.
func (h *GroupHandler) List(c *gin.Context) {
	key := cache.Key("groups")
	if h.cache != nil {
		if payload, ok := h.cache.Get(key); ok {
			c.JSON(http.StatusOK, payload)
			return
		}
	}

	groups, err := h.groupService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	payload := gin.H{"groups": groups}
	if h.cache != nil {
		h.cache.Set(key, payload)
	}
	c.JSON(http.StatusOK, payload)
}

// Posts returns a group's posts, newest first.
func (h *GroupHandler) Posts(c *gin.Context) {
	slug := c.Param("slug")
	page := pagination.ParsePageParam(c.Query("page"))

	key := cache.Key("group", slug, page)
	if h.cache != nil {
		if payload, ok := h.cache.Get(key); ok {
			c.JSON(http.StatusOK, payload)
			return
		}
	}

	group, result, err := h.feedService.GroupPosts(slug, page)
	if err != nil {
		respondError(c, err)
		return
	}

	payload := gin.H{
		"group":      group,
		"posts":      result.Posts,
		"pagination": result.Page,
	}
	if h.cache != nil {
		h.cache.Set(key, payload)
	}
	c.JSON(http.StatusOK, payload)
}

// Create adds a new group.
func (h *GroupHandler) Create(c *gin.Context) {
	var in service.GroupInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groupService.Create(in)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			respondValidation(c, ve, gin.H{
				"title":       in.Title,
				"slug":        in.Slug,
				"description": in.Description,
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"group": group})
}
