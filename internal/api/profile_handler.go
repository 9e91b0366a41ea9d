package api

import (
	"net/http"

	"go-blog-platform/internal/service"
	"go-blog-platform/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	feedService *service.FeedService
}

func NewProfileHandler(feedService *service.FeedService) *ProfileHandler {
	return &ProfileHandler{
		feedService: feedService,
	}
}

// Profile returns an author's page: the author, one page of their posts and
// the follow counters as seen by the current viewer. Works for anonymous
// viewers too; profiles are per-viewer so they bypass the response cache.
func (h *ProfileHandler) Profile(c *gin.Context) {
	username := c.Param("username")
	page := pagination.ParsePageParam(c.Query("page"))

	profile, err := h.feedService.AuthorProfile(username, viewerID(c), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"author":             profile.Author,
		"posts":              profile.Posts.Posts,
		"pagination":         profile.Posts.Page,
		"followers":          profile.Followers,
		"following":          profile.Following,
		"followed_by_viewer": profile.FollowedByViewer,
	})
}
