package api

import (
	"net/http"

	"go-blog-platform/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// Create adds a comment to a post for the authenticated user.
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var in service.CommentInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Create(postID, userID, in)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			respondValidation(c, ve, gin.H{"text": in.Text})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
