package v1

import (
	"net/http"

	"blogr/api/v1/request"
	"blogr/internal/metrics"
	"blogr/middleware"
	"blogr/service"

	"github.com/gin-gonic/gin"
)

// CommentAPI 聚合评论相关的 HTTP Handler。
type CommentAPI struct {
	service *service.CommentService
}

func NewCommentAPI(s *service.CommentService) *CommentAPI {
	return &CommentAPI{service: s}
}

// Add posts a comment on a post as the logged-in user.
func (a *CommentAPI) Add(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, _ := middleware.UserFrom(c)
	var req request.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment, err := a.service.Add(postID, req.Text, user)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	metrics.IncWrite("comment", "create")
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// Edit rewrites a comment, gated on the original poster's identity.
func (a *CommentAPI) Edit(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentID")
	if !ok {
		return
	}
	user, _ := middleware.UserFrom(c)
	var req request.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment, err := a.service.Edit(commentID, postID, req.Text, user)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	metrics.IncWrite("comment", "update")
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// Delete removes a comment, gated on the original poster's identity.
func (a *CommentAPI) Delete(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentID")
	if !ok {
		return
	}
	user, _ := middleware.UserFrom(c)
	if err := a.service.Delete(commentID, postID, user); err != nil {
		abortServiceError(c, err)
		return
	}
	metrics.IncWrite("comment", "delete")
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
