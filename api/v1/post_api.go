package v1

import (
	"net/http"

	"blogr/api/v1/request"
	"blogr/internal/metrics"
	"blogr/middleware"
	"blogr/service"

	"github.com/gin-gonic/gin"
)

// PostAPI 聚合文章相关的 HTTP Handler。
type PostAPI struct {
	service *service.PostService
}

func NewPostAPI(s *service.PostService) *PostAPI {
	return &PostAPI{service: s}
}

// List returns every post, newest first, with the author attached.
func (p *PostAPI) List(c *gin.Context) {
	posts, err := p.service.List()
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Create inserts a post owned by the logged-in user.
func (p *PostAPI) Create(c *gin.Context) {
	user, _ := middleware.UserFrom(c)
	var req request.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := p.service.Create(req.Title, req.Body, user)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	metrics.IncWrite("post", "create")
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// Show returns a single post together with its comments. No ownership
// check: anyone may view.
func (p *PostAPI) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	post, comments, err := p.service.Show(id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post, "comments": comments})
}

// Update rewrites title/body, gated on authorship.
func (p *PostAPI) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, _ := middleware.UserFrom(c)
	var req request.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := p.service.Update(id, req.Title, req.Body, user)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	metrics.IncWrite("post", "update")
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Delete removes a post and its comments, gated on authorship.
func (p *PostAPI) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, _ := middleware.UserFrom(c)
	if err := p.service.Delete(id, user); err != nil {
		abortServiceError(c, err)
		return
	}
	metrics.IncWrite("post", "delete")
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
