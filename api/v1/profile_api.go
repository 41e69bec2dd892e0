package v1

import (
	"io"
	"net/http"

	"blogr/api/v1/request"
	"blogr/internal/metrics"
	"blogr/middleware"
	"blogr/service"

	"github.com/gin-gonic/gin"
)

// ProfileAPI 聚合个人主页相关的 HTTP Handler。
type ProfileAPI struct {
	service *service.ProfileService
}

func NewProfileAPI(s *service.ProfileService) *ProfileAPI {
	return &ProfileAPI{service: s}
}

// View returns a user's public profile page data.
func (p *ProfileAPI) View(c *gin.Context) {
	profile, err := p.service.View(c.Param("username"))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Update rewrites bio and optionally the photo, gated on self-ownership.
// The photo arrives as a multipart file field named "photo".
func (p *ProfileAPI) Update(c *gin.Context) {
	user, _ := middleware.UserFrom(c)
	var req request.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var photo io.Reader
	var photoName string
	if header, err := c.FormFile("photo"); err == nil {
		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
			return
		}
		defer f.Close()
		photo = f
		photoName = header.Filename
	}

	profile, err := p.service.Update(c.Param("username"), req.Bio, photoName, photo, user)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	metrics.IncWrite("profile", "update")
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
