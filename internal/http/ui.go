package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawandazzler/french-vocab-anki/internal/auth"
)

type UIController struct{}

func NewUIController() *UIController {
	return &UIController{}
}

// IndexPage renders the single-page trainer UI.
// GET /
func (u *UIController) IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Username": auth.GetUsername(c),
	})
}
