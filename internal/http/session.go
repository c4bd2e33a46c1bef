package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pawandazzler/french-vocab-anki/internal/auth"
	"github.com/pawandazzler/french-vocab-anki/internal/entities"
)

// LoginStore creates and initializes users at login time.
type LoginStore interface {
	GetOrCreateUser(username string) (*entities.User, error)
}

type SessionController struct {
	store          LoginStore
	sessionManager *auth.SessionManager
}

func NewSessionController(store LoginStore, sessionManager *auth.SessionManager) *SessionController {
	return &SessionController{
		store:          store,
		sessionManager: sessionManager,
	}
}

// Login binds a username to the session, creating the user and its word
// states on first login. The session is only written once the user row and
// its state fan-out have committed, so a failed login leaves no identity
// behind.
// POST /login (form field: username)
func (sc *SessionController) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	if username == "" {
		respondBadRequest(c, "invalid username")
		return
	}

	if _, err := sc.store.GetOrCreateUser(username); err != nil {
		respondInternalError(c, err, "login")
		return
	}

	if err := sc.sessionManager.LoginSession(c.Request, username); err != nil {
		respondInternalError(c, err, "create session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout destroys the session.
// POST /logout
func (sc *SessionController) Logout(c *gin.Context) {
	if err := sc.sessionManager.DestroySession(c.Request); err != nil {
		respondInternalError(c, err, "logout")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
