package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawandazzler/french-vocab-anki/internal/database/vocabulary"
	"github.com/pawandazzler/french-vocab-anki/internal/entities"
	"github.com/pawandazzler/french-vocab-anki/internal/tasks"
)

// quizSize is the maximum number of words returned per quiz round.
const quizSize = 5

// WordStore defines database operations for vocabulary and word states.
type WordStore interface {
	BulkAdd(pairs []vocabulary.Pair) (int, []string, error)
	CountColors(userID uint) (vocabulary.ColorCounts, error)
	RandomWords(userID uint, colorFilter string, limit int) ([]vocabulary.QuizWord, error)
	Grade(userID uint, english, answer string) (bool, string, error)
	SetColor(userID uint, english string, color entities.Color) error
}

type WordsController struct {
	store      WordStore
	taskClient *tasks.Client
}

func NewWordsController(store WordStore, taskClient *tasks.Client) *WordsController {
	return &WordsController{
		store:      store,
		taskClient: taskClient,
	}
}

// GetColorCounts returns per-color word state counts for the session user.
// Requests without an identity get all-zero counts, not an error.
// GET /api/get_color_counts
func (wc *WordsController) GetColorCounts(c *gin.Context) {
	counts, err := wc.store.CountColors(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "get color counts")
		return
	}
	c.JSON(http.StatusOK, counts)
}

// BulkAddRequest is the request body for bulk vocabulary import.
type BulkAddRequest struct {
	Words []vocabulary.Pair `json:"words"`
}

// AddVocabBulk imports a list of word pairs and fans the new terms out to
// every registered user.
// POST /api/add_vocab_bulk
func (wc *WordsController) AddVocabBulk(c *gin.Context) {
	var req BulkAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "missing 'words' in request")
		return
	}
	if len(req.Words) == 0 {
		respondBadRequest(c, "'words' must be a non-empty list")
		return
	}

	added, newTerms, err := wc.store.BulkAdd(req.Words)
	if err != nil {
		respondInternalError(c, err, "bulk add vocabulary")
		return
	}

	// Warm the pronunciation cache for the imported terms in the background
	if wc.taskClient != nil {
		for _, term := range newTerms {
			_, _ = wc.taskClient.Add(tasks.PrewarmAudioTask{French: term}).Save()
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "added": added})
}

// GetRandomWords returns up to 5 randomly chosen quiz words, optionally
// filtered by color. Requests without an identity get an empty list.
// GET /api/get_random_words
func (wc *WordsController) GetRandomWords(c *gin.Context) {
	words, err := wc.store.RandomWords(GetUserID(c), c.Query("color"), quizSize)
	if err != nil {
		respondInternalError(c, err, "get random words")
		return
	}
	c.JSON(http.StatusOK, words)
}

// CheckAnswerRequest is the request body for answer grading.
type CheckAnswerRequest struct {
	English string `json:"english"`
	French  string `json:"french"`
}

// CheckAnswer grades a submitted translation and updates the word state to
// green or red. Unknown terms yield the "unknown" sentinel answer.
// POST /api/check_answer
func (wc *WordsController) CheckAnswer(c *gin.Context) {
	userID := GetUserID(c)
	if userID == 0 {
		respondNoUser(c)
		return
	}

	var req CheckAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	correct, answer, err := wc.store.Grade(userID, req.English, req.French)
	if err != nil {
		respondInternalError(c, err, "check answer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"correct": correct, "correct_answer": answer})
}

// UpdateColorRequest is the request body for a manual label override.
type UpdateColorRequest struct {
	English string `json:"english"`
	Color   string `json:"color"`
}

// UpdateColor overwrites the label for a word. The label must be one of the
// four known colors; a missing label defaults to gray.
// POST /api/update_color
func (wc *WordsController) UpdateColor(c *gin.Context) {
	userID := GetUserID(c)
	if userID == 0 {
		respondNoUser(c)
		return
	}

	var req UpdateColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if req.Color == "" {
		req.Color = string(entities.ColorGray)
	}

	color, err := entities.ParseColor(req.Color)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := wc.store.SetColor(userID, req.English, color); err != nil {
		respondInternalError(c, err, "update color")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
