package api

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/youruser/bingoapp/internal/generator"
	"github.com/youruser/bingoapp/internal/sheet"
)

type handlers struct {
	gen *generator.Generator
}

type sampleRequest struct {
	Players []string `json:"players"`
	Seed    int64    `json:"seed"`
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) phrases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.gen.Pool().Counts()})
}

// sample returns the phrases of every player's sheet without rendering.
func (h *handlers) sample(c *gin.Context) {
	var req sampleRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seed := generator.ResolveSeed(req.Seed)
	sheets, err := h.gen.Sample(req.Players, seed)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"seed": seed, "sheets": sheets})
}

// sheetImage renders a single player's sheet from the group as PNG.
func (h *handlers) sheetImage(c *gin.Context) {
	var req struct {
		sampleRequest
		Player string `json:"player"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seed := generator.ResolveSeed(req.Seed)
	sheets, err := h.gen.Sample(req.Players, seed)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	var target *sheet.Sheet
	for i := range sheets {
		if sheets[i].Player == req.Player {
			target = &sheets[i]
			break
		}
	}
	if target == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player " + req.Player + " is not in players"})
		return
	}
	img, err := h.gen.Render(*target, seed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("X-Sheet-Id", generator.SheetID(target.Player, seed))
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, sheet.ErrPlayerCount),
		errors.Is(err, sheet.ErrEmptyPlayer),
		errors.Is(err, sheet.ErrDuplicatePlayer):
		return http.StatusBadRequest
	case errors.Is(err, sheet.ErrInsufficientPhrases):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
