package controllers

import (
	"net/http"
	"strings"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type PhotoController struct {
	Rekognition *services.RekognitionService
	Entries     *services.EntryService
}

func NewPhotoController(rk *services.RekognitionService, es *services.EntryService) *PhotoController {
	return &PhotoController{Rekognition: rk, Entries: es}
}

type photoEntryReq struct {
	Image    string  `json:"image" binding:"required"` // data URI
	MealType string  `json:"meal_type"`
	PortionG float64 `json:"portion_g"`
}

// AddFromPhoto uploads a meal photo, recognizes what is on it, and logs the
// recognized food as an entry.
func (pc *PhotoController) AddFromPhoto(c *gin.Context) {
	uid := c.GetUint("userID")

	var req photoEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	labels, err := pc.Rekognition.RecognizeFood(req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(labels) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no food recognized in photo"})
		return
	}

	url, err := utils.UploadFoodPhoto(req.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	entry, err := pc.Entries.AddEntry(c.Request.Context(), uid, services.EntryRequest{
		Name:     strings.Join(labels, ", "),
		MealType: req.MealType,
		PortionG: req.PortionG,
		PhotoURL: url,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"labels": labels,
		"entry":  entry,
	})
}
