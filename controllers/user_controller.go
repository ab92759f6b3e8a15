package controllers

import (
	"net/http"
	"strconv"

	"github.com/Mayur-aditya-007/AyuVeda-Website/services"
	"github.com/Mayur-aditya-007/AyuVeda-Website/utils"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}

// UpdateProfile merges the onboarding-wizard attributes into the record
// addressed by the path id. Omitted fields are left unchanged.
func UpdateProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := services.UpdateProfile(id, input)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func GetUserByEmail(c *gin.Context) {
	user, err := services.GetUserByEmail(c.Param("email"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type ProfilePictureInput struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
}

// UpdateProfilePicture uploads a base64 image to S3 and stores the public
// URL on the caller's own record.
func UpdateProfilePicture(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ProfilePictureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	url, err := utils.UploadProfilePicture(input.ImageBase64, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if err := services.SetProfilePicture(userID, url); err != nil {
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profilePicture": url})
}

func GetHealthSummary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	summary, err := services.GetHealthSummary(id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
