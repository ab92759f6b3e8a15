package controllers

import (
	"net/http"

	"github.com/Mayur-aditya-007/AyuVeda-Website/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	replier services.Replier
}

func NewChatController(replier services.Replier) *ChatController {
	return &ChatController{replier: replier}
}

type ChatInput struct {
	Message string `json:"message"`
}

// Chat forwards a single message to the generative model and returns its
// reply verbatim.
func (cc *ChatController) Chat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message is required."})
		return
	}

	reply, err := cc.replier.Reply(c.Request.Context(), input.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get a response from the AI."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
