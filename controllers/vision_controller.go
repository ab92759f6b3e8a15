package controllers

import (
	"net/http"
	"time"

	"github.com/Mayur-aditya-007/AyuVeda-Website/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type VisionController struct {
	detector services.LabelDetector
}

func NewVisionController(detector services.LabelDetector) *VisionController {
	return &VisionController{detector: detector}
}

type RecognizeInput struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
}

// Recognize handles one polled camera frame: decode, run inference,
// return the labels.
func (vc *VisionController) Recognize(c *gin.Context) {
	var input RecognizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	labels, err := services.RecognizeFrame(c.Request.Context(), vc.detector, input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"labels": labels})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind ALB/CloudFront if needed
}

type frameMessage struct {
	ImageBase64 string `json:"imageBase64"`
}

type frameResult struct {
	Labels []services.IngredientLabel `json:"labels"`
	Error  string                     `json:"error,omitempty"`
}

// RecognizeWS keeps a socket open for the camera modal: each text frame
// carries one capture, each reply the labels for it. The connection is
// per-client, so no hub is involved.
func (vc *VisionController) RecognizeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// ping to keep connections alive through some proxies
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
					return
				}
			case <-stop:
				return
			}
		}
	}()

	for {
		var msg frameMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		labels, err := services.RecognizeFrame(c.Request.Context(), vc.detector, msg.ImageBase64)
		result := frameResult{Labels: labels}
		if err != nil {
			result.Error = err.Error()
		}
		if err := conn.WriteJSON(result); err != nil {
			return
		}
	}
}
