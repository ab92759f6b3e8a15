package main

import (
	"log"

	"github.com/Mayur-aditya-007/AyuVeda-Website/config"
	"github.com/Mayur-aditya-007/AyuVeda-Website/controllers"
	"github.com/Mayur-aditya-007/AyuVeda-Website/routes"
	"github.com/Mayur-aditya-007/AyuVeda-Website/services"
	"github.com/Mayur-aditya-007/AyuVeda-Website/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	detector, err := services.NewRekognitionDetector()
	if err != nil {
		log.Fatalf("Rekognition init failed: %v", err)
	}

	chat := controllers.NewChatController(services.NewGeminiService())
	ingredients := controllers.NewIngredientController(services.NewIngredientService())
	vision := controllers.NewVisionController(detector)

	r := routes.SetupRouter(chat, ingredients, vision)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
