package routes

import (
	"github.com/Mayur-aditya-007/AyuVeda-Website/controllers"
	"github.com/Mayur-aditya-007/AyuVeda-Website/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	chat *controllers.ChatController,
	ingredients *controllers.IngredientController,
	vision *controllers.VisionController,
) *gin.Engine {
	r := gin.Default()

	// Account lifecycle (public)
	r.POST("/signup", controllers.Signup)
	r.POST("/verifyotp", controllers.VerifyOTP)
	r.POST("/resendotp", controllers.ResendOTP)
	r.POST("/signin", controllers.Signin)
	r.POST("/forgotpassword", controllers.ForgotPassword)
	r.POST("/resetpassword", controllers.ResetPassword)

	// Profile routes. updateprofile deliberately stays open: the original
	// API trusts the path id without binding it to a session.
	r.PUT("/updateprofile/:id", controllers.UpdateProfile)
	r.GET("/user/:email", controllers.GetUserByEmail)
	r.GET("/healthsummary/:id", controllers.GetHealthSummary)

	// Explore feed (public)
	r.GET("/ingredients", ingredients.Search)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.POST("/chat", chat.Chat)
		protected.POST("/recognize", vision.Recognize)
		protected.GET("/ws/recognize", vision.RecognizeWS)
		protected.PUT("/updateprofilepicture", controllers.UpdateProfilePicture)
	}

	return r
}
