package routes

import (
	"net/http"

	"wayfare/assistant"
	"wayfare/auth"
	"wayfare/catalog"
	"wayfare/chat"
	"wayfare/groups"
	"wayfare/middleware"
	"wayfare/planner"
	"wayfare/profile"
	"wayfare/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/userpic/*filepath", http.Dir("static/userpic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
}

func AddItineraryRoutes(router *httprouter.Router, h *planner.Handler) {
	router.POST("/api/itinerary/plan", ratelim.RateLimit(h.PlanItinerary))
	router.POST("/api/itinerary/pdf", ratelim.RateLimit(h.ItineraryPDF))
	router.POST("/api/itinerary/save", middleware.Authenticate(h.SaveItinerary))
	router.GET("/api/itinerary/mine", middleware.Authenticate(h.GetMyItineraries))
}

func AddCatalogRoutes(router *httprouter.Router, store *catalog.Store) {
	router.POST("/api/catalog/reload", middleware.Authenticate(catalog.ReloadHandler(store)))
}

func AddGroupRoutes(router *httprouter.Router) {
	router.GET("/api/groups", middleware.OptionalAuth(groups.GetGroups))
	router.POST("/api/groups", middleware.Authenticate(groups.CreateGroup))
	router.POST("/api/groups/:groupid/join", middleware.Authenticate(groups.JoinGroup))
	router.POST("/api/groups/:groupid/leave", middleware.Authenticate(groups.LeaveGroup))
	router.DELETE("/api/groups/:groupid", middleware.Authenticate(groups.DeleteGroup))
	router.GET("/api/groups/:groupid/invite", middleware.Authenticate(groups.InviteQR))
}

func AddChatRoutes(router *httprouter.Router, hub *chat.Hub) {
	router.GET("/ws/chat/:groupid", chat.WebSocketHandler(hub))
	router.POST("/api/messages/send/:groupid", ratelim.RateLimit(chat.SendMessage(hub)))
	router.GET("/api/messages/:groupid", chat.GetMessages)
}

func AddAssistantRoutes(router *httprouter.Router, a *assistant.Assistant) {
	router.POST("/api/assistant/chat", ratelim.RateLimit(a.ChatHandler))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/profile", middleware.Authenticate(profile.UpdateProfile))
	router.POST("/api/profile/avatar", middleware.Authenticate(profile.UploadAvatar))
}
