package routes

import (
	"net/http"

	"forkful/auth"
	"forkful/feed"
	"forkful/ingredients"
	"forkful/middleware"
	"forkful/ratelim"
	"forkful/recipes"
	"forkful/tags"
	"forkful/users"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/media/users/*filepath", http.Dir("static/users"))
	router.ServeFiles("/media/recipes/*filepath", http.Dir("static/recipes"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/token/login/", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/token/logout/", middleware.Authenticate(auth.Logout))
}

// AddUserRoutes wires the account endpoints. The :id segment also carries
// the me/subscriptions/set_password sub-resources; the handlers dispatch.
func AddUserRoutes(router *httprouter.Router) {
	router.POST("/api/users/", ratelim.RateLimit(users.Register))
	router.GET("/api/users/", middleware.OptionalAuth(users.GetUsers))
	router.GET("/api/users/:id/", middleware.OptionalAuth(users.GetUser))
	router.POST("/api/users/:id/", middleware.Authenticate(users.PostUserAction))

	router.PUT("/api/users/:id/avatar/", middleware.Authenticate(users.UpdateAvatar))
	router.DELETE("/api/users/:id/avatar/", middleware.Authenticate(users.DeleteAvatar))

	router.POST("/api/users/:id/subscribe/", middleware.Authenticate(users.Subscribe))
	router.DELETE("/api/users/:id/subscribe/", middleware.Authenticate(users.Unsubscribe))
}

func AddTagRoutes(router *httprouter.Router) {
	router.GET("/api/tags/", tags.GetTags)
	router.GET("/api/tags/:id/", tags.GetTag)
}

func AddIngredientRoutes(router *httprouter.Router) {
	router.GET("/api/ingredients/", ingredients.GetIngredients)
	router.GET("/api/ingredients/:id/", ingredients.GetIngredient)
}

// AddRecipeRoutes wires recipes; download_shopping_cart shares the :id
// segment and is dispatched inside GetRecipe.
func AddRecipeRoutes(router *httprouter.Router) {
	router.GET("/api/recipes/", middleware.OptionalAuth(recipes.GetRecipes))
	router.POST("/api/recipes/", middleware.Authenticate(recipes.CreateRecipe))
	router.GET("/api/recipes/:id/", middleware.OptionalAuth(recipes.GetRecipe))
	router.PATCH("/api/recipes/:id/", middleware.Authenticate(recipes.UpdateRecipe))
	router.DELETE("/api/recipes/:id/", middleware.Authenticate(recipes.DeleteRecipe))

	router.GET("/api/recipes/:id/get-link/", recipes.GetShortLink)

	router.POST("/api/recipes/:id/favorite/", middleware.Authenticate(recipes.AddFavorite))
	router.DELETE("/api/recipes/:id/favorite/", middleware.Authenticate(recipes.RemoveFavorite))
	router.POST("/api/recipes/:id/shopping_cart/", middleware.Authenticate(recipes.AddToCart))
	router.DELETE("/api/recipes/:id/shopping_cart/", middleware.Authenticate(recipes.RemoveFromCart))
}

// AddShortLinkRoutes mounts the public /s/ redirect behind the limiter.
func AddShortLinkRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/s/:code", rateLimiter.Limit(recipes.RedirectShortLink))
}

func AddFeedRoutes(router *httprouter.Router, hub *feed.Hub) {
	router.GET("/ws/feed", middleware.Authenticate(hub.Serve))
}
