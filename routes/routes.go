package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"artwala-io/gateway/configs"
	"artwala-io/gateway/controllers"
	"artwala-io/gateway/middleware"
	"artwala-io/gateway/services"
	"artwala-io/gateway/state"
)

// InitRoute builds the gateway's gin engine: the overview endpoint plus the
// two role dashboards and their mutation routes, all behind CORS and the
// per-IP rate limiter.
func InitRoute(registry *state.Registry, client *services.Client, cfg configs.Config, redisClient *redis.Client, log *zap.Logger) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CorsMiddleware())

	api := router.Group("/api", middleware.GatewayRateLimiter(redisClient))
	{
		api.GET("/overview", controllers.GetOverview(client, cfg.Fallback, log))

		dashboard := api.Group("/dashboard")
		{
			user := dashboard.Group("/user")
			{
				user.POST("", controllers.MountUserDashboard(registry))
				user.GET("/:sid", controllers.GetUserDashboard(registry))
				user.DELETE("/:sid", controllers.CloseDashboard(registry))

				user.POST("/:sid/cart", controllers.AddToCart(registry))
				user.POST("/:sid/cart/checkout", controllers.Checkout(registry))
				user.DELETE("/:sid/cart/:productId", controllers.RemoveFromCart(registry))

				user.POST("/:sid/wishlist", controllers.AddToWishlist(registry))
				user.DELETE("/:sid/wishlist/:productId", controllers.RemoveFromWishlist(registry))
				user.POST("/:sid/wishlist/:productId/move-to-cart", controllers.MoveToCart(registry))

				user.POST("/:sid/following/:artistId", controllers.FollowArtist(registry))
				user.DELETE("/:sid/following/:artistId", controllers.UnfollowArtist(registry))
				user.POST("/:sid/chapters/:chapterId", controllers.JoinChapter(registry))
				user.DELETE("/:sid/chapters/:chapterId", controllers.LeaveChapter(registry))
				user.POST("/:sid/forums/:forumId", controllers.JoinForum(registry))
				user.DELETE("/:sid/forums/:forumId", controllers.LeaveForum(registry))

				user.PUT("/:sid/selected-artist/:artistId", controllers.SelectArtist(registry))
				user.DELETE("/:sid/selected-artist", controllers.CloseArtistProfile(registry))
				user.PUT("/:sid/selected-forum/:forumId", controllers.SelectForum(registry))
				user.DELETE("/:sid/selected-forum", controllers.CloseForumDiscussion(registry))
				user.PUT("/:sid/panels/:panel", controllers.TogglePanel(registry))
				user.POST("/:sid/profile", controllers.OpenUserProfile(registry))
				user.DELETE("/:sid/profile", controllers.CloseUserProfile(registry))
			}

			artist := dashboard.Group("/artist")
			{
				artist.POST("", controllers.MountArtistDashboard(registry))
				artist.GET("/:sid", controllers.GetArtistDashboard(registry))
				artist.DELETE("/:sid", controllers.CloseDashboard(registry))

				artist.POST("/:sid/products", controllers.CreateProduct(registry))
				artist.PUT("/:sid/products/:productId", controllers.UpdateProduct(registry))
				artist.DELETE("/:sid/products/:productId", controllers.DeleteProduct(registry))

				artist.POST("/:sid/commissions/:commissionId/accept", controllers.AcceptCommission(registry))
				artist.POST("/:sid/commissions/:commissionId/decline", controllers.DeclineCommission(registry))

				artist.PUT("/:sid/selected-commission/:commissionId", controllers.SelectCommission(registry))
				artist.DELETE("/:sid/selected-commission", controllers.CloseCommissionDetails(registry))
				artist.PUT("/:sid/editor/:productId", controllers.OpenProductEditor(registry))
				artist.DELETE("/:sid/editor", controllers.CloseProductEditor(registry))
				artist.PUT("/:sid/panels/profile", controllers.ToggleArtistProfile(registry))
			}
		}
	}

	return router
}
