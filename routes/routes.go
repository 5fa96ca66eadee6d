package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/configs"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/controllers"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/entity"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/pkg/resp"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/repository"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/services"
)

func RegisterRoutes(r *gin.Engine, store repository.Store, menu []entity.MenuItem, offers []entity.Offer, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Services
	cartSvc := services.NewCartService()
	loyaltySvc := services.NewLoyaltyService(store)
	menuSvc := services.NewMenuService(menu)
	offerSvc := services.NewOfferService(offers)
	checkoutSvc := services.NewCheckoutService(cartSvc, loyaltySvc, services.SimulatedGateway{Delay: cfg.CheckoutDelay})
	reviewSvc := services.NewReviewService(store, loyaltySvc, services.SimulatedGateway{Delay: cfg.ReviewDelay})
	reservationSvc := services.NewReservationService(services.SimulatedGateway{Delay: cfg.ReservationDelay})

	// Controllers
	pageCtrl := controllers.NewPageController(menuSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	offerCtrl := controllers.NewOfferController(offerSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	rewardsCtrl := controllers.NewRewardsController(loyaltySvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	reservationCtrl := controllers.NewReservationController(reservationSvc)

	// Pages
	r.GET("/", pageCtrl.Home)
	r.GET("/about", pageCtrl.About)
	r.GET("/gallery", pageCtrl.Gallery)
	r.GET("/contact", pageCtrl.Contact)

	// Menu & offers
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)
	r.GET("/offers", offerCtrl.List)
	r.GET("/offers/countdown", offerCtrl.Countdown)

	// Cart
	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:id", cartCtrl.UpdateQty)
		cart.DELETE("/items/:id", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/open", cartCtrl.SetOpen)
	}

	r.POST("/checkout", checkoutCtrl.Place)

	// Rewards & referrals
	rewards := r.Group("/rewards")
	{
		rewards.GET("", rewardsCtrl.Get)
		rewards.POST("/redeem", rewardsCtrl.Redeem)
		rewards.POST("/referral", rewardsCtrl.ApplyReferral)
		rewards.POST("/referrals", rewardsCtrl.Invite)
	}

	// Reviews
	r.GET("/reviews", reviewCtrl.List)
	r.POST("/reviews", reviewCtrl.Create)

	// Reservations
	r.GET("/reservations/slots", reservationCtrl.Slots)
	r.POST("/reservations", reservationCtrl.Create)

	// Not-found fallback
	r.NoRoute(func(c *gin.Context) {
		resp.NotFound(c, "page not found")
	})
}
