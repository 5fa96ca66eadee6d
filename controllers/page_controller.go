package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/entity"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/pkg/resp"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/services"
)

// PageController serves the static marketing pages as JSON content.
type PageController struct {
	Menu *services.MenuService
}

func NewPageController(menu *services.MenuService) *PageController {
	return &PageController{Menu: menu}
}

// GET /
func (h *PageController) Home(c *gin.Context) {
	// a small featured selection for the landing page
	featured := []string{"butter-chicken", "hyderabadi-biryani", "paneer-tikka", "gulab-jamun"}
	items := make([]entity.MenuItem, 0, len(featured))
	for _, id := range featured {
		if it, ok := h.Menu.Get(id); ok {
			items = append(items, it)
		}
	}
	resp.OK(c, gin.H{
		"title":    "Rinku Hotel - Taste of Home",
		"tagline":  "Authentic Indian cuisine made with love and tradition",
		"featured": items,
	})
}

// GET /about
func (h *PageController) About(c *gin.Context) {
	resp.OK(c, gin.H{
		"title": "About Rinku Hotel",
		"story": "For over 15 years, Rinku Hotel has served home-style Indian food from " +
			"family recipes passed down through generations. Every dish is prepared fresh " +
			"daily with locally sourced ingredients and traditional spices.",
		"highlights": []string{
			"15+ years of service",
			"Family recipes",
			"Fresh ingredients daily",
			"Traditional tandoor cooking",
		},
	})
}

// GET /gallery
func (h *PageController) Gallery(c *gin.Context) {
	resp.OK(c, gin.H{
		"images": []gin.H{
			{"src": "/images/hero-food.jpg", "alt": "Signature dishes spread"},
			{"src": "/images/biryani.jpg", "alt": "Hyderabadi Biryani"},
			{"src": "/images/butter-chicken.jpg", "alt": "Butter Chicken"},
			{"src": "/images/tandoori.jpg", "alt": "Tandoori Chicken"},
			{"src": "/images/paneer.jpg", "alt": "Paneer Tikka"},
			{"src": "/images/naan.jpg", "alt": "Fresh naan from the tandoor"},
			{"src": "/images/lassi.jpg", "alt": "Mango Lassi"},
			{"src": "/images/gulab-jamun.jpg", "alt": "Gulab Jamun"},
		},
	})
}

// GET /contact
func (h *PageController) Contact(c *gin.Context) {
	resp.OK(c, gin.H{
		"address": "123 MG Road, Pune, Maharashtra 411001",
		"phone":   "+91 98765 43210",
		"email":   "hello@rinkuhotel.in",
		"hours": gin.H{
			"lunch":  "11:00 AM - 3:00 PM",
			"dinner": "6:00 PM - 10:00 PM",
		},
	})
}
