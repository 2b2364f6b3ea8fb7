package routes

import (
	"net/http"

	"vibeholidays/admin"
	"vibeholidays/auth"
	"vibeholidays/bookings"
	"vibeholidays/gallery"
	"vibeholidays/inquiries"
	"vibeholidays/middleware"
	"vibeholidays/newsletter"
	"vibeholidays/packages"
	"vibeholidays/ratelim"
	"vibeholidays/reviews"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/uploads/*filepath", http.Dir("uploads"))
	router.ServeFiles("/brochures/*filepath", http.Dir("brochures"))
}

// AddAuthRoutes wires login and register through the stricter auth
// limiter to slow credential guessing.
func AddAuthRoutes(router *httprouter.Router, authLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/register", authLimiter.Limit(auth.Register))
	router.POST("/api/auth/login", authLimiter.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.PUT("/api/auth/password", middleware.Authenticate(auth.ChangePassword))
}

func AddPackageRoutes(router *httprouter.Router) {
	// featured strip rides on GET /api/packages?featured=true
	router.GET("/api/packages", packages.GetPackages)
	router.GET("/api/packages/:id", packages.GetPackage)

	router.GET("/api/admin/packages", middleware.Authenticate(packages.GetAllPackages))
	router.POST("/api/admin/packages", middleware.Authenticate(packages.CreatePackage))
	router.PUT("/api/admin/packages/:id", middleware.Authenticate(packages.UpdatePackage))
	router.DELETE("/api/admin/packages/:id", middleware.Authenticate(packages.DeletePackage))
}

func AddBookingRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/bookings", rateLimiter.Limit(bookings.CreateBooking))

	router.GET("/api/admin/bookings", middleware.Authenticate(bookings.GetBookings))
	router.GET("/api/admin/bookings/:id", middleware.Authenticate(bookings.GetBooking))
	router.PUT("/api/admin/bookings/:id/status", middleware.Authenticate(bookings.UpdateBookingStatus))
	router.GET("/api/admin/bookings/:id/receipt", middleware.Authenticate(bookings.PrintReceipt))
}

func AddInquiryRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/inquiries", rateLimiter.Limit(inquiries.CreateInquiry))

	router.GET("/api/admin/inquiries", middleware.Authenticate(inquiries.GetInquiries))
	router.PUT("/api/admin/inquiries/:id/status", middleware.Authenticate(inquiries.UpdateInquiryStatus))
}

func AddGalleryRoutes(router *httprouter.Router) {
	router.GET("/api/gallery", gallery.GetGallery)

	router.POST("/api/admin/gallery", middleware.Authenticate(gallery.CreateGalleryItem))
	router.POST("/api/admin/gallery/upload", middleware.Authenticate(gallery.UploadGalleryImage))
	router.PUT("/api/admin/gallery/:id", middleware.Authenticate(gallery.UpdateGalleryItem))
	router.DELETE("/api/admin/gallery/:id", middleware.Authenticate(gallery.DeleteGalleryItem))
}

func AddReviewRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/reviews/:packageid", reviews.GetPackageReviews)
	router.POST("/api/reviews", rateLimiter.Limit(reviews.CreateReview))

	router.GET("/api/admin/reviews", middleware.Authenticate(reviews.GetAllReviews))
	router.PUT("/api/admin/reviews/:id/approve", middleware.Authenticate(reviews.ApproveReview))
	router.DELETE("/api/admin/reviews/:id", middleware.Authenticate(reviews.DeleteReview))
}

func AddNewsletterRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/newsletter/subscribe", rateLimiter.Limit(newsletter.Subscribe))
	router.POST("/api/newsletter/unsubscribe", rateLimiter.Limit(newsletter.Unsubscribe))

	router.GET("/api/admin/newsletter", middleware.Authenticate(newsletter.GetSubscribers))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/stats", middleware.Authenticate(admin.GetStats))
}
