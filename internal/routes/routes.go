package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/incluiaqui/incluiaqui-api/internal/audit"
	"github.com/incluiaqui/incluiaqui-api/internal/config"
	"github.com/incluiaqui/incluiaqui-api/internal/geo"
	"github.com/incluiaqui/incluiaqui-api/internal/handlers"
	infraRepo "github.com/incluiaqui/incluiaqui-api/internal/infra/repository"
	"github.com/incluiaqui/incluiaqui-api/internal/middleware"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
	ucEstablishment "github.com/incluiaqui/incluiaqui-api/internal/usecase/establishment"
	ucReview "github.com/incluiaqui/incluiaqui-api/internal/usecase/review"
	ucUser "github.com/incluiaqui/incluiaqui-api/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	establishmentRepo := infraRepo.NewEstablishmentGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	geoProvider := geo.NewProvider(cfg)

	// ======================================================
	// USE CASES — ESTABLISHMENTS
	// ======================================================
	createEstablishmentUC := ucEstablishment.NewCreateEstablishment(establishmentRepo, auditDispatcher)
	getEstablishmentUC := ucEstablishment.NewGetEstablishment(establishmentRepo)
	updateEstablishmentUC := ucEstablishment.NewUpdateEstablishment(establishmentRepo, auditDispatcher)
	deleteEstablishmentUC := ucEstablishment.NewDeleteEstablishment(establishmentRepo, auditDispatcher)
	searchEstablishmentsUC := ucEstablishment.NewSearchEstablishments(establishmentRepo)
	listOwnedEstablishmentsUC := ucEstablishment.NewListOwnedEstablishments(establishmentRepo)

	// ======================================================
	// USE CASES — REVIEWS
	// ======================================================
	createReviewUC := ucReview.NewCreateReview(reviewRepo, auditDispatcher)
	getReviewUC := ucReview.NewGetReview(reviewRepo)
	updateReviewUC := ucReview.NewUpdateReview(reviewRepo, auditDispatcher)
	deleteReviewUC := ucReview.NewDeleteReview(reviewRepo, auditDispatcher)
	listReviewsUC := ucReview.NewListReviews(reviewRepo)
	statsUC := ucReview.NewEstablishmentStats(reviewRepo)

	// ======================================================
	// USE CASES — USERS
	// ======================================================
	getUserUC := ucUser.NewGetUser(userRepo)
	updateProfileUC := ucUser.NewUpdateProfile(userRepo, auditDispatcher)
	changePasswordUC := ucUser.NewChangePassword(userRepo, auditDispatcher)
	listUsersUC := ucUser.NewListUsers(userRepo)
	adminUpdateUserUC := ucUser.NewAdminUpdateUser(userRepo, auditDispatcher)
	deleteUserUC := ucUser.NewDeleteUser(userRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)

	establishmentHandler := handlers.NewEstablishmentHandler(
		createEstablishmentUC,
		getEstablishmentUC,
		updateEstablishmentUC,
		deleteEstablishmentUC,
		searchEstablishmentsUC,
		listOwnedEstablishmentsUC,
	)

	reviewHandler := handlers.NewReviewHandler(
		createReviewUC,
		getReviewUC,
		updateReviewUC,
		deleteReviewUC,
		listReviewsUC,
		statsUC,
	)

	userHandler := handlers.NewUserHandler(
		getUserUC,
		updateProfileUC,
		changePasswordUC,
		listUsersUC,
		adminUpdateUserUC,
		deleteUserUC,
	)

	placesHandler := handlers.NewPlacesHandler(geoProvider)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	authRequired := middleware.AuthMiddleware(db, cfg)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// USERS
		// ------------------------------
		users := api.Group("/users")
		{
			users.POST("", authHandler.Register)
			users.POST("/login", authHandler.Login)
			users.GET("/me", authRequired, authHandler.Me)

			users.GET("/profile", authRequired, userHandler.Profile)
			users.PUT("/profile", authRequired, userHandler.UpdateProfile)
			users.PATCH("/change-password", authRequired, userHandler.ChangePassword)

			adminOnly := middleware.RequireRole(models.RoleAdmin)
			users.GET("", authRequired, adminOnly, userHandler.List)
			users.GET("/:id", authRequired, adminOnly, userHandler.Get)
			users.PUT("/:id", authRequired, adminOnly, userHandler.Update)
			users.DELETE("/:id", authRequired, adminOnly, userHandler.Delete)
		}

		// ------------------------------
		// ESTABLISHMENTS
		// ------------------------------
		establishments := api.Group("/establishments")
		{
			establishments.GET("", establishmentHandler.Search)
			establishments.GET("/:id", establishmentHandler.Get)

			establishments.GET("/my/establishments",
				authRequired,
				middleware.RequireRole(models.RoleOwner, models.RoleAdmin),
				establishmentHandler.MyEstablishments,
			)

			establishments.POST("",
				authRequired,
				middleware.RequireRole(models.RoleOwner, models.RoleAdmin),
				establishmentHandler.Create,
			)
			establishments.PUT("/:id",
				authRequired,
				middleware.RequireRole(models.RoleOwner, models.RoleAdmin),
				establishmentHandler.Update,
			)
			establishments.DELETE("/:id",
				authRequired,
				middleware.RequireRole(models.RoleOwner, models.RoleAdmin),
				establishmentHandler.Delete,
			)
		}

		// ------------------------------
		// REVIEWS
		// ------------------------------
		reviews := api.Group("/reviews")
		{
			reviews.GET("", reviewHandler.List)
			reviews.GET("/:id", reviewHandler.Get)
			reviews.GET("/establishment/:establishmentId/stats", reviewHandler.Stats)

			reviews.GET("/my/reviews", authRequired, reviewHandler.MyReviews)
			reviews.POST("", authRequired, reviewHandler.Create)
			reviews.PUT("/:id", authRequired, reviewHandler.Update)
			reviews.DELETE("/:id", authRequired, reviewHandler.Delete)
		}

		// ------------------------------
		// PLACES (GEO PROVIDERS)
		// ------------------------------
		places := api.Group("/places")
		{
			places.GET("/search-nearby", placesHandler.SearchNearby)
			places.GET("/details/:placeId", placesHandler.Details)
			places.GET("/geocode", placesHandler.Geocode)
			places.GET("/reverse-geocode", placesHandler.ReverseGeocode)
			places.GET("/distance", placesHandler.Distance)
			places.GET("/picture", placesHandler.Picture)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin", authRequired, middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
