package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"ezyvoyage/cmd/fx/account_fx"
	"ezyvoyage/cmd/fx/ai_fx"
	"ezyvoyage/cmd/fx/bookmark_fx"
	"ezyvoyage/cmd/fx/config_fx"
	"ezyvoyage/cmd/fx/controllers_fx"
	"ezyvoyage/cmd/fx/db_fx"
	"ezyvoyage/cmd/fx/mail_fx"
	"ezyvoyage/cmd/fx/memcache_fx"
	"ezyvoyage/cmd/fx/planner_fx"
	"ezyvoyage/internal/api/controllers"
	"ezyvoyage/internal/api/validators"
	"ezyvoyage/internal/config"
	mem "ezyvoyage/pkg/memcache"
	"ezyvoyage/pkg/middleware"
	"ezyvoyage/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		ai_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		bookmark_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting http server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping http server")
			ctx, cancel := context.WithTimeout(ctx, cfg.App.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

type routerParams struct {
	fx.In

	Config          *config.Config
	Log             *zap.Logger
	Tokens          *utils.TokenManager
	Store           mem.TokenStore
	Auth            *controllers.AuthController
	Travel          *controllers.TravelController
	Recommendations *controllers.RecommendationController
	Advisory        *controllers.AdvisoryController
	Dashboard       *controllers.DashboardController
	Bookmarks       *controllers.BookmarkController
}

func ProvideRouter(p routerParams) (*gin.Engine, error) {
	if p.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validators.Register(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(middleware.Recovery(p.Log))
	r.Use(middleware.CORSMiddleware(p.Config.App.ClientURL))

	RegisterRoutes(r, p)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, p routerParams) {
	auth := middleware.JWTAuthMiddleware(p.Tokens, p.Store)

	api := r.Group("/api")
	api.GET("/health", controllers.Health)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", p.Auth.Register)
	authGroup.POST("/login", p.Auth.Login)
	authGroup.POST("/logout", auth, p.Auth.Logout)
	authGroup.GET("/countries", p.Auth.Countries)
	authGroup.GET("/google", p.Auth.GoogleLogin)
	authGroup.GET("/google/callback", p.Auth.GoogleCallback)

	api.POST("/travel/generate-itinerary", p.Travel.GenerateItinerary)

	popular := api.Group("/popular")
	popular.POST("/spots", p.Travel.PopularSpots)
	popular.GET("/health", p.Travel.PopularHealth)

	niche := api.Group("/niche")
	niche.POST("/find-hidden-gems", p.Travel.HiddenGems)
	niche.GET("/health", p.Travel.NicheHealth)

	recs := api.Group("/recommendations", auth)
	recs.GET("/get-image", p.Recommendations.GetImage)
	recs.GET("/get-recommendations", p.Recommendations.GetRecommendations)
	recs.POST("/refresh-recommendations", p.Recommendations.RefreshRecommendations)

	advisory := api.Group("/travel-advisory", auth)
	advisory.GET("/user-nationality", p.Advisory.UserNationality)
	advisory.POST("/get-advisory-url", p.Advisory.AdvisoryURL)

	dashboard := api.Group("/dashboard", auth)
	dashboard.GET("/profile", p.Dashboard.Profile)
	dashboard.PUT("/update-travel-mode", p.Dashboard.UpdateTravelMode)
	dashboard.GET("/stats", p.Dashboard.Stats)

	user := api.Group("/user", auth)
	user.GET("/profile", p.Dashboard.UserProfile)
	user.PUT("/profile", p.Dashboard.UpdateUserProfile)

	bookmarks := api.Group("/bookmarked", auth)
	bookmarks.POST("/add-bookmark", p.Bookmarks.Add)
	bookmarks.GET("/get-bookmarked-trips", p.Bookmarks.List)
	bookmarks.DELETE("/remove-bookmark", p.Bookmarks.Remove)
	bookmarks.DELETE("/clear-all-bookmarks", p.Bookmarks.Clear)
	bookmarks.GET("/get-bookmarks-by-mode", p.Bookmarks.GroupByMode)
	bookmarks.GET("/similar", p.Bookmarks.Similar)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.NoRoute(controllers.NotFound)
}
