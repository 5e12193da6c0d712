package server

import (
	"net/http"

	"assetdesk/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Get("/test", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("connection established..."))
	})

	//public routes
	r.Route("/api", func(api chi.Router) {
		api.Post("/user/register", srv.UserHandler.Register)
		api.Post("/user/login", srv.UserHandler.Login)

		//protected
		api.Group(func(protected chi.Router) {
			protected.Use(srv.Middleware.JWTAuthMiddleware())

			protected.Get("/user/profile", srv.UserHandler.GetProfile)

			//asset_manager and admin routes
			protected.Route("/inventory", func(inventory chi.Router) {
				inventory.Use(srv.Middleware.RequireRole(models.AssetManagerRole, models.AdminRole))

				//post methods
				inventory.Post("/next-asset-tag", srv.AssetHandler.NextAssetTag)
				inventory.Post("/asset", srv.AssetHandler.CreateAsset)
				inventory.Post("/asset/status", srv.AssetHandler.UpdateStatus)
				inventory.Post("/asset/assign", srv.AssetHandler.AssignAsset)

				//put methods
				inventory.Put("/asset/update", srv.AssetHandler.UpdateAsset)
				inventory.Put("/disposal", srv.AssetHandler.MarkForDisposal)

				//get methods
				inventory.Get("/assets", srv.AssetHandler.ListAssets)
				inventory.Get("/asset", srv.AssetHandler.GetAsset)
				inventory.Get("/spare-assets", srv.AssetHandler.ListSpareAssets)
				inventory.Get("/asset/timeline", srv.AssetHandler.GetAssetTimeline)
			})

			//maintenance routes
			protected.Route("/maintenance", func(maintenance chi.Router) {
				maintenance.Use(srv.Middleware.RequireRole(models.AssetManagerRole, models.AdminRole))

				maintenance.Post("/worklog", srv.MaintenanceHandler.AppendWorklog)
				maintenance.Get("/worklogs", srv.MaintenanceHandler.ListWorklogs)
				maintenance.Get("/defective", srv.MaintenanceHandler.ListDefectiveAssets)
			})

			//license routes
			protected.Route("/license", func(license chi.Router) {
				license.Use(srv.Middleware.RequireRole(models.AssetManagerRole, models.AdminRole))

				license.Post("/", srv.LicenseHandler.CreateLicense)
				license.Put("/", srv.LicenseHandler.UpdateLicense)
				license.Delete("/", srv.LicenseHandler.DeleteLicense)
				license.Get("/all", srv.LicenseHandler.ListLicenses)
			})
		})
	})

	return r
}
