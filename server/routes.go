package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Get("/test", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("connection established..."))
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/assets", func(assets chi.Router) {
			assets.Get("/", srv.AssetHandler.GetAllAssets)
			assets.Post("/", srv.AssetHandler.AddAsset)
			assets.Get("/available", srv.AssetHandler.GetAvailableAssets)

			assets.Route("/{id}", func(asset chi.Router) {
				asset.Get("/", srv.AssetHandler.GetAsset)
				asset.Patch("/", srv.AssetHandler.UpdateAsset)
				asset.Delete("/", srv.AssetHandler.DeleteAsset)

				//lifecycle
				asset.Post("/assign", srv.AssetHandler.AssignAsset)
				asset.Post("/unassign", srv.AssetHandler.UnassignAsset)
				asset.Put("/status", srv.AssetHandler.SetStatus)

				//maintenance
				asset.Get("/maintenance", srv.AssetHandler.GetMaintenance)
				asset.Post("/maintenance", srv.AssetHandler.AddMaintenance)
				asset.Patch("/maintenance/{recordID}", srv.AssetHandler.UpdateMaintenance)
				asset.Delete("/maintenance/{recordID}", srv.AssetHandler.DeleteMaintenance)

				asset.Get("/valuation", srv.AssetHandler.GetValuation)
				asset.Get("/timeline", srv.AssetHandler.GetTimeline)
			})
		})

		api.Route("/assignments/{ref}", func(assignment chi.Router) {
			assignment.Post("/return", srv.AssetHandler.ReturnAsset)
			assignment.Patch("/", srv.AssetHandler.ReassignAsset)
		})

		api.Route("/reports", func(reports chi.Router) {
			reports.Get("/assignments", srv.AssetHandler.GetAssignmentReport)
			reports.Get("/returns", srv.AssetHandler.GetReturnReport)
			reports.Get("/summary", srv.AssetHandler.GetSummary)
		})

		api.Get("/employees", srv.EmployeeHandler.GetEmployees)
		api.Put("/employees", srv.EmployeeHandler.PutEmployees)
	})

	return r
}
