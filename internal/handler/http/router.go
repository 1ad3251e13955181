package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type Handlers struct {
	Farm       FarmHandler
	Worker     WorkerHandler
	Attendance AttendanceHandler
	Wage       WageHandler
	TempWorker TempWorkerHandler
	Winery     WineryHandler
	Worklog    WorklogHandler
	Report     ReportHandler
}

func NewRouter(h Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "farmops-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/farms", func(r chi.Router) {
			r.Get("/", h.Farm.List)
			r.Post("/", h.Farm.Create)
			r.Get("/{id}", h.Farm.Get)
			r.Put("/{id}", h.Farm.Update)
		})

		r.Route("/workers", func(r chi.Router) {
			r.Get("/", h.Worker.List)
			r.Post("/", h.Worker.Create)
			r.Get("/{id}", h.Worker.Get)
			r.Put("/{id}", h.Worker.Update)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.List)
			r.Post("/", h.Attendance.Create)
			r.Get("/{id}", h.Attendance.Get)
			r.Delete("/{id}", h.Attendance.Delete)
		})

		r.Route("/settlements", func(r chi.Router) {
			r.Get("/", h.Wage.ListSettlements)
			r.Post("/calculate", h.Wage.CalculateSettlement)
			r.Post("/confirm", h.Wage.ConfirmSettlement)
			r.Get("/{id}", h.Wage.GetSettlement)
			r.Get("/{id}/receipt", h.Report.SettlementReceipt)
		})

		r.Route("/advances", func(r chi.Router) {
			r.Post("/give", h.Wage.GiveAdvance)
			r.Post("/deduct", h.Wage.DeductAdvance)
		})

		r.Get("/transactions", h.Wage.ListTransactions)

		r.Route("/temporary-workers", func(r chi.Router) {
			r.Get("/", h.TempWorker.List)
			r.Post("/", h.TempWorker.Create)
			r.Get("/{id}", h.TempWorker.Get)
			r.Delete("/{id}", h.TempWorker.Delete)
		})

		r.Route("/wine-lots", func(r chi.Router) {
			r.Get("/", h.Winery.ListLots)
			r.Post("/", h.Winery.CreateLot)
			r.Get("/{id}", h.Winery.GetLot)
			r.Put("/{id}", h.Winery.UpdateLot)
			r.Get("/{id}/readings", h.Winery.ListReadings)
			r.Post("/{id}/readings", h.Winery.AddReading)
		})

		r.Route("/work-orders", func(r chi.Router) {
			r.Get("/", h.Worklog.ListOrders)
			r.Post("/", h.Worklog.CreateOrder)
			r.Get("/{id}", h.Worklog.GetOrder)
			r.Put("/{id}", h.Worklog.UpdateOrder)
		})

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", h.Worklog.ListActivities)
			r.Post("/", h.Worklog.CreateActivity)
			r.Delete("/{id}", h.Worklog.DeleteActivity)
		})

		r.Get("/reports/wage-history", h.Report.ExportWageHistory)
	})

	return r
}
