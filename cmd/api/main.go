package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/agrovin/farmops-backend-go/internal/config"
	appHTTP "github.com/agrovin/farmops-backend-go/internal/handler/http"
	"github.com/agrovin/farmops-backend-go/internal/pkg/cron"
	"github.com/agrovin/farmops-backend-go/internal/pkg/database"
	"github.com/agrovin/farmops-backend-go/internal/repository/postgresql"
	attendanceService "github.com/agrovin/farmops-backend-go/internal/service/attendance"
	farmService "github.com/agrovin/farmops-backend-go/internal/service/farm"
	reportService "github.com/agrovin/farmops-backend-go/internal/service/report"
	tempWorkerService "github.com/agrovin/farmops-backend-go/internal/service/tempworker"
	wageService "github.com/agrovin/farmops-backend-go/internal/service/wage"
	wineryService "github.com/agrovin/farmops-backend-go/internal/service/winery"
	workerService "github.com/agrovin/farmops-backend-go/internal/service/worker"
	worklogService "github.com/agrovin/farmops-backend-go/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	farmRepo := postgresql.NewFarmRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	transactionRepo := postgresql.NewTransactionRepository(db)
	settlementRepo := postgresql.NewSettlementRepository(db)
	tempWorkerRepo := postgresql.NewTempWorkerRepository(db)
	wineLotRepo := postgresql.NewWineLotRepository(db)
	readingRepo := postgresql.NewFermentationReadingRepository(db)
	workOrderRepo := postgresql.NewWorkOrderRepository(db)
	activityRepo := postgresql.NewActivityLogRepository(db)

	calculator := wageService.NewCalculator()

	farmSvc := farmService.NewFarmService(farmRepo)
	workerSvc := workerService.NewWorkerService(workerRepo)
	wageSvc := wageService.NewWageService(db, workerRepo, farmRepo, attendanceRepo, transactionRepo, settlementRepo, calculator)
	attendanceSvc := attendanceService.NewAttendanceService(db, workerRepo, farmRepo, attendanceRepo, transactionRepo, calculator)
	tempWorkerSvc := tempWorkerService.NewTempWorkerService(tempWorkerRepo, farmRepo)
	winerySvc := wineryService.NewWineryService(wineLotRepo, readingRepo)
	worklogSvc := worklogService.NewWorklogService(workOrderRepo, activityRepo, farmRepo, workerRepo)
	reportSvc := reportService.NewReportService(settlementRepo, transactionRepo)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("winery-overdue-readings", 6*time.Hour, winerySvc.CheckOverdueReadings)
	scheduler.AddJob("worklog-overdue-orders", 12*time.Hour, worklogSvc.CheckOverdueOrders)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.Handlers{
		Farm:       appHTTP.NewFarmHandler(farmSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Wage:       appHTTP.NewWageHandler(wageSvc),
		TempWorker: appHTTP.NewTempWorkerHandler(tempWorkerSvc),
		Winery:     appHTTP.NewWineryHandler(winerySvc),
		Worklog:    appHTTP.NewWorklogHandler(worklogSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	}, cfg.App.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
