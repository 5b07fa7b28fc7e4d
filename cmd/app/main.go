package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"workorders/cmd"
	httpin "workorders/internal/adapters/in/http"
	"workorders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateEscalateOverdueCommandHandler(),
		app.CreateReconcileCostsCommandHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(httpin.Handlers{
		CreateWorkOrder:   app.CreateCreateWorkOrderCommandHandler(),
		SubmitWorkOrder:   app.CreateSubmitWorkOrderCommandHandler(),
		AssignWorker:      app.CreateAssignWorkerCommandHandler(),
		ApproveWorkOrder:  app.CreateApproveWorkOrderCommandHandler(),
		RejectWorkOrder:   app.CreateRejectWorkOrderCommandHandler(),
		StartWorkOrder:    app.CreateStartWorkOrderCommandHandler(),
		PauseWorkOrder:    app.CreatePauseWorkOrderCommandHandler(),
		ResumeWorkOrder:   app.CreateResumeWorkOrderCommandHandler(),
		RecordProgress:    app.CreateRecordProgressCommandHandler(),
		CompleteWorkOrder: app.CreateCompleteWorkOrderCommandHandler(),
		CancelWorkOrder:   app.CreateCancelWorkOrderCommandHandler(),

		AddMaterialLine:     app.CreateAddMaterialLineCommandHandler(),
		AllocateMaterial:    app.CreateAllocateMaterialCommandHandler(),
		UseMaterial:         app.CreateUseMaterialCommandHandler(),
		ReturnMaterial:      app.CreateReturnMaterialCommandHandler(),
		RecordWaste:         app.CreateRecordWasteCommandHandler(),
		PerformQualityCheck: app.CreatePerformQualityCheckCommandHandler(),
		ReverseDeduction:    app.CreateReverseDeductionCommandHandler(),

		RespondToAssignment: app.CreateRespondToAssignmentCommandHandler(),
		StartAssignment:     app.CreateStartAssignmentCommandHandler(),
		CompleteAssignment:  app.CreateCompleteAssignmentCommandHandler(),
		EvaluateAssignment:  app.CreateEvaluateAssignmentCommandHandler(),
		RecordLaborEntry:    app.CreateRecordLaborEntryCommandHandler(),

		GetWorkOrder:        app.CreateGetWorkOrderQueryHandler(),
		GetOpenWorkOrders:   app.CreateGetOpenWorkOrdersQueryHandler(),
		GetDeductionHistory: app.CreateGetDeductionHistoryQueryHandler(),
		GetLaborCostRollup:  app.CreateGetLaborCostRollupQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
