// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicore/config"
	"medicore/cron"
	"medicore/database"
	appointmentRepoPkg "medicore/database/repository/appointment"
	assignmentRepoPkg "medicore/database/repository/assignment"
	billingRepoPkg "medicore/database/repository/billing"
	departmentRepoPkg "medicore/database/repository/department"
	diagnosisRepoPkg "medicore/database/repository/diagnosis"
	scheduleRepoPkg "medicore/database/repository/schedule"
	userRepoPkg "medicore/database/repository/user"
	"medicore/handlers"
	"medicore/middleware"
	"medicore/routes"
	"medicore/services/appointment"
	"medicore/services/assignment"
	"medicore/services/availability"
	"medicore/services/billing"
	"medicore/services/department"
	"medicore/services/diagnosis"
	"medicore/services/notification"
	"medicore/services/schedule"
	"medicore/services/tasks"
	"medicore/services/user"
	"medicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	departmentRepo := departmentRepoPkg.NewMongoDepartmentRepo()
	assignmentRepo := assignmentRepoPkg.NewMongoAssignmentRepo()
	diagnosisRepo := diagnosisRepoPkg.NewMongoDiagnosisRepo()
	chargeRepo := billingRepoPkg.NewMongoChargeRepo()

	ensureIndexes(logger, map[string]indexEnsurer{
		"users":        userRepo,
		"schedules":    scheduleRepo,
		"appointments": apptRepo,
		"departments":  departmentRepo,
		"assignments":  assignmentRepo,
		"diagnoses":    diagnosisRepo,
		"charges":      chargeRepo,
	})

	// Services.
	userService := &user.DefaultUserService{Repo: userRepo, Schedules: scheduleRepo}
	scheduleService := &schedule.DefaultScheduleService{Repo: scheduleRepo}
	availabilityService := &availability.DefaultAvailabilityService{
		Schedules:    scheduleRepo,
		Appointments: apptRepo,
		Users:        userRepo,
	}

	reminderScheduler := tasks.NewAsynqReminderScheduler()
	defer reminderScheduler.Close()

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:      apptRepo,
		Schedules: scheduleRepo,
		Users:     userRepo,
		Reminders: reminderScheduler,
	}
	departmentService := &department.DefaultDepartmentService{Repo: departmentRepo}
	assignmentService := &assignment.DefaultAssignmentService{Repo: assignmentRepo, Users: userRepo}
	diagnosisService := &diagnosis.DefaultDiagnosisService{Repo: diagnosisRepo}
	billingService := &billing.DefaultBillingService{Repo: chargeRepo}

	// Handlers.
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	diagnosisHandler := handlers.NewDiagnosisHandler(diagnosisService)
	billingHandler := handlers.NewBillingHandler(billingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		RegisterHandler:       authHandler.RegisterHandler,
		LoginHandler:          authHandler.LoginHandler,
		RevokeHandler:         authHandler.RevokeHandler,
		UpdatePasswordHandler: authHandler.UpdatePasswordHandler,

		CreateUserHandler:  userHandler.CreateUserHandler,
		GetUserByIDHandler: userHandler.GetUserByIDHandler,
		ListUsersHandler:   userHandler.ListUsersHandler,
		ListDoctorsHandler: userHandler.ListDoctorsHandler,
		UpdateUserHandler:  userHandler.UpdateUserHandler,
		DeleteUserHandler:  userHandler.DeleteUserHandler,

		CreateDepartmentHandler: departmentHandler.CreateHandler,
		UpdateDepartmentHandler: departmentHandler.UpdateHandler,
		DeleteDepartmentHandler: departmentHandler.DeleteHandler,
		GetDepartmentHandler:    departmentHandler.GetHandler,
		ListDepartmentsHandler:  departmentHandler.ListHandler,

		SetScheduleHandler: scheduleHandler.SetScheduleHandler,
		GetScheduleHandler: scheduleHandler.GetScheduleHandler,

		DoctorAvailabilityHandler:     availabilityHandler.DoctorAvailabilityHandler,
		DepartmentAvailabilityHandler: availabilityHandler.DepartmentAvailabilityHandler,

		BookAppointmentHandler:     appointmentHandler.BookHandler,
		CancelAppointmentHandler:   appointmentHandler.CancelHandler,
		CompleteAppointmentHandler: appointmentHandler.CompleteHandler,
		GetAppointmentHandler:      appointmentHandler.GetHandler,
		ListMyAppointmentsHandler:  appointmentHandler.ListMineHandler,
		ListByDoctorHandler:        appointmentHandler.ListByDoctorHandler,
		ListByPatientHandler:       appointmentHandler.ListByPatientHandler,

		AssignHandler:     assignmentHandler.AssignHandler,
		UnassignHandler:   assignmentHandler.UnassignHandler,
		MyPatientsHandler: assignmentHandler.MyPatientsHandler,
		MyDoctorsHandler:  assignmentHandler.MyDoctorsHandler,

		CreateDiagnosisHandler:      diagnosisHandler.CreateHandler,
		UpdateDiagnosisHandler:      diagnosisHandler.UpdateHandler,
		GetDiagnosisHandler:         diagnosisHandler.GetHandler,
		ListMyDiagnosesHandler:      diagnosisHandler.ListMineHandler,
		ListPatientDiagnosesHandler: diagnosisHandler.ListForPatientHandler,

		CreateChargeHandler:   billingHandler.CreateChargeHandler,
		MarkPaidHandler:       billingHandler.MarkPaidHandler,
		VoidChargeHandler:     billingHandler.VoidHandler,
		ListMyChargesHandler:  billingHandler.ListMineHandler,
		ListAllChargesHandler: billingHandler.ListAllHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background work.
	notifier := notification.NewSMTPNotifier()
	cron.InitReminderWorker(apptRepo, userRepo, notifier)
	cron.StartCompletionSweep(apptRepo)
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetAuthCacheClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("MediCore listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Error("Mongo disconnect failed", zap.Error(err))
	}
}

type indexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

// ensureIndexes builds each repository's indexes at startup. Index
// failures are logged but not fatal so the API can still serve reads.
func ensureIndexes(logger *zap.Logger, repos map[string]indexEnsurer) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for name, repo := range repos {
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Warn("Failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}
}
