// File: handlers/bundle.go
package handlers

import (
	userRepoPkg "medicore/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so the
// routes package can register them without knowing the service graph.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler       gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	RevokeHandler         gin.HandlerFunc
	UpdatePasswordHandler gin.HandlerFunc

	// User endpoints
	CreateUserHandler  gin.HandlerFunc
	GetUserByIDHandler gin.HandlerFunc
	ListUsersHandler   gin.HandlerFunc
	ListDoctorsHandler gin.HandlerFunc
	UpdateUserHandler  gin.HandlerFunc
	DeleteUserHandler  gin.HandlerFunc

	// Department endpoints
	CreateDepartmentHandler gin.HandlerFunc
	UpdateDepartmentHandler gin.HandlerFunc
	DeleteDepartmentHandler gin.HandlerFunc
	GetDepartmentHandler    gin.HandlerFunc
	ListDepartmentsHandler  gin.HandlerFunc

	// Schedule endpoints
	SetScheduleHandler gin.HandlerFunc
	GetScheduleHandler gin.HandlerFunc

	// Availability endpoints
	DoctorAvailabilityHandler     gin.HandlerFunc
	DepartmentAvailabilityHandler gin.HandlerFunc

	// Appointment endpoints
	BookAppointmentHandler     gin.HandlerFunc
	CancelAppointmentHandler   gin.HandlerFunc
	CompleteAppointmentHandler gin.HandlerFunc
	GetAppointmentHandler      gin.HandlerFunc
	ListMyAppointmentsHandler  gin.HandlerFunc
	ListByDoctorHandler        gin.HandlerFunc
	ListByPatientHandler       gin.HandlerFunc

	// Assignment endpoints
	AssignHandler     gin.HandlerFunc
	UnassignHandler   gin.HandlerFunc
	MyPatientsHandler gin.HandlerFunc
	MyDoctorsHandler  gin.HandlerFunc

	// Diagnosis endpoints
	CreateDiagnosisHandler      gin.HandlerFunc
	UpdateDiagnosisHandler      gin.HandlerFunc
	GetDiagnosisHandler         gin.HandlerFunc
	ListMyDiagnosesHandler      gin.HandlerFunc
	ListPatientDiagnosesHandler gin.HandlerFunc

	// Billing endpoints
	CreateChargeHandler   gin.HandlerFunc
	MarkPaidHandler       gin.HandlerFunc
	VoidChargeHandler     gin.HandlerFunc
	ListMyChargesHandler  gin.HandlerFunc
	ListAllChargesHandler gin.HandlerFunc
}
