package ports

import (
	"context"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
)

// AuthAPI is the identity surface of the ERP backend.
type AuthAPI interface {
	Login(ctx context.Context, in domain.LoginInput) (*domain.Session, error)
	Register(ctx context.Context, in domain.RegisterInput) (*domain.Session, error)
	// Logout notifies the backend that the token is retired. Best-effort:
	// callers treat a failure as non-fatal.
	Logout(ctx context.Context, token string) error
	// Profile resolves the session belonging to a stored credential.
	Profile(ctx context.Context, token string) (*domain.Session, error)
}

// RecordsAPI is the domain-CRUD surface of the ERP backend. Every call
// carries the caller's bearer credential; the backend enforces which roles
// may reach which resource, the console only mirrors that gating in its
// routes.
type RecordsAPI interface {
	ListEmployees(ctx context.Context, token string) ([]domain.Employee, error)
	// EmployeeProfile returns the employee record owned by the calling
	// token's account.
	EmployeeProfile(ctx context.Context, token string) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, token string, in domain.EmployeeInput) error
	UpdateEmployee(ctx context.Context, token, id string, in domain.EmployeeInput) error
	DeleteEmployee(ctx context.Context, token, id string) error

	ListDepartments(ctx context.Context, token string) ([]domain.Department, error)
	CreateDepartment(ctx context.Context, token string, in domain.DepartmentInput) error
	UpdateDepartment(ctx context.Context, token, id string, in domain.DepartmentInput) error
	DeleteDepartment(ctx context.Context, token, id string) error

	ListProjects(ctx context.Context, token string) ([]domain.Project, error)
	// ListClientProjects narrows the project list to one client account.
	ListClientProjects(ctx context.Context, token, clientID string) ([]domain.Project, error)
	CreateProject(ctx context.Context, token string, in domain.ProjectInput) error
	UpdateProject(ctx context.Context, token, id string, in domain.ProjectInput) error
	DeleteProject(ctx context.Context, token, id string) error

	ListAttendance(ctx context.Context, token string) ([]domain.AttendanceRecord, error)
	// ListEmployeeAttendance narrows attendance to one employee record.
	ListEmployeeAttendance(ctx context.Context, token, employeeID string) ([]domain.AttendanceRecord, error)
	CreateAttendance(ctx context.Context, token string, in domain.AttendanceInput) error
	UpdateAttendance(ctx context.Context, token, id string, in domain.AttendanceInput) error
	DeleteAttendance(ctx context.Context, token, id string) error

	ListPayroll(ctx context.Context, token string) ([]domain.PayrollRecord, error)
	CreatePayroll(ctx context.Context, token string, in domain.PayrollInput) error
	UpdatePayroll(ctx context.Context, token, id string, in domain.PayrollInput) error
	DeletePayroll(ctx context.Context, token, id string) error

	ListProduction(ctx context.Context, token string) ([]domain.ProductionTask, error)
	// UpdateProductionStatus moves a task between stages without touching
	// the rest of the record (the employee-facing flow).
	UpdateProductionStatus(ctx context.Context, token, id, status string) error
	CreateProduction(ctx context.Context, token string, in domain.ProductionInput) error
	UpdateProduction(ctx context.Context, token, id string, in domain.ProductionInput) error
	DeleteProduction(ctx context.Context, token, id string) error

	ListOrders(ctx context.Context, token string) ([]domain.Order, error)
	CreateOrder(ctx context.Context, token string, in domain.OrderInput) error
	UpdateOrderStatus(ctx context.Context, token, id string, in domain.OrderStatusInput) error

	ListAwards(ctx context.Context, token string) ([]domain.Award, error)
	CreateAward(ctx context.Context, token string, in domain.AwardInput) error
	UpdateAward(ctx context.Context, token, id string, in domain.AwardInput) error
	DeleteAward(ctx context.Context, token, id string) error

	ListEnquiries(ctx context.Context, token string) ([]domain.Enquiry, error)
	CreateEnquiry(ctx context.Context, token string, in domain.EnquiryInput) error
	DeleteEnquiry(ctx context.Context, token, id string) error
}

// BackendAPI is the full ERP surface the console consumes.
type BackendAPI interface {
	AuthAPI
	RecordsAPI
}
