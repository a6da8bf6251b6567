package ui

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// NewRouter builds the Echo instance with every console route registered.
// Route-tree gating mirrors the backend's role model: /admin, /employee and
// /client each sit behind their RequireRole middleware, everything else is
// public.
func NewRouter(ui *UI, health *HealthHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	// HTTP metrics get a router-local registry; /metrics serves it together
	// with the process-wide application metrics.
	httpMetrics := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "alc_console",
		Registerer: httpMetrics,
	}))
	e.Use(ui.ResolveSession)

	// --- Probes and metrics (no auth required) ---
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{httpMetrics, prometheus.DefaultGatherer},
	}))

	// --- Public pages ---
	e.GET("/", ui.Home)
	e.GET("/about", ui.About)
	e.GET("/departments", ui.PublicDepartments)

	// --- Auth ---
	e.GET("/login", ui.LoginPage)
	e.POST("/login", ui.Login)
	e.GET("/register", ui.RegisterPage)
	e.POST("/register", ui.Register)
	e.GET("/logout", ui.Logout)

	// --- Admin tree ---
	admin := e.Group("/admin", ui.RequireRole("Admin"))
	admin.GET("", ui.AdminDashboard)

	admin.GET("/employees", ui.AdminEmployees)
	admin.GET("/employees/new", ui.AdminEmployeeNew)
	admin.POST("/employees", ui.AdminEmployeeCreate)
	admin.GET("/employees/:id/edit", ui.AdminEmployeeEdit)
	admin.POST("/employees/:id", ui.AdminEmployeeUpdate)
	admin.POST("/employees/:id/delete", ui.AdminEmployeeDelete)

	admin.GET("/departments", ui.AdminDepartments)
	admin.GET("/departments/new", ui.AdminDepartmentNew)
	admin.POST("/departments", ui.AdminDepartmentCreate)
	admin.GET("/departments/:id/edit", ui.AdminDepartmentEdit)
	admin.POST("/departments/:id", ui.AdminDepartmentUpdate)
	admin.POST("/departments/:id/delete", ui.AdminDepartmentDelete)

	admin.GET("/projects", ui.AdminProjects)
	admin.GET("/projects/new", ui.AdminProjectNew)
	admin.POST("/projects", ui.AdminProjectCreate)
	admin.GET("/projects/:id/edit", ui.AdminProjectEdit)
	admin.POST("/projects/:id", ui.AdminProjectUpdate)
	admin.POST("/projects/:id/delete", ui.AdminProjectDelete)

	admin.GET("/attendance", ui.AdminAttendance)
	admin.GET("/attendance/new", ui.AdminAttendanceNew)
	admin.POST("/attendance", ui.AdminAttendanceCreate)
	admin.GET("/attendance/:id/edit", ui.AdminAttendanceEdit)
	admin.POST("/attendance/:id", ui.AdminAttendanceUpdate)
	admin.POST("/attendance/:id/delete", ui.AdminAttendanceDelete)

	admin.GET("/payroll", ui.AdminPayroll)
	admin.GET("/payroll/new", ui.AdminPayrollNew)
	admin.POST("/payroll", ui.AdminPayrollCreate)
	admin.GET("/payroll/:id/edit", ui.AdminPayrollEdit)
	admin.POST("/payroll/:id", ui.AdminPayrollUpdate)
	admin.POST("/payroll/:id/delete", ui.AdminPayrollDelete)

	admin.GET("/production", ui.AdminProduction)
	admin.GET("/production/new", ui.AdminProductionNew)
	admin.POST("/production", ui.AdminProductionCreate)
	admin.GET("/production/:id/edit", ui.AdminProductionEdit)
	admin.POST("/production/:id", ui.AdminProductionUpdate)
	admin.POST("/production/:id/delete", ui.AdminProductionDelete)

	admin.GET("/orders", ui.AdminOrders)
	admin.GET("/orders/:id/edit", ui.AdminOrderEdit)
	admin.POST("/orders/:id", ui.AdminOrderUpdate)

	admin.GET("/awards", ui.AdminAwards)
	admin.GET("/awards/new", ui.AdminAwardNew)
	admin.POST("/awards", ui.AdminAwardCreate)
	admin.GET("/awards/:id/edit", ui.AdminAwardEdit)
	admin.POST("/awards/:id", ui.AdminAwardUpdate)
	admin.POST("/awards/:id/delete", ui.AdminAwardDelete)

	admin.GET("/enquiries", ui.AdminEnquiries)
	admin.POST("/enquiries/:id/delete", ui.AdminEnquiryDelete)

	// --- Employee tree ---
	employee := e.Group("/employee", ui.RequireRole("Employee"))
	employee.GET("", ui.EmployeeDashboard)
	employee.GET("/tasks", ui.EmployeeTasks)
	employee.POST("/tasks/:id/status", ui.EmployeeTaskStatus)
	employee.GET("/attendance", ui.EmployeeAttendance)
	employee.GET("/payroll", ui.EmployeePayroll)

	// --- Client tree ---
	client := e.Group("/client", ui.RequireRole("Client"))
	client.GET("", ui.ClientDashboard)
	client.GET("/projects", ui.ClientProjects)
	client.GET("/orders", ui.ClientOrders)
	client.GET("/orders/new", ui.ClientOrderNew)
	client.POST("/orders", ui.ClientOrderCreate)
	client.POST("/orders/:id/cancel", ui.ClientOrderCancel)
	client.GET("/enquiry", ui.ClientEnquiryNew)
	client.POST("/enquiry", ui.ClientEnquiryCreate)

	return e
}
