package ui

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
	"github.com/iamselvaperumal/alc-console/internal/core/table"
)

// Option lists for the admin forms. The backend accepts free-form status
// strings; these are the values the console offers.
var (
	projectStatuses    = []string{"Planning", "In Progress", "On Hold", "Completed"}
	attendanceStatuses = []string{"Present", "Absent", "Half Day", "On Leave"}
	payrollStatuses    = []string{"Pending", "Paid"}
	productionStatuses = []string{"Pending", "In Progress", "Completed"}
	payrollMonths      = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
)

// Grid definitions, one per resource. Declared once; Compute is what runs
// per request.
var (
	employeeGrid = table.New([]table.Column[domain.Employee]{
		{Key: "name", Header: "Name", Sortable: true, Accessor: func(e domain.Employee) any {
			if e.User != nil {
				return e.User.Username
			}
			return ""
		}},
		{Key: "department", Header: "Department", Sortable: true, Accessor: func(e domain.Employee) any {
			if e.Department != nil {
				return e.Department.Name
			}
			return ""
		}},
		{Key: "designation", Header: "Designation", Sortable: true, Accessor: func(e domain.Employee) any { return e.Designation }},
		{Key: "salary", Header: "Salary", Sortable: true, Accessor: func(e domain.Employee) any { return e.Salary },
			Render: func(e domain.Employee) string { return fmt.Sprintf("%.2f", e.Salary) }},
		{Key: "joined", Header: "Joined", Sortable: true, Accessor: func(e domain.Employee) any { return e.DateOfJoining }},
		{Key: "phone", Header: "Phone", Accessor: func(e domain.Employee) any { return e.Phone }},
	})

	departmentGrid = table.New([]table.Column[domain.Department]{
		{Key: "name", Header: "Name", Sortable: true, Accessor: func(d domain.Department) any { return d.Name }},
		{Key: "description", Header: "Description", Accessor: func(d domain.Department) any { return d.Description }},
	})

	projectGrid = table.New([]table.Column[domain.Project]{
		{Key: "title", Header: "Title", Sortable: true, Accessor: func(p domain.Project) any { return p.Title }},
		{Key: "client", Header: "Client", Sortable: true, Accessor: func(p domain.Project) any {
			if p.Client != nil {
				return p.Client.Username
			}
			return ""
		}},
		{Key: "status", Header: "Status", Sortable: true, Accessor: func(p domain.Project) any { return p.Status }},
		{Key: "progress", Header: "Progress", Sortable: true, Accessor: func(p domain.Project) any { return p.Progress },
			Render: func(p domain.Project) string { return fmt.Sprintf("%d%%", p.Progress) }},
		{Key: "start", Header: "Start", Sortable: true, Accessor: func(p domain.Project) any { return p.StartDate }},
		{Key: "end", Header: "End", Sortable: true, Accessor: func(p domain.Project) any { return p.EndDate }},
	})

	attendanceGrid = table.New([]table.Column[domain.AttendanceRecord]{
		{Key: "employee", Header: "Employee", Sortable: true, Accessor: func(a domain.AttendanceRecord) any { return employeeName(a.Employee) }},
		{Key: "date", Header: "Date", Sortable: true, Accessor: func(a domain.AttendanceRecord) any { return a.Date }},
		{Key: "checkin", Header: "Check in", Accessor: func(a domain.AttendanceRecord) any { return a.CheckIn }},
		{Key: "checkout", Header: "Check out", Accessor: func(a domain.AttendanceRecord) any { return a.CheckOut }},
		{Key: "status", Header: "Status", Sortable: true, Accessor: func(a domain.AttendanceRecord) any { return a.Status }},
	})

	payrollGrid = table.New([]table.Column[domain.PayrollRecord]{
		{Key: "employee", Header: "Employee", Sortable: true, Accessor: func(p domain.PayrollRecord) any { return employeeName(p.Employee) }},
		{Key: "period", Header: "Period", Sortable: true, Accessor: func(p domain.PayrollRecord) any { return p.Year*100 + p.Month },
			Render: func(p domain.PayrollRecord) string { return fmt.Sprintf("%d/%02d", p.Year, p.Month) }},
		{Key: "basic", Header: "Basic", Sortable: true, Accessor: func(p domain.PayrollRecord) any { return p.BasicSalary },
			Render: func(p domain.PayrollRecord) string { return fmt.Sprintf("%.2f", p.BasicSalary) }},
		{Key: "net", Header: "Net", Sortable: true, Accessor: func(p domain.PayrollRecord) any { return p.NetSalary },
			Render: func(p domain.PayrollRecord) string { return fmt.Sprintf("%.2f", p.NetSalary) }},
		{Key: "status", Header: "Status", Sortable: true, Accessor: func(p domain.PayrollRecord) any { return p.Status }},
	})

	productionGrid = table.New([]table.Column[domain.ProductionTask]{
		{Key: "task", Header: "Task", Sortable: true, Accessor: func(t domain.ProductionTask) any { return t.TaskName }},
		{Key: "assigned", Header: "Assigned to", Sortable: true, Accessor: func(t domain.ProductionTask) any { return employeeName(t.AssignedTo) }},
		{Key: "quantity", Header: "Quantity", Sortable: true, Accessor: func(t domain.ProductionTask) any { return t.Quantity }},
		{Key: "deadline", Header: "Deadline", Sortable: true, Accessor: func(t domain.ProductionTask) any { return t.Deadline }},
		{Key: "status", Header: "Status", Sortable: true, Accessor: func(t domain.ProductionTask) any { return t.Status }},
	})

	orderGrid = table.New([]table.Column[domain.Order]{
		{Key: "number", Header: "Order", Sortable: true, Accessor: func(o domain.Order) any { return o.OrderNumber }},
		{Key: "client", Header: "Client", Sortable: true, Accessor: func(o domain.Order) any {
			if o.Client != nil && o.Client.User != nil {
				return o.Client.User.Username
			}
			return ""
		}},
		{Key: "product", Header: "Product", Sortable: true, Accessor: func(o domain.Order) any { return o.ProductName }},
		{Key: "quantity", Header: "Quantity", Sortable: true, Accessor: func(o domain.Order) any { return o.Quantity }},
		{Key: "amount", Header: "Amount", Sortable: true, Accessor: func(o domain.Order) any { return o.TotalAmount },
			Render: func(o domain.Order) string { return fmt.Sprintf("%.2f", o.TotalAmount) }},
		{Key: "status", Header: "Status", Sortable: true, Accessor: func(o domain.Order) any { return string(o.Status) }},
		{Key: "delivery", Header: "Delivery", Sortable: true, Accessor: func(o domain.Order) any { return o.DeliveryDate }},
	})

	awardGrid = table.New([]table.Column[domain.Award]{
		{Key: "title", Header: "Title", Sortable: true, Accessor: func(a domain.Award) any { return a.Title }},
		{Key: "description", Header: "Description", Accessor: func(a domain.Award) any { return a.Description }},
		{Key: "date", Header: "Date", Sortable: true, Accessor: func(a domain.Award) any { return a.Date }},
	})

	enquiryGrid = table.New([]table.Column[domain.Enquiry]{
		{Key: "name", Header: "Name", Sortable: true, Accessor: func(e domain.Enquiry) any { return e.Name }},
		{Key: "email", Header: "Email", Sortable: true, Accessor: func(e domain.Enquiry) any { return e.Email }},
		{Key: "subject", Header: "Subject", Sortable: true, Accessor: func(e domain.Enquiry) any { return e.Subject }},
		{Key: "message", Header: "Message", Accessor: func(e domain.Enquiry) any { return e.Message }},
		{Key: "received", Header: "Received", Sortable: true, Accessor: func(e domain.Enquiry) any { return e.CreatedAt }},
	})
)

// dateString formats a record date for an <input type="date"> value.
func dateString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func employeeName(e *domain.Employee) string {
	if e == nil {
		return ""
	}
	if e.User != nil {
		return e.User.Username
	}
	return e.Designation
}

// findByID picks one record out of a fetched list; the backend exposes
// lists, not per-record reads.
func findByID[T any](items []T, id string, idOf func(T) string) (T, bool) {
	for _, item := range items {
		if idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// adminList is the shared list-page renderer.
func (ui *UI) adminList(c echo.Context, err error, resource, title string, g grid, newPath, newLabel string) error {
	toast, herr := ui.fetchToast(c, err, resource)
	if herr != nil {
		return herr
	}
	data := map[string]any{
		"Title":    title,
		"Grid":     g,
		"NewPath":  newPath,
		"NewLabel": newLabel,
	}
	if toast != nil {
		data["Toast"] = toast
	}
	return ui.render(c, http.StatusOK, "admin_list", data)
}

// writeOutcome finishes a create/update/delete post: 401 forces re-login,
// other failures flash an error, success flashes confirmation. Either way
// the browser lands back on the list.
func (ui *UI) writeOutcome(c echo.Context, err error, listPath, success string) error {
	if err != nil {
		if domain.StatusOf(err) == http.StatusUnauthorized {
			return ui.forceLogin(c)
		}
		ui.flash(c, "error", domain.MessageOf(err))
	} else {
		ui.flash(c, "success", success)
	}
	return c.Redirect(http.StatusSeeOther, listPath)
}

// AdminDashboard shows resource counts. Counts are best-effort; a failed
// list shows as zero rather than failing the page.
func (ui *UI) AdminDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	token := sessionFrom(c).Token

	type stat struct {
		Label string
		Count int
		Link  string
	}
	var stats []stat
	count := func(label, link string, n int, err error) {
		if err != nil {
			ui.logger.Debug().Err(err).Str("resource", label).Msg("dashboard count unavailable")
		}
		stats = append(stats, stat{Label: label, Count: n, Link: link})
	}

	employees, err := ui.backend.ListEmployees(ctx, token)
	count("Employees", "/admin/employees", len(employees), err)
	departments, err := ui.backend.ListDepartments(ctx, token)
	count("Departments", "/admin/departments", len(departments), err)
	projects, err := ui.backend.ListProjects(ctx, token)
	count("Projects", "/admin/projects", len(projects), err)
	production, err := ui.backend.ListProduction(ctx, token)
	count("Production Tasks", "/admin/production", len(production), err)
	orders, err := ui.backend.ListOrders(ctx, token)
	count("Orders", "/admin/orders", len(orders), err)
	enquiries, err := ui.backend.ListEnquiries(ctx, token)
	count("Enquiries", "/admin/enquiries", len(enquiries), err)

	return ui.render(c, http.StatusOK, "admin_dashboard", map[string]any{
		"Title": "Admin Dashboard",
		"Stats": stats,
	})
}

// --- employees ---

func (ui *UI) AdminEmployees(c echo.Context) error {
	employees, err := ui.backend.ListEmployees(c.Request().Context(), sessionFrom(c).Token)
	return ui.adminList(c, err, "employees", "Employees", grid{
		View:       employeeGrid.Compute(employees, tableState(c)),
		BasePath:   "/admin/employees",
		EditPath:   "/admin/employees",
		DeletePath: "/admin/employees",
	}, "/admin/employees/new", "Add Employee")
}

func (ui *UI) AdminEmployeeNew(c echo.Context) error {
	return ui.employeeForm(c, http.StatusOK, "New Employee", "/admin/employees", true, domain.EmployeeInput{}, "")
}

func (ui *UI) AdminEmployeeCreate(c echo.Context) error {
	var in domain.EmployeeInput
	if err := c.Bind(&in); err != nil {
		return ui.employeeForm(c, http.StatusUnprocessableEntity, "New Employee", "/admin/employees", true, in, "Invalid form submission")
	}
	if err := c.Validate(&in); err != nil {
		return ui.employeeForm(c, http.StatusUnprocessableEntity, "New Employee", "/admin/employees", true, in, validationMessage(err))
	}
	err := ui.backend.CreateEmployee(c.Request().Context(), sessionFrom(c).Token, in)
	return ui.writeOutcome(c, err, "/admin/employees", "Employee created")
}

func (ui *UI) AdminEmployeeEdit(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	employees, err := ui.backend.ListEmployees(ctx, sessionFrom(c).Token)
	if err != nil {
		return ui.writeOutcome(c, err, "/admin/employees", "")
	}
	emp, ok := findByID(employees, id, func(e domain.Employee) string { return e.ID })
	if !ok {
		ui.flash(c, "error", "Employee not found")
		return c.Redirect(http.StatusSeeOther, "/admin/employees")
	}
	in := domain.EmployeeInput{
		Designation:   emp.Designation,
		Salary:        emp.Salary,
		DateOfJoining: dateString(emp.DateOfJoining),
		Phone:         emp.Phone,
		Address:       emp.Address,
	}
	if emp.User != nil {
		in.Username = emp.User.Username
		in.Email = emp.User.Email
	}
	if emp.Department != nil {
		in.Department = emp.Department.ID
	}
	return ui.employeeForm(c, http.StatusOK, "Edit Employee", "/admin/employees/"+id, false, in, "")
}

func (ui *UI) AdminEmployeeUpdate(c echo.Context) error {
	id := c.Param("id")
	var in domain.EmployeeInput
	if err := c.Bind(&in); err != nil {
		return ui.employeeForm(c, http.StatusUnprocessableEntity, "Edit Employee", "/admin/employees/"+id, false, in, "Invalid form submission")
	}
	// Username, email and password only travel on create; the update
	// endpoint ignores account fields.
	in.Username, in.Email, in.Password = "-", "-", ""
	err := ui.backend.UpdateEmployee(c.Request().Context(), sessionFrom(c).Token, id, in)
	return ui.writeOutcome(c, err, "/admin/employees", "Employee updated")
}

func (ui *UI) AdminEmployeeDelete(c echo.Context) error {
	err := ui.backend.DeleteEmployee(c.Request().Context(), sessionFrom(c).Token, c.Param("id"))
	return ui.writeOutcome(c, err, "/admin/employees", "Employee deleted")
}

func (ui *UI) employeeForm(c echo.Context, code int, title, action string, isNew bool, in domain.EmployeeInput, errMsg string) error {
	departments, err := ui.backend.ListDepartments(c.Request().Context(), sessionFrom(c).Token)
	if err != nil {
		ui.logger.Warn().Err(err).Msg("departments unavailable for employee form")
	}
	return ui.render(c, code, "employee_form", map[string]any{
		"Title":       title,
		"Action":      action,
		"IsNew":       isNew,
		"Form":        in,
		"Departments": departments,
		"Error":       errMsg,
	})
}

// --- departments ---

func (ui *UI) AdminDepartments(c echo.Context) error {
	departments, err := ui.backend.ListDepartments(c.Request().Context(), sessionFrom(c).Token)
	return ui.adminList(c, err, "departments", "Departments", grid{
		View:       departmentGrid.Compute(departments, tableState(c)),
		BasePath:   "/admin/departments",
		EditPath:   "/admin/departments",
		DeletePath: "/admin/departments",
	}, "/admin/departments/new", "Add Department")
}

func (ui *UI) AdminDepartmentNew(c echo.Context) error {
	return ui.departmentForm(c, http.StatusOK, "New Department", "/admin/departments", domain.DepartmentInput{}, "")
}

func (ui *UI) AdminDepartmentCreate(c echo.Context) error {
	var in domain.DepartmentInput
	if err := c.Bind(&in); err != nil {
		return ui.departmentForm(c, http.StatusUnprocessableEntity, "New Department", "/admin/departments", in, "Invalid form submission")
	}
	if err := c.Validate(&in); err != nil {
		return ui.departmentForm(c, http.StatusUnprocessableEntity, "New Department", "/admin/departments", in, validationMessage(err))
	}
	err := ui.backend.CreateDepartment(c.Request().Context(), sessionFrom(c).Token, in)
	return ui.writeOutcome(c, err, "/admin/departments", "Department created")
}

func (ui *UI) AdminDepartmentEdit(c echo.Context) error {
	id := c.Param("id")
	departments, err := ui.backend.ListDepartments(c.Request().Context(), sessionFrom(c).Token)
	if err != nil {
		return ui.writeOutcome(c, err, "/admin/departments", "")
	}
	dep, ok := findByID(departments, id, func(d domain.Department) string { return d.ID })
	if !ok {
		ui.flash(c, "error", "Department not found")
		return c.Redirect(http.StatusSeeOther, "/admin/departments")
	}
	in := domain.DepartmentInput{Name: dep.Name, Description: dep.Description}
	return ui.departmentForm(c, http.StatusOK, "Edit Department", "/admin/departments/"+id, in, "")
}

func (ui *UI) AdminDepartmentUpdate(c echo.Context) error {
	id := c.Param("id")
	var in domain.DepartmentInput
	if err := c.Bind(&in); err != nil {
		return ui.departmentForm(c, http.StatusUnprocessableEntity, "Edit Department", "/admin/departments/"+id, in, "Invalid form submission")
	}
	if err := c.Validate(&in); err != nil {
		return ui.departmentForm(c, http.StatusUnprocessableEntity, "Edit Department", "/admin/departments/"+id, in, validationMessage(err))
	}
	err := ui.backend.UpdateDepartment(c.Request().Context(), sessionFrom(c).Token, id, in)
	return ui.writeOutcome(c, err, "/admin/departments", "Department updated")
}

func (ui *UI) AdminDepartmentDelete(c echo.Context) error {
	err := ui.backend.DeleteDepartment(c.Request().Context(), sessionFrom(c).Token, c.Param("id"))
	return ui.writeOutcome(c, err, "/admin/departments", "Department deleted")
}

func (ui *UI) departmentForm(c echo.Context, code int, title, action string, in domain.DepartmentInput, errMsg string) error {
	return ui.render(c, code, "department_form", map[string]any{
		"Title":  title,
		"Action": action,
		"Form":   in,
		"Error":  errMsg,
	})
}

// --- projects ---

func (ui *UI) AdminProjects(c echo.Context) error {
	projects, err := ui.backend.ListProjects(c.Request().Context(), sessionFrom(c).Token)
	return ui.adminList(c, err, "projects", "Projects", grid{
		View:       projectGrid.Compute(projects, tableState(c)),
		BasePath:   "/admin/projects",
		EditPath:   "/admin/projects",
		DeletePath: "/admin/projects",
	}, "/admin/projects/new", "Add Project")
}

func (ui *UI) AdminProjectNew(c echo.Context) error {
	return ui.projectForm(c, http.StatusOK, "New Project", "/admin/projects", domain.ProjectInput{Status: projectStatuses[0]}, "")
}

func (ui *UI) AdminProjectCreate(c echo.Context) error {
	var in domain.ProjectInput
	if err := c.Bind(&in); err != nil {
		return ui.projectForm(c, http.StatusUnprocessableEntity, "New Project", "/admin/projects", in, "Invalid form submission")
	}
	if err := c.Validate(&in); err != nil {
		return ui.projectForm(c, http.StatusUnprocessableEntity, "New Project", "/admin/projects", in, validationMessage(err))
	}
	err := ui.backend.CreateProject(c.Request().Context(), sessionFrom(c).Token, in)
	return ui.writeOutcome(c, err, "/admin/projects", "Project created")
}

func (ui *UI) AdminProjectEdit(c echo.Context) error {
	id := c.Param("id")
	projects, err := ui.backend.ListProjects(c.Request().Context(), sessionFrom(c).Token)
	if err != nil {
		return ui.writeOutcome(c, err, "/admin/projects", "")
	}
	p, ok := findByID(projects, id, func(p domain.Project) string { return p.ID })
	if !ok {
		ui.flash(c, "error", "Project not found")
		return c.Redirect(http.StatusSeeOther, "/admin/projects")
	}
	in := domain.ProjectInput{
		Title:       p.Title,
		Description: p.Description,
		StartDate:   dateString(p.StartDate),
		EndDate:     dateString(p.EndDate),
		Status:      p.Status,
		Progress:    p.Progress,
	}
	if p.Client != nil {
		in.Client = p.Client.ID
	}
	return ui.projectForm(c, http.StatusOK, "Edit Project", "/admin/projects/"+id, in, "")
}

func (ui *UI) AdminProjectUpdate(c echo.Context) error {
	id := c.Param("id")
	var in domain.ProjectInput
	if err := c.Bind(&in); err != nil {
		return ui.projectForm(c, http.StatusUnprocessableEntity, "Edit Project", "/admin/projects/"+id, in, "Invalid form submission")
	}
	if err := c.Validate(&in); err != nil {
		return ui.projectForm(c, http.StatusUnprocessableEntity, "Edit Project", "/admin/projects/"+id, in, validationMessage(err))
	}
	err := ui.backend.UpdateProject(c.Request().Context(), sessionFrom(c).Token, id, in)
	return ui.writeOutcome(c, err, "/admin/projects", "Project updated")
}

func (ui *UI) AdminProjectDelete(c echo.Context) error {
	err := ui.backend.DeleteProject(c.Request().Context(), sessionFrom(c).Token, c.Param("id"))
	return ui.writeOutcome(c, err, "/admin/projects", "Project deleted")
}

func (ui *UI) projectForm(c echo.Context, code int, title, action string, in domain.ProjectInput, errMsg string) error {
	return ui.render(c, code, "project_form", map[string]any{
		"Title":    title,
		"Action":   action,
		"Form":     in,
		"Statuses": projectStatuses,
		"Error":    errMsg,
	})
}

// --- attendance ---

func (ui *UI) AdminAttendance(c echo.Context) error {
	records, err := ui.backend.ListAttendance(c.Request().Context(), sessionFrom(c).Token)
	return ui.adminList(c, err, "attendance", "Attendance", grid{
		View:       attendanceGrid.Compute(records, tableState(c)),
		BasePath:   "/admin/attendance",
		EditPath:   "/admin/attendance",
		DeletePath: "/admin/attendance",
	}, "/admin/attendance/new", "Mark Attendance")
}

func (ui *UI) AdminAttendanceNew(c echo.Context) error {
	return ui.attendanceForm(c, http.StatusOK, "Mark Attendance", "/admin/attendance", domain.AttendanceInput{Status: attendanceStatuses[0]}, "")
}

func (ui *UI) AdminAttendanceCreate(c echo.Context) error {
	var in domain.AttendanceInput
	if err := c.Bind(&in); err != nil {
		return ui.attendanceForm(c, http.StatusUnprocessableEntity, "Mark Attendance", "/admin/attendance", in, "Invalid form submission")
	}
	if err := c.Validate(&in); err != nil {
		return ui.attendanceForm(c, http.StatusUnprocessableEntity, "Mark Attendance", "/admin/attendance", in, validationMessage(err))
	}
	err := ui.backend.CreateAttendance(c.Request().Context(), sessionFrom(c).Token, in)
	return ui.writeOutcome(c, err, "/admin/attendance", "Attendance recorded")
}

func (ui *UI) AdminAttendanceEdit(c echo.Context) error {
	id := c.Param("id")
	records, err := ui.backend.ListAttendance(c.Request().Context(), sessionFrom(c).Token)
	if err != nil {
		return ui.writeOutcome(c, err, "/admin/attendance", "")
	}
	rec, ok := findByID(records, id, func(a domain.AttendanceRecord) string { return a.ID })
	if !ok {
		ui.flash(c, "error", "Attendance record not found")
		return c.Redirect(http.StatusSeeOther, "/admin/attendance")
	}
	in := domain.AttendanceInput{
		Date:     dateString(rec.Date),
		CheckIn:  rec.CheckIn,
		CheckOut: rec.CheckOut,
		Status:   rec.Status,
	}
	if rec.Employee != nil {
		in.Employee = rec.Employee.ID
	}
	return ui.attendanceForm(c, http.StatusOK, "Edit Attendance", "/admin/attendance/"+id, in, "")
}

func (ui *UI) AdminAttendanceUpdate(c echo.Context) error {
	id := c.Param("id")
	var in domain.AttendanceInput
	if err := c.Bind(&in); err != nil {
		return ui.attendanceForm(c, http.StatusUnprocessableEntity, "Edit Attendance", "/admin/attendance/"+id, in, "Invalid form submission")
	}
	if err := c.Validate(&in); err != nil {
		return ui.attendanceForm(c, http.StatusUnprocessableEntity, "Edit Attendance", "/admin/attendance/"+id, in, validationMessage(err))
	}
	err := ui.backend.UpdateAttendance(c.Request().Context(), sessionFrom(c).Token, id, in)
	return ui.writeOutcome(c, err, "/admin/attendance", "Attendance updated")
}

func (ui *UI) AdminAttendanceDelete(c echo.Context) error {
	err := ui.backend.DeleteAttendance(c.Request().Context(), sessionFrom(c).Token, c.Param("id"))
	return ui.writeOutcome(c, err, "/admin/attendance", "Attendance deleted")
}

func (ui *UI) attendanceForm(c echo.Context, code int, title, action string, in domain.AttendanceInput, errMsg string) error {
	employees, err := ui.backend.ListEmployees(c.Request().Context(), sessionFrom(c).Token)
	if err != nil {
		ui.logger.Warn().Err(err).Msg("employees unavailable for attendance form")
	}
	return ui.render(c, code, "attendance_form", map[string]any{
		"Title":     title,
		"Action":    action,
		"Form":      in,
		"Employees": employees,
		"Statuses":  attendanceStatuses,
		"Error":     errMsg,
	})
}

// --- payroll ---

func (ui *UI) AdminPayroll(c echo.Context) error {
	records, err := ui.backend.ListPayroll(c.Request().Context(), sessionFrom(c).Token)
	return ui.adminList(c, err, "payroll", "Payroll", grid{
		View:       payrollGrid.Compute(records, tableState(c)),
		BasePath:   "/admin/payroll",
		EditPath:   "/admin/payroll",
		DeletePath: "/admin/payroll",
	}, "/admin/payroll/new", "Add Payroll")
}

func (ui *UI) AdminPayrollNew(c echo.Context) error {
	return ui.payrollForm(c, http.StatusOK, "New Payroll", "/admin/payroll", domain.PayrollInput{Status: payrollStatuses[0]}, "")
}

func (ui *UI) AdminPayrollCreate(c echo.Context) error {
	var in domain.PayrollInput
	if err := c.Bind(&in); err != nil {
		return ui.payrollForm(c, http.StatusUnprocessableEntity, "New Payroll", "/admin/payroll", in, "Invalid form submission")
	}
	if err := c.Validate(&in); err != nil {
		return ui.payrollForm(c, http.StatusUnprocessableEntity, "New Payroll", "/admin/payroll", in, validationMessage(err))
	}
	err := ui.backend.CreatePayroll(c.Request().Context(), sessionFrom(c).Token, in)
	return ui.writeOutcome(c, err, "/admin/payroll", "Payroll created")
}

func (ui *UI) AdminPayrollEdit(c echo.Context) error {
	id := c.Param("id")
	records, err := ui.backend.ListPayroll(c.Request().Context(), sessionFrom(c).Token)
	if err != nil {
		return ui.writeOutcome(c, err, "/admin/payroll", "")
	}
	rec, ok := findByID(records, id, func(p domain.PayrollRecord) string { return p.ID })
	if !ok {
		ui.flash(c, "error", "Payroll record not found")
		return c.Redirect(http.StatusSeeOther, "/admin/payroll")
	}
	in := domain.PayrollInput{
		Month:       rec.Month,
		Year:        rec.Year,
		BasicSalary: rec.BasicSalary,
		Allowances:  rec.Allowances,
		Deductions:  rec.Deductions,
		Status:      rec.Status,
	}
	if rec.Employee != nil {
		in.Employee = rec.Employee.ID
	}
	return ui.payrollForm(c, http.StatusOK, "Edit Payroll", "/admin/payroll/"+id, in, "")
}

func (ui *UI) AdminPayrollUpdate(c echo.Context) error {
	id := c.Param("id")
	var in domain.PayrollInput
	if err := c.Bind(&in); err != nil {
		return ui.payrollForm(c, http.StatusUnprocessableEntity, "Edit Payroll", "/admin/payroll/"+id, in, "Invalid form submission")
	}
	if err := c.Validate(&in); err != nil {
		return ui.payrollForm(c, http.StatusUnprocessableEntity, "Edit Payroll", "/admin/payroll/"+id, in, validationMessage(err))
	}
	err := ui.backend.UpdatePayroll(c.Request().Context(), sessionFrom(c).Token, id, in)
	return ui.writeOutcome(c, err, "/admin/payroll", "Payroll updated")
}

func (ui *UI) AdminPayrollDelete(c echo.Context) error {
	err := ui.backend.DeletePayroll(c.Request().Context(), sessionFrom(c).Token, c.Param("id"))
	return ui.writeOutcome(c, err, "/admin/payroll", "Payroll deleted")
}

func (ui *UI) payrollForm(c echo.Context, code int, title, action string, in domain.PayrollInput, errMsg string) error {
	employees, err := ui.backend.ListEmployees(c.Request().Context(), sessionFrom(c).Token)
	if err != nil {
		ui.logger.Warn().Err(err).Msg("employees unavailable for payroll form")
	}
	return ui.render(c, code, "payroll_form", map[string]any{
		"Title":     title,
		"Action":    action,
		"Form":      in,
		"Employees": employees,
		"Statuses":  payrollStatuses,
		"Months":    payrollMonths,
		"Error":     errMsg,
	})
}

// --- production ---

func (ui *UI) AdminProduction(c echo.Context) error {
	tasks, err := ui.backend.ListProduction(c.Request().Context(), sessionFrom(c).Token)
	return ui.adminList(c, err, "production", "Production", grid{
		View:       productionGrid.Compute(tasks, tableState(c)),
		BasePath:   "/admin/production",
		EditPath:   "/admin/production",
		DeletePath: "/admin/production",
	}, "/admin/production/new", "Add Task")
}

func (ui *UI) AdminProductionNew(c echo.Context) error {
	return ui.productionForm(c, http.StatusOK, "New Production Task", "/admin/production", domain.ProductionInput{Status: productionStatuses[0], Quantity: 1}, "")
}

func (ui *UI) AdminProductionCreate(c echo.Context) error {
	var in domain.ProductionInput
	if err := c.Bind(&in); err != nil {
		return ui.productionForm(c, http.StatusUnprocessableEntity, "New Production Task", "/admin/production", in, "Invalid form submission")
	}
	if err := c.Validate(&in); err != nil {
		return ui.productionForm(c, http.StatusUnprocessableEntity, "New Production Task", "/admin/production", in, validationMessage(err))
	}
	err := ui.backend.CreateProduction(c.Request().Context(), sessionFrom(c).Token, in)
	return ui.writeOutcome(c, err, "/admin/production", "Task created")
}

func (ui *UI) AdminProductionEdit(c echo.Context) error {
	id := c.Param("id")
	tasks, err := ui.backend.ListProduction(c.Request().Context(), sessionFrom(c).Token)
	if err != nil {
		return ui.writeOutcome(c, err, "/admin/production", "")
	}
	task, ok := findByID(tasks, id, func(t domain.ProductionTask) string { return t.ID })
	if !ok {
		ui.flash(c, "error", "Task not found")
		return c.Redirect(http.StatusSeeOther, "/admin/production")
	}
	in := domain.ProductionInput{
		TaskName:    task.TaskName,
		Description: task.Description,
		Deadline:    dateString(task.Deadline),
		Quantity:    task.Quantity,
		Status:      task.Status,
	}
	if task.AssignedTo != nil {
		in.AssignedTo = task.AssignedTo.ID
	}
	return ui.productionForm(c, http.StatusOK, "Edit Production Task", "/admin/production/"+id, in, "")
}

func (ui *UI) AdminProductionUpdate(c echo.Context) error {
	id := c.Param("id")
	var in domain.ProductionInput
	if err := c.Bind(&in); err != nil {
		return ui.productionForm(c, http.StatusUnprocessableEntity, "Edit Production Task", "/admin/production/"+id, in, "Invalid form submission")
	}
	if err := c.Validate(&in); err != nil {
		return ui.productionForm(c, http.StatusUnprocessableEntity, "Edit Production Task", "/admin/production/"+id, in, validationMessage(err))
	}
	err := ui.backend.UpdateProduction(c.Request().Context(), sessionFrom(c).Token, id, in)
	return ui.writeOutcome(c, err, "/admin/production", "Task updated")
}

func (ui *UI) AdminProductionDelete(c echo.Context) error {
	err := ui.backend.DeleteProduction(c.Request().Context(), sessionFrom(c).Token, c.Param("id"))
	return ui.writeOutcome(c, err, "/admin/production", "Task deleted")
}

func (ui *UI) productionForm(c echo.Context, code int, title, action string, in domain.ProductionInput, errMsg string) error {
	employees, err := ui.backend.ListEmployees(c.Request().Context(), sessionFrom(c).Token)
	if err != nil {
		ui.logger.Warn().Err(err).Msg("employees unavailable for production form")
	}
	return ui.render(c, code, "production_form", map[string]any{
		"Title":     title,
		"Action":    action,
		"Form":      in,
		"Employees": employees,
		"Statuses":  productionStatuses,
		"Error":     errMsg,
	})
}

// --- orders ---

func (ui *UI) AdminOrders(c echo.Context) error {
	orders, err := ui.backend.ListOrders(c.Request().Context(), sessionFrom(c).Token)
	return ui.adminList(c, err, "orders", "Orders", grid{
		View:     orderGrid.Compute(orders, tableState(c)),
		BasePath: "/admin/orders",
		EditPath: "/admin/orders",
	}, "", "")
}

func (ui *UI) AdminOrderEdit(c echo.Context) error {
	id := c.Param("id")
	orders, err := ui.backend.ListOrders(c.Request().Context(), sessionFrom(c).Token)
	if err != nil {
		return ui.writeOutcome(c, err, "/admin/orders", "")
	}
	order, ok := findByID(orders, id, func(o domain.Order) string { return o.ID })
	if !ok {
		ui.flash(c, "error", "Order not found")
		return c.Redirect(http.StatusSeeOther, "/admin/orders")
	}
	return ui.render(c, http.StatusOK, "order_form", map[string]any{
		"Title":    "Update Order " + order.OrderNumber,
		"Action":   "/admin/orders/" + id,
		"Order":    order,
		"Statuses": domain.OrderStatuses,
	})
}

func (ui *UI) AdminOrderUpdate(c echo.Context) error {
	id := c.Param("id")
	var in domain.OrderStatusInput
	if err := c.Bind(&in); err != nil {
		ui.flash(c, "error", "Invalid form submission")
		return c.Redirect(http.StatusSeeOther, "/admin/orders")
	}
	err := ui.backend.UpdateOrderStatus(c.Request().Context(), sessionFrom(c).Token, id, in)
	return ui.writeOutcome(c, err, "/admin/orders", "Order updated")
}

// --- awards ---

func (ui *UI) AdminAwards(c echo.Context) error {
	awards, err := ui.backend.ListAwards(c.Request().Context(), sessionFrom(c).Token)
	return ui.adminList(c, err, "awards", "Awards", grid{
		View:       awardGrid.Compute(awards, tableState(c)),
		BasePath:   "/admin/awards",
		EditPath:   "/admin/awards",
		DeletePath: "/admin/awards",
	}, "/admin/awards/new", "Add Award")
}

func (ui *UI) AdminAwardNew(c echo.Context) error {
	return ui.awardForm(c, http.StatusOK, "New Award", "/admin/awards", domain.AwardInput{}, "")
}

func (ui *UI) AdminAwardCreate(c echo.Context) error {
	var in domain.AwardInput
	if err := c.Bind(&in); err != nil {
		return ui.awardForm(c, http.StatusUnprocessableEntity, "New Award", "/admin/awards", in, "Invalid form submission")
	}
	if err := c.Validate(&in); err != nil {
		return ui.awardForm(c, http.StatusUnprocessableEntity, "New Award", "/admin/awards", in, validationMessage(err))
	}
	err := ui.backend.CreateAward(c.Request().Context(), sessionFrom(c).Token, in)
	return ui.writeOutcome(c, err, "/admin/awards", "Award created")
}

func (ui *UI) AdminAwardEdit(c echo.Context) error {
	id := c.Param("id")
	awards, err := ui.backend.ListAwards(c.Request().Context(), sessionFrom(c).Token)
	if err != nil {
		return ui.writeOutcome(c, err, "/admin/awards", "")
	}
	award, ok := findByID(awards, id, func(a domain.Award) string { return a.ID })
	if !ok {
		ui.flash(c, "error", "Award not found")
		return c.Redirect(http.StatusSeeOther, "/admin/awards")
	}
	in := domain.AwardInput{Title: award.Title, Description: award.Description, Date: dateString(award.Date)}
	return ui.awardForm(c, http.StatusOK, "Edit Award", "/admin/awards/"+id, in, "")
}

func (ui *UI) AdminAwardUpdate(c echo.Context) error {
	id := c.Param("id")
	var in domain.AwardInput
	if err := c.Bind(&in); err != nil {
		return ui.awardForm(c, http.StatusUnprocessableEntity, "Edit Award", "/admin/awards/"+id, in, "Invalid form submission")
	}
	if err := c.Validate(&in); err != nil {
		return ui.awardForm(c, http.StatusUnprocessableEntity, "Edit Award", "/admin/awards/"+id, in, validationMessage(err))
	}
	err := ui.backend.UpdateAward(c.Request().Context(), sessionFrom(c).Token, id, in)
	return ui.writeOutcome(c, err, "/admin/awards", "Award updated")
}

func (ui *UI) AdminAwardDelete(c echo.Context) error {
	err := ui.backend.DeleteAward(c.Request().Context(), sessionFrom(c).Token, c.Param("id"))
	return ui.writeOutcome(c, err, "/admin/awards", "Award deleted")
}

func (ui *UI) awardForm(c echo.Context, code int, title, action string, in domain.AwardInput, errMsg string) error {
	return ui.render(c, code, "award_form", map[string]any{
		"Title":  title,
		"Action": action,
		"Form":   in,
		"Error":  errMsg,
	})
}

// --- enquiries ---

func (ui *UI) AdminEnquiries(c echo.Context) error {
	enquiries, err := ui.backend.ListEnquiries(c.Request().Context(), sessionFrom(c).Token)
	return ui.adminList(c, err, "enquiries", "Enquiries", grid{
		View:       enquiryGrid.Compute(enquiries, tableState(c)),
		BasePath:   "/admin/enquiries",
		DeletePath: "/admin/enquiries",
		EmptyText:  "No enquiries received",
	}, "", "")
}

func (ui *UI) AdminEnquiryDelete(c echo.Context) error {
	err := ui.backend.DeleteEnquiry(c.Request().Context(), sessionFrom(c).Token, c.Param("id"))
	return ui.writeOutcome(c, err, "/admin/enquiries", "Enquiry deleted")
}
