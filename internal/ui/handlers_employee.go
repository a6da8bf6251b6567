package ui

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
	"github.com/iamselvaperumal/alc-console/internal/core/table"
)

var (
	myAttendanceGrid = table.New([]table.Column[domain.AttendanceRecord]{
		{Key: "date", Header: "Date", Sortable: true, Accessor: func(a domain.AttendanceRecord) any { return a.Date }},
		{Key: "checkin", Header: "Check in", Accessor: func(a domain.AttendanceRecord) any { return a.CheckIn }},
		{Key: "checkout", Header: "Check out", Accessor: func(a domain.AttendanceRecord) any { return a.CheckOut }},
		{Key: "status", Header: "Status", Sortable: true, Accessor: func(a domain.AttendanceRecord) any { return a.Status }},
	}, table.WithoutSearch[domain.AttendanceRecord]())

	myPayrollGrid = table.New([]table.Column[domain.PayrollRecord]{
		{Key: "period", Header: "Period", Sortable: true, Accessor: func(p domain.PayrollRecord) any { return p.Year*100 + p.Month },
			Render: func(p domain.PayrollRecord) string { return payrollPeriod(p) }},
		{Key: "basic", Header: "Basic", Accessor: func(p domain.PayrollRecord) any { return p.BasicSalary }},
		{Key: "allowances", Header: "Allowances", Accessor: func(p domain.PayrollRecord) any { return p.Allowances }},
		{Key: "deductions", Header: "Deductions", Accessor: func(p domain.PayrollRecord) any { return p.Deductions }},
		{Key: "net", Header: "Net", Sortable: true, Accessor: func(p domain.PayrollRecord) any { return p.NetSalary }},
		{Key: "status", Header: "Status", Sortable: true, Accessor: func(p domain.PayrollRecord) any { return p.Status }},
	}, table.WithoutSearch[domain.PayrollRecord]())
)

func payrollPeriod(p domain.PayrollRecord) string {
	if p.Month < 1 || p.Month > 12 {
		return "-"
	}
	return time.Month(p.Month).String() + " " + strconv.Itoa(p.Year)
}

// EmployeeDashboard shows the caller's own staff record.
func (ui *UI) EmployeeDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	emp, err := ui.backend.EmployeeProfile(ctx, sessionFrom(c).Token)
	toast, herr := ui.fetchToast(c, err, "your profile")
	if herr != nil {
		return herr
	}
	data := map[string]any{
		"Title":    "My Profile",
		"Employee": emp,
	}
	if toast != nil {
		data["Toast"] = toast
	}
	return ui.render(c, http.StatusOK, "employee_dashboard", data)
}

// EmployeeTasks lists production tasks assigned to the caller.
func (ui *UI) EmployeeTasks(c echo.Context) error {
	ctx := c.Request().Context()
	token := sessionFrom(c).Token

	tasks, err := ui.backend.ListProduction(ctx, token)
	toast, herr := ui.fetchToast(c, err, "your tasks")
	if herr != nil {
		return herr
	}
	// The backend returns the full task list; only the caller's slice is
	// shown here.
	mine := tasks[:0:0]
	if emp, perr := ui.backend.EmployeeProfile(ctx, token); perr == nil && emp != nil {
		for _, t := range tasks {
			if t.AssignedTo != nil && t.AssignedTo.ID == emp.ID {
				mine = append(mine, t)
			}
		}
	}
	data := map[string]any{
		"Title":        "My Tasks",
		"Tasks":        mine,
		"TaskStatuses": productionStatuses,
	}
	if toast != nil {
		data["Toast"] = toast
	}
	return ui.render(c, http.StatusOK, "employee_tasks", data)
}

// EmployeeTaskStatus moves one of the caller's tasks between stages.
func (ui *UI) EmployeeTaskStatus(c echo.Context) error {
	status := c.FormValue("status")
	if !validStatus(status, productionStatuses) {
		ui.flash(c, "error", "Unknown task status")
		return c.Redirect(http.StatusSeeOther, "/employee/tasks")
	}
	err := ui.backend.UpdateProductionStatus(c.Request().Context(), sessionFrom(c).Token, c.Param("id"), status)
	return ui.writeOutcome(c, err, "/employee/tasks", "Task status updated")
}

func validStatus(s string, allowed []string) bool {
	for _, a := range allowed {
		if a == s {
			return true
		}
	}
	return false
}

// EmployeeAttendance shows the caller's own attendance history.
func (ui *UI) EmployeeAttendance(c echo.Context) error {
	ctx := c.Request().Context()
	token := sessionFrom(c).Token

	emp, err := ui.backend.EmployeeProfile(ctx, token)
	toast, herr := ui.fetchToast(c, err, "your profile")
	if herr != nil {
		return herr
	}
	var records []domain.AttendanceRecord
	if emp != nil {
		records, err = ui.backend.ListEmployeeAttendance(ctx, token, emp.ID)
		if toast == nil {
			toast, herr = ui.fetchToast(c, err, "your attendance")
			if herr != nil {
				return herr
			}
		}
	}
	data := map[string]any{
		"Title": "My Attendance",
		"Grid": grid{
			View:      myAttendanceGrid.Compute(records, tableState(c)),
			BasePath:  "/employee/attendance",
			EmptyText: "No attendance recorded yet",
		},
	}
	if toast != nil {
		data["Toast"] = toast
	}
	return ui.render(c, http.StatusOK, "employee_attendance", data)
}

// EmployeePayroll shows the caller's payroll history. The backend scopes
// the list to the caller for the Employee role.
func (ui *UI) EmployeePayroll(c echo.Context) error {
	records, err := ui.backend.ListPayroll(c.Request().Context(), sessionFrom(c).Token)
	toast, herr := ui.fetchToast(c, err, "your payroll")
	if herr != nil {
		return herr
	}
	data := map[string]any{
		"Title": "My Payroll",
		"Grid": grid{
			View:      myPayrollGrid.Compute(records, tableState(c)),
			BasePath:  "/employee/payroll",
			EmptyText: "No payroll records yet",
		},
	}
	if toast != nil {
		data["Toast"] = toast
	}
	return ui.render(c, http.StatusOK, "employee_payroll", data)
}
