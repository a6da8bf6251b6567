package backend

import (
	"context"
	"net/url"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
)

// sessionPayload is what the auth endpoints return: the profile plus, on
// login and register, the freshly issued bearer token.
type sessionPayload struct {
	domain.Session
	Token string `json:"token"`
}

func (p *sessionPayload) session() *domain.Session {
	s := p.Session
	s.Token = p.Token
	return &s
}

// Login exchanges credentials for a session and bearer token. The endpoint
// is the plain /auth/login contract; no deployment-bypass query parameters.
func (c *Client) Login(ctx context.Context, in domain.LoginInput) (*domain.Session, error) {
	var p sessionPayload
	if err := c.post(ctx, "/auth/login", "", in, &p); err != nil {
		return nil, err
	}
	return p.session(), nil
}

// Register creates an account and returns the session and token for it.
func (c *Client) Register(ctx context.Context, in domain.RegisterInput) (*domain.Session, error) {
	var p sessionPayload
	if err := c.post(ctx, "/auth/register", "", in, &p); err != nil {
		return nil, err
	}
	return p.session(), nil
}

// Logout tells the backend to retire the token.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.post(ctx, "/auth/logout", token, nil, nil)
}

// Profile resolves the session behind a stored credential.
func (c *Client) Profile(ctx context.Context, token string) (*domain.Session, error) {
	var p sessionPayload
	if err := c.get(ctx, "/auth/profile", token, &p); err != nil {
		return nil, err
	}
	sess := p.session()
	sess.Token = token
	return sess, nil
}

func (c *Client) ListEmployees(ctx context.Context, token string) ([]domain.Employee, error) {
	var out []domain.Employee
	err := c.get(ctx, "/employees", token, &out)
	return out, err
}

// EmployeeProfile returns the employee record owned by the calling token.
func (c *Client) EmployeeProfile(ctx context.Context, token string) (*domain.Employee, error) {
	var out domain.Employee
	if err := c.get(ctx, "/employees/profile", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, token string, in domain.EmployeeInput) error {
	return c.post(ctx, "/employees", token, in, nil)
}

func (c *Client) UpdateEmployee(ctx context.Context, token, id string, in domain.EmployeeInput) error {
	return c.put(ctx, "/employees/"+id, token, in)
}

func (c *Client) DeleteEmployee(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/employees/"+id, token)
}

func (c *Client) ListDepartments(ctx context.Context, token string) ([]domain.Department, error) {
	var out []domain.Department
	err := c.get(ctx, "/departments", token, &out)
	return out, err
}

func (c *Client) CreateDepartment(ctx context.Context, token string, in domain.DepartmentInput) error {
	return c.post(ctx, "/departments", token, in, nil)
}

func (c *Client) UpdateDepartment(ctx context.Context, token, id string, in domain.DepartmentInput) error {
	return c.put(ctx, "/departments/"+id, token, in)
}

func (c *Client) DeleteDepartment(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/departments/"+id, token)
}

func (c *Client) ListProjects(ctx context.Context, token string) ([]domain.Project, error) {
	var out []domain.Project
	err := c.get(ctx, "/projects", token, &out)
	return out, err
}

func (c *Client) ListClientProjects(ctx context.Context, token, clientID string) ([]domain.Project, error) {
	var out []domain.Project
	err := c.get(ctx, "/projects?client="+url.QueryEscape(clientID), token, &out)
	return out, err
}

func (c *Client) CreateProject(ctx context.Context, token string, in domain.ProjectInput) error {
	return c.post(ctx, "/projects", token, in, nil)
}

func (c *Client) UpdateProject(ctx context.Context, token, id string, in domain.ProjectInput) error {
	return c.put(ctx, "/projects/"+id, token, in)
}

func (c *Client) DeleteProject(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/projects/"+id, token)
}

func (c *Client) ListAttendance(ctx context.Context, token string) ([]domain.AttendanceRecord, error) {
	var out []domain.AttendanceRecord
	err := c.get(ctx, "/attendance", token, &out)
	return out, err
}

func (c *Client) ListEmployeeAttendance(ctx context.Context, token, employeeID string) ([]domain.AttendanceRecord, error) {
	var out []domain.AttendanceRecord
	err := c.get(ctx, "/attendance/employee/"+employeeID, token, &out)
	return out, err
}

func (c *Client) CreateAttendance(ctx context.Context, token string, in domain.AttendanceInput) error {
	return c.post(ctx, "/attendance", token, in, nil)
}

func (c *Client) UpdateAttendance(ctx context.Context, token, id string, in domain.AttendanceInput) error {
	return c.put(ctx, "/attendance/"+id, token, in)
}

func (c *Client) DeleteAttendance(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/attendance/"+id, token)
}

func (c *Client) ListPayroll(ctx context.Context, token string) ([]domain.PayrollRecord, error) {
	var out []domain.PayrollRecord
	err := c.get(ctx, "/payroll", token, &out)
	return out, err
}

func (c *Client) CreatePayroll(ctx context.Context, token string, in domain.PayrollInput) error {
	return c.post(ctx, "/payroll", token, in, nil)
}

func (c *Client) UpdatePayroll(ctx context.Context, token, id string, in domain.PayrollInput) error {
	return c.put(ctx, "/payroll/"+id, token, in)
}

func (c *Client) DeletePayroll(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/payroll/"+id, token)
}

func (c *Client) ListProduction(ctx context.Context, token string) ([]domain.ProductionTask, error) {
	var out []domain.ProductionTask
	err := c.get(ctx, "/production", token, &out)
	return out, err
}

func (c *Client) CreateProduction(ctx context.Context, token string, in domain.ProductionInput) error {
	return c.post(ctx, "/production", token, in, nil)
}

func (c *Client) UpdateProduction(ctx context.Context, token, id string, in domain.ProductionInput) error {
	return c.put(ctx, "/production/"+id, token, in)
}

func (c *Client) UpdateProductionStatus(ctx context.Context, token, id, status string) error {
	return c.put(ctx, "/production/"+id, token, map[string]string{"status": status})
}

func (c *Client) DeleteProduction(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/production/"+id, token)
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var out []domain.Order
	err := c.get(ctx, "/orders", token, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, token string, in domain.OrderInput) error {
	return c.post(ctx, "/orders", token, in, nil)
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, id string, in domain.OrderStatusInput) error {
	return c.put(ctx, "/orders/"+id, token, in)
}

func (c *Client) ListAwards(ctx context.Context, token string) ([]domain.Award, error) {
	var out []domain.Award
	err := c.get(ctx, "/awards", token, &out)
	return out, err
}

func (c *Client) CreateAward(ctx context.Context, token string, in domain.AwardInput) error {
	return c.post(ctx, "/awards", token, in, nil)
}

func (c *Client) UpdateAward(ctx context.Context, token, id string, in domain.AwardInput) error {
	return c.put(ctx, "/awards/"+id, token, in)
}

func (c *Client) DeleteAward(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/awards/"+id, token)
}

func (c *Client) ListEnquiries(ctx context.Context, token string) ([]domain.Enquiry, error) {
	var out []domain.Enquiry
	err := c.get(ctx, "/enquiries", token, &out)
	return out, err
}

func (c *Client) CreateEnquiry(ctx context.Context, token string, in domain.EnquiryInput) error {
	return c.post(ctx, "/enquiries", token, in, nil)
}

func (c *Client) DeleteEnquiry(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/enquiries/"+id, token)
}
