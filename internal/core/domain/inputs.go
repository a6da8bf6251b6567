package domain

// Form payloads posted back to the ERP. Validation tags are enforced in the
// UI layer before any network call happens, so a payload that reaches the
// backend client is already structurally sound.

type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type RegisterInput struct {
	Username string `json:"username" form:"username" validate:"required,min=3"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
	Role     string `json:"role" form:"role" validate:"required,oneof=Admin Employee Client"`
}

type EmployeeInput struct {
	Username      string  `json:"username" form:"username" validate:"required"`
	Email         string  `json:"email" form:"email" validate:"required,email"`
	Password      string  `json:"password,omitempty" form:"password"`
	Department    string  `json:"department" form:"department" validate:"required"`
	Designation   string  `json:"designation" form:"designation" validate:"required"`
	Salary        float64 `json:"salary" form:"salary" validate:"gte=0"`
	DateOfJoining string  `json:"dateOfJoining" form:"dateOfJoining"`
	Phone         string  `json:"phone" form:"phone"`
	Address       string  `json:"address" form:"address"`
}

type DepartmentInput struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description"`
}

type ProjectInput struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description"`
	Client      string `json:"client,omitempty" form:"client"`
	StartDate   string `json:"startDate" form:"startDate"`
	EndDate     string `json:"endDate" form:"endDate"`
	Status      string `json:"status" form:"status"`
	Progress    int    `json:"progress" form:"progress" validate:"gte=0,lte=100"`
}

type AttendanceInput struct {
	Employee string `json:"employee" form:"employee" validate:"required"`
	Date     string `json:"date" form:"date" validate:"required"`
	CheckIn  string `json:"checkIn" form:"checkIn"`
	CheckOut string `json:"checkOut" form:"checkOut"`
	Status   string `json:"status" form:"status" validate:"required"`
}

type PayrollInput struct {
	Employee    string  `json:"employee" form:"employee" validate:"required"`
	Month       int     `json:"month" form:"month" validate:"min=1,max=12"`
	Year        int     `json:"year" form:"year" validate:"min=2000"`
	BasicSalary float64 `json:"basicSalary" form:"basicSalary" validate:"gte=0"`
	Allowances  float64 `json:"allowances" form:"allowances" validate:"gte=0"`
	Deductions  float64 `json:"deductions" form:"deductions" validate:"gte=0"`
	Status      string  `json:"status" form:"status"`
}

type ProductionInput struct {
	TaskName    string `json:"taskName" form:"taskName" validate:"required"`
	Description string `json:"description" form:"description"`
	AssignedTo  string `json:"assignedTo,omitempty" form:"assignedTo"`
	Deadline    string `json:"deadline" form:"deadline"`
	Quantity    int    `json:"quantity" form:"quantity" validate:"gte=0"`
	Status      string `json:"status" form:"status"`
}

type OrderInput struct {
	ProductName  string  `json:"productName" form:"productName" validate:"required"`
	Quantity     int     `json:"quantity" form:"quantity" validate:"gt=0"`
	TotalAmount  float64 `json:"totalAmount" form:"totalAmount" validate:"gte=0"`
	DeliveryDate string  `json:"deliveryDate" form:"deliveryDate"`
}

type OrderStatusInput struct {
	Status       OrderStatus `json:"status" form:"status" validate:"required"`
	DeliveryDate string      `json:"deliveryDate,omitempty" form:"deliveryDate"`
}

type AwardInput struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description"`
	Date        string `json:"date" form:"date"`
}

type EnquiryInput struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Subject string `json:"subject" form:"subject" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
}
