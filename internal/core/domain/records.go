package domain

import "time"

// The record types below mirror the JSON the ERP backend returns. The
// backend nests owning users and departments as sub-documents, so lists can
// be rendered without extra lookups. All records are read by the console and
// written back only through the backend's own CRUD endpoints; the console
// never mutates a fetched record in place.

// UserRef is the embedded account sub-document on employee and client records.
type UserRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// DepartmentRef is the embedded department sub-document.
type DepartmentRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Employee is a staff record.
type Employee struct {
	ID            string         `json:"_id"`
	User          *UserRef       `json:"user,omitempty"`
	Department    *DepartmentRef `json:"department,omitempty"`
	Designation   string         `json:"designation"`
	Salary        float64        `json:"salary"`
	DateOfJoining time.Time      `json:"dateOfJoining"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	IsActive      bool           `json:"isActive"`
}

// Department groups employees under a named unit.
type Department struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Project is a production project, optionally tied to a client.
type Project struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Client      *UserRef  `json:"client,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
}

// AttendanceRecord is one employee-day of attendance.
type AttendanceRecord struct {
	ID       string    `json:"_id"`
	Employee *Employee `json:"employee,omitempty"`
	Date     time.Time `json:"date"`
	CheckIn  string    `json:"checkIn"`
	CheckOut string    `json:"checkOut"`
	Status   string    `json:"status"`
}

// PayrollRecord is one employee-month of payroll.
type PayrollRecord struct {
	ID          string    `json:"_id"`
	Employee    *Employee `json:"employee,omitempty"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	BasicSalary float64   `json:"basicSalary"`
	Allowances  float64   `json:"allowances"`
	Deductions  float64   `json:"deductions"`
	NetSalary   float64   `json:"netSalary"`
	Status      string    `json:"status"`
}

// ProductionTask is a unit of factory work assignable to an employee.
type ProductionTask struct {
	ID          string    `json:"_id"`
	TaskName    string    `json:"taskName"`
	Description string    `json:"description"`
	AssignedTo  *Employee `json:"assignedTo,omitempty"`
	Deadline    time.Time `json:"deadline"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
}

// OrderStatus is the lifecycle state of a client order.
type OrderStatus string

const (
	OrderPending      OrderStatus = "Pending"
	OrderInProduction OrderStatus = "In Production"
	OrderShipped      OrderStatus = "Shipped"
	OrderDelivered    OrderStatus = "Delivered"
	OrderCancelled    OrderStatus = "Cancelled"
)

// OrderStatuses lists every state an admin may set, in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderPending, OrderInProduction, OrderShipped, OrderDelivered, OrderCancelled,
}

// Order is a client purchase order.
type Order struct {
	ID           string      `json:"_id"`
	OrderNumber  string      `json:"orderNumber"`
	Client       *ClientRef  `json:"client,omitempty"`
	ProductName  string      `json:"productName"`
	Quantity     int         `json:"quantity"`
	TotalAmount  float64     `json:"totalAmount"`
	Status       OrderStatus `json:"status"`
	DeliveryDate time.Time   `json:"deliveryDate"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// ClientRef is the embedded client sub-document on orders.
type ClientRef struct {
	ID   string   `json:"_id"`
	User *UserRef `json:"user,omitempty"`
}

// Award is a public-facing company award entry.
type Award struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// Enquiry is a message submitted by a client or visitor.
type Enquiry struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
