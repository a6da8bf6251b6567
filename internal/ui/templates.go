package ui

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

// grid is the payload the shared table component consumes. View is a
// table.View of any record type; the component reads it reflectively.
type grid struct {
	View       any
	BasePath   string
	EditPath   string
	DeletePath string
	EmptyText  string
}

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02")
	},
	"formatDateTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04")
	},
	"dateValue": func(t time.Time) string {
		// Value attribute for <input type="date">.
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"money": func(v float64) string {
		return fmt.Sprintf("₹%.2f", v)
	},
	"monthName": func(m int) string {
		if m < 1 || m > 12 {
			return "-"
		}
		return time.Month(m).String()
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	"statusBadge": func(status string) string {
		switch strings.ToLower(status) {
		case "pending", "planning":
			return "bg-yellow-100 text-yellow-800"
		case "in production", "in progress", "processing":
			return "bg-blue-100 text-blue-800"
		case "shipped":
			return "bg-indigo-100 text-indigo-800"
		case "delivered", "completed", "paid", "present", "resolved", "active":
			return "bg-green-100 text-green-800"
		case "cancelled", "absent", "failed":
			return "bg-red-100 text-red-800"
		case "on leave", "half day", "on hold":
			return "bg-orange-100 text-orange-800"
		default:
			return "bg-gray-100 text-gray-800"
		}
	},
	// sortLink builds the header link for one column. Clicking the active
	// column flips the direction; the page parameter is always dropped.
	"sortLink": func(base, query, key string, active, desc bool) string {
		v := url.Values{}
		if query != "" {
			v.Set("q", query)
		}
		v.Set("sort", key)
		if active && !desc {
			v.Set("dir", "desc")
		} else {
			v.Set("dir", "asc")
		}
		return base + "?" + v.Encode()
	},
	// pageLink builds a pagination link preserving search and sort state.
	"pageLink": func(base, query, sortKey string, desc bool, page int) string {
		v := url.Values{}
		if query != "" {
			v.Set("q", query)
		}
		if sortKey != "" {
			v.Set("sort", sortKey)
			if desc {
				v.Set("dir", "desc")
			} else {
				v.Set("dir", "asc")
			}
		}
		v.Set("page", fmt.Sprint(page))
		return base + "?" + v.Encode()
	},
}

// renderTemplate composes the named page into the layout along with the
// shared components.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}
	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	if _, err = tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}
	for compName, compContent := range templates {
		if strings.HasPrefix(compName, "components/") {
			if _, err = tmpl.New(filepath.Base(compName)).Parse(compContent); err != nil {
				return fmt.Errorf("parse component %s: %w", compName, err)
			}
		}
	}
	return tmpl.Execute(w, data)
}

// templates holds all page and component content, keyed by name.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} · ALC Textiles</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 min-h-screen flex flex-col">
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex">
                    <a href="/" class="flex items-center px-2 text-xl font-bold text-indigo-600">ALC Textiles</a>
                    <div class="hidden sm:ml-6 sm:flex sm:space-x-6">
                        {{if not .Session}}
                        <a href="/" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Home</a>
                        <a href="/about" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">About</a>
                        <a href="/departments" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Departments</a>
                        {{else if .Session.HasRole "Admin"}}
                        <a href="/admin" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Dashboard</a>
                        <a href="/admin/employees" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Employees</a>
                        <a href="/admin/departments" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Departments</a>
                        <a href="/admin/projects" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Projects</a>
                        <a href="/admin/attendance" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Attendance</a>
                        <a href="/admin/payroll" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Payroll</a>
                        <a href="/admin/production" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Production</a>
                        <a href="/admin/orders" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Orders</a>
                        <a href="/admin/awards" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Awards</a>
                        <a href="/admin/enquiries" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Enquiries</a>
                        {{else if .Session.HasRole "Employee"}}
                        <a href="/employee" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Dashboard</a>
                        <a href="/employee/tasks" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">My Tasks</a>
                        <a href="/employee/attendance" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Attendance</a>
                        <a href="/employee/payroll" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Payroll</a>
                        {{else if .Session.HasRole "Client"}}
                        <a href="/client" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Dashboard</a>
                        <a href="/client/projects" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Projects</a>
                        <a href="/client/orders" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">My Orders</a>
                        <a href="/client/orders/new" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Place Order</a>
                        <a href="/client/enquiry" class="inline-flex items-center px-1 pt-1 text-sm font-medium text-gray-500 hover:text-gray-700">Enquiry</a>
                        {{end}}
                    </div>
                </div>
                <div class="flex items-center space-x-4">
                    {{if .Session}}
                    <span class="text-sm text-gray-500">{{.Session.Username}} · {{.Session.Role}}</span>
                    <a href="/logout" class="text-sm text-gray-500 hover:text-gray-700">Logout</a>
                    {{else}}
                    <a href="/login" class="text-sm text-gray-500 hover:text-gray-700">Login</a>
                    <a href="/register" class="text-sm font-medium text-indigo-600 hover:text-indigo-700">Register</a>
                    {{end}}
                </div>
            </div>
        </div>
    </nav>

    {{with .Toast}}
    <div class="max-w-7xl mx-auto w-full px-4 sm:px-6 lg:px-8 mt-4">
        {{if eq .Kind "error"}}
        <div class="rounded-md bg-red-50 border border-red-200 p-4 text-sm text-red-700">{{.Message}}</div>
        {{else}}
        <div class="rounded-md bg-green-50 border border-green-200 p-4 text-sm text-green-700">{{.Message}}</div>
        {{end}}
    </div>
    {{end}}

    <main class="max-w-7xl mx-auto w-full py-6 px-4 sm:px-6 lg:px-8 flex-1">
        {{template "content" .}}
    </main>

    <footer class="border-t bg-white py-4 text-center text-xs text-gray-400">
        ALC Textiles · Manufacturing Administration Console
    </footer>
</body>
</html>`,

	// Shared grid: search box, sortable headers, rows, pagination. Expects a
	// grid payload.
	"components/table": `<div class="bg-white shadow rounded-lg overflow-hidden">
    {{if .View.Searchable}}
    <div class="px-4 py-3 border-b bg-gray-50">
        <form method="GET" action="{{.BasePath}}" class="flex items-center space-x-2">
            <input type="text" name="q" value="{{.View.Query}}" placeholder="Search..."
                   class="block w-64 rounded-md border border-gray-300 px-3 py-1.5 text-sm focus:border-indigo-500 focus:ring-indigo-500">
            {{if .View.SortKey}}
            <input type="hidden" name="sort" value="{{.View.SortKey}}">
            <input type="hidden" name="dir" value="{{if .View.Desc}}desc{{else}}asc{{end}}">
            {{end}}
            <button type="submit" class="rounded-md bg-indigo-600 px-3 py-1.5 text-sm font-medium text-white hover:bg-indigo-700">Search</button>
        </form>
    </div>
    {{end}}
    <table class="min-w-full divide-y divide-gray-200">
        <thead class="bg-gray-50">
            <tr>
                {{range .View.Headers}}
                <th class="px-4 py-3 text-left text-xs font-medium uppercase tracking-wider text-gray-500">
                    {{if .Sortable}}
                    <a href="{{sortLink $.BasePath $.View.Query .Key .Active .Desc}}" class="hover:text-gray-700">
                        {{.Label}}{{if .Active}}{{if .Desc}} ▼{{else}} ▲{{end}}{{end}}
                    </a>
                    {{else}}{{.Label}}{{end}}
                </th>
                {{end}}
                {{if or .EditPath .DeletePath}}<th class="px-4 py-3 text-right text-xs font-medium uppercase tracking-wider text-gray-500">Actions</th>{{end}}
            </tr>
        </thead>
        <tbody class="divide-y divide-gray-200">
            {{if .View.Empty}}
            <tr><td colspan="100" class="px-4 py-8 text-center text-sm text-gray-500">{{if .EmptyText}}{{.EmptyText}}{{else}}No records found{{end}}</td></tr>
            {{else}}
            {{range .View.Rows}}
            <tr class="hover:bg-gray-50">
                {{range .Cells}}<td class="px-4 py-3 text-sm text-gray-700">{{.}}</td>{{end}}
                {{if or $.EditPath $.DeletePath}}
                <td class="px-4 py-3 text-right text-sm whitespace-nowrap">
                    {{if $.EditPath}}<a href="{{$.EditPath}}/{{.Record.ID}}/edit" class="text-indigo-600 hover:text-indigo-800 mr-3">Edit</a>{{end}}
                    {{if $.DeletePath}}
                    <form method="POST" action="{{$.DeletePath}}/{{.Record.ID}}/delete" class="inline" onsubmit="return confirm('Delete this record?')">
                        <button type="submit" class="text-red-600 hover:text-red-800">Delete</button>
                    </form>
                    {{end}}
                </td>
                {{end}}
            </tr>
            {{end}}
            {{end}}
        </tbody>
    </table>
    <div class="flex items-center justify-between border-t px-4 py-3 text-sm text-gray-500">
        <div>
            {{if .View.Empty}}Showing 0 of 0{{else}}Showing {{.View.Start}}–{{.View.End}} of {{.View.Total}}{{end}}
        </div>
        <div class="space-x-2">
            {{if .View.HasPrev}}
            <a href="{{pageLink .BasePath .View.Query .View.SortKey .View.Desc (sub .View.Page 1)}}" class="rounded border px-3 py-1 hover:bg-gray-50">Previous</a>
            {{else}}
            <span class="rounded border px-3 py-1 text-gray-300">Previous</span>
            {{end}}
            <span>Page {{.View.Page}} of {{.View.TotalPages}}</span>
            {{if .View.HasNext}}
            <a href="{{pageLink .BasePath .View.Query .View.SortKey .View.Desc (add .View.Page 1)}}" class="rounded border px-3 py-1 hover:bg-gray-50">Next</a>
            {{else}}
            <span class="rounded border px-3 py-1 text-gray-300">Next</span>
            {{end}}
        </div>
    </div>
</div>`,

	"pending": `{{define "content"}}
<div class="flex items-center justify-center py-24">
    <div class="text-center">
        <div class="mx-auto h-10 w-10 animate-spin rounded-full border-4 border-indigo-200 border-t-indigo-600"></div>
        <p class="mt-4 text-sm text-gray-500">Loading...</p>
    </div>
</div>
{{end}}`,

	"unauthorized": `{{define "content"}}
<div class="mx-auto max-w-md py-24 text-center">
    <h1 class="text-3xl font-bold text-gray-900">Access denied</h1>
    <p class="mt-3 text-sm text-gray-500">Your account does not have permission to view this page.</p>
    <a href="{{if .Session}}{{.Session.Role.DashboardPath}}{{else}}/{{end}}" class="mt-6 inline-block rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700">Go to your dashboard</a>
</div>
{{end}}`,

	"login": `{{define "content"}}
<div class="mx-auto max-w-md py-12">
    <h1 class="text-center text-3xl font-extrabold text-gray-900">Sign in</h1>
    <p class="mt-2 text-center text-sm text-gray-600">ALC Textiles administration console</p>
    {{if .Error}}
    <div class="mt-6 rounded-md bg-red-50 border border-red-200 p-4 text-sm text-red-700">{{.Error}}</div>
    {{end}}
    <form class="mt-8 space-y-4 bg-white p-6 shadow rounded-lg" method="POST" action="/login">
        {{if .ReturnTo}}<input type="hidden" name="returnTo" value="{{.ReturnTo}}">{{end}}
        <div>
            <label for="email" class="block text-sm font-medium text-gray-700">Email</label>
            <input id="email" name="email" type="email" required value="{{.Email}}"
                   class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm focus:border-indigo-500 focus:ring-indigo-500">
        </div>
        <div>
            <label for="password" class="block text-sm font-medium text-gray-700">Password</label>
            <input id="password" name="password" type="password" required
                   class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm focus:border-indigo-500 focus:ring-indigo-500">
        </div>
        <button type="submit" class="w-full rounded-md bg-indigo-600 py-2 text-sm font-medium text-white hover:bg-indigo-700">Sign in</button>
        <p class="text-center text-sm text-gray-500">No account? <a href="/register" class="text-indigo-600 hover:text-indigo-700">Register</a></p>
    </form>
</div>
{{end}}`,

	"register": `{{define "content"}}
<div class="mx-auto max-w-md py-12">
    <h1 class="text-center text-3xl font-extrabold text-gray-900">Create account</h1>
    {{if .Error}}
    <div class="mt-6 rounded-md bg-red-50 border border-red-200 p-4 text-sm text-red-700">{{.Error}}</div>
    {{end}}
    <form class="mt-8 space-y-4 bg-white p-6 shadow rounded-lg" method="POST" action="/register">
        <div>
            <label for="username" class="block text-sm font-medium text-gray-700">Username</label>
            <input id="username" name="username" type="text" required value="{{.Username}}"
                   class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm focus:border-indigo-500 focus:ring-indigo-500">
        </div>
        <div>
            <label for="email" class="block text-sm font-medium text-gray-700">Email</label>
            <input id="email" name="email" type="email" required value="{{.Email}}"
                   class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm focus:border-indigo-500 focus:ring-indigo-500">
        </div>
        <div>
            <label for="password" class="block text-sm font-medium text-gray-700">Password</label>
            <input id="password" name="password" type="password" required minlength="6"
                   class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm focus:border-indigo-500 focus:ring-indigo-500">
        </div>
        <div>
            <label for="role" class="block text-sm font-medium text-gray-700">Role</label>
            <select id="role" name="role" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
                <option value="Client" {{if eq .RoleValue "Client"}}selected{{end}}>Client</option>
                <option value="Employee" {{if eq .RoleValue "Employee"}}selected{{end}}>Employee</option>
            </select>
        </div>
        <button type="submit" class="w-full rounded-md bg-indigo-600 py-2 text-sm font-medium text-white hover:bg-indigo-700">Register</button>
        <p class="text-center text-sm text-gray-500">Already registered? <a href="/login" class="text-indigo-600 hover:text-indigo-700">Sign in</a></p>
    </form>
</div>
{{end}}`,

	"home": `{{define "content"}}
<div class="py-12 text-center">
    <h1 class="text-4xl font-extrabold text-gray-900">ALC Textiles</h1>
    <p class="mx-auto mt-4 max-w-2xl text-lg text-gray-500">
        Manufacturing excellence in textiles. Track production, manage your workforce
        and serve clients from a single console.
    </p>
    <div class="mt-8 space-x-4">
        <a href="/login" class="rounded-md bg-indigo-600 px-5 py-2.5 text-sm font-medium text-white hover:bg-indigo-700">Sign in</a>
        <a href="/about" class="rounded-md border border-gray-300 px-5 py-2.5 text-sm font-medium text-gray-700 hover:bg-gray-50">Learn more</a>
    </div>
</div>
{{if .Awards}}
<div class="mt-8">
    <h2 class="text-xl font-semibold text-gray-900">Awards &amp; Recognition</h2>
    <div class="mt-4 grid gap-4 sm:grid-cols-2 lg:grid-cols-3">
        {{range .Awards}}
        <div class="bg-white p-5 shadow rounded-lg">
            <h3 class="font-medium text-gray-900">{{.Title}}</h3>
            <p class="mt-1 text-sm text-gray-500">{{.Description}}</p>
            <p class="mt-2 text-xs text-gray-400">{{formatDate .Date}}</p>
        </div>
        {{end}}
    </div>
</div>
{{end}}
{{end}}`,

	"about": `{{define "content"}}
<div class="mx-auto max-w-3xl py-8">
    <h1 class="text-3xl font-bold text-gray-900">About ALC Textiles</h1>
    <div class="mt-6 space-y-4 text-gray-600">
        <p>ALC Textiles is a full-service textile manufacturer producing woven and
        knitted fabrics for domestic and export markets. Our integrated facility
        covers spinning, weaving, dyeing and finishing under one roof.</p>
        <p>This console gives our administrators, employees and clients a single
        place to manage production, people and orders.</p>
    </div>
</div>
{{end}}`,

	"departments_public": `{{define "content"}}
<div class="py-8">
    <h1 class="text-3xl font-bold text-gray-900">Our Departments</h1>
    <div class="mt-6 grid gap-4 sm:grid-cols-2 lg:grid-cols-3">
        {{range .Departments}}
        <div class="bg-white p-5 shadow rounded-lg">
            <h3 class="font-medium text-gray-900">{{.Name}}</h3>
            <p class="mt-1 text-sm text-gray-500">{{.Description}}</p>
        </div>
        {{else}}
        <p class="text-sm text-gray-500">No departments to show.</p>
        {{end}}
    </div>
</div>
{{end}}`,

	"admin_dashboard": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">Admin Dashboard</h1>
<p class="mt-1 text-sm text-gray-500">Welcome back, {{.Session.Username}}</p>
<div class="mt-6 grid grid-cols-1 gap-5 sm:grid-cols-2 lg:grid-cols-4">
    {{range .Stats}}
    <a href="{{.Link}}" class="block bg-white p-5 shadow rounded-lg hover:shadow-md">
        <p class="text-sm font-medium text-gray-500">{{.Label}}</p>
        <p class="mt-1 text-2xl font-semibold text-gray-900">{{.Count}}</p>
    </a>
    {{end}}
</div>
{{end}}`,

	"admin_list": `{{define "content"}}
<div class="flex items-center justify-between">
    <h1 class="text-2xl font-semibold text-gray-900">{{.Title}}</h1>
    {{if .NewPath}}
    <a href="{{.NewPath}}" class="rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700">{{.NewLabel}}</a>
    {{end}}
</div>
<div class="mt-6">
    {{template "table" .Grid}}
</div>
{{end}}`,

	"employee_form": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">{{.Title}}</h1>
{{if .Error}}<div class="mt-4 rounded-md bg-red-50 border border-red-200 p-4 text-sm text-red-700">{{.Error}}</div>{{end}}
<form class="mt-6 max-w-xl space-y-4 bg-white p-6 shadow rounded-lg" method="POST" action="{{.Action}}">
    {{if .IsNew}}
    <div>
        <label class="block text-sm font-medium text-gray-700">Username</label>
        <input name="username" type="text" required value="{{.Form.Username}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Email</label>
        <input name="email" type="email" required value="{{.Form.Email}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Password</label>
        <input name="password" type="password" required minlength="6" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    {{end}}
    <div>
        <label class="block text-sm font-medium text-gray-700">Department</label>
        <select name="department" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
            <option value="">— none —</option>
            {{range .Departments}}
            <option value="{{.ID}}" {{if eq .ID $.Form.Department}}selected{{end}}>{{.Name}}</option>
            {{end}}
        </select>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Designation</label>
        <input name="designation" type="text" required value="{{.Form.Designation}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Salary</label>
        <input name="salary" type="number" step="0.01" min="0" required value="{{.Form.Salary}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Date of joining</label>
        <input name="dateOfJoining" type="date" value="{{.Form.DateOfJoining}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Phone</label>
        <input name="phone" type="text" value="{{.Form.Phone}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Address</label>
        <input name="address" type="text" value="{{.Form.Address}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div class="flex space-x-3">
        <button type="submit" class="rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700">Save</button>
        <a href="/admin/employees" class="rounded-md border border-gray-300 px-4 py-2 text-sm font-medium text-gray-700 hover:bg-gray-50">Cancel</a>
    </div>
</form>
{{end}}`,

	"department_form": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">{{.Title}}</h1>
{{if .Error}}<div class="mt-4 rounded-md bg-red-50 border border-red-200 p-4 text-sm text-red-700">{{.Error}}</div>{{end}}
<form class="mt-6 max-w-xl space-y-4 bg-white p-6 shadow rounded-lg" method="POST" action="{{.Action}}">
    <div>
        <label class="block text-sm font-medium text-gray-700">Name</label>
        <input name="name" type="text" required value="{{.Form.Name}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Description</label>
        <textarea name="description" rows="3" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">{{.Form.Description}}</textarea>
    </div>
    <div class="flex space-x-3">
        <button type="submit" class="rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700">Save</button>
        <a href="/admin/departments" class="rounded-md border border-gray-300 px-4 py-2 text-sm font-medium text-gray-700 hover:bg-gray-50">Cancel</a>
    </div>
</form>
{{end}}`,

	"project_form": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">{{.Title}}</h1>
{{if .Error}}<div class="mt-4 rounded-md bg-red-50 border border-red-200 p-4 text-sm text-red-700">{{.Error}}</div>{{end}}
<form class="mt-6 max-w-xl space-y-4 bg-white p-6 shadow rounded-lg" method="POST" action="{{.Action}}">
    <div>
        <label class="block text-sm font-medium text-gray-700">Title</label>
        <input name="title" type="text" required value="{{.Form.Title}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Description</label>
        <textarea name="description" rows="3" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">{{.Form.Description}}</textarea>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Client ID <span class="text-gray-400">(optional)</span></label>
        <input name="client" type="text" value="{{.Form.Client}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div class="grid grid-cols-2 gap-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Start date</label>
            <input name="startDate" type="date" value="{{.Form.StartDate}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">End date</label>
            <input name="endDate" type="date" value="{{.Form.EndDate}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
        </div>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Status</label>
        <select name="status" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
            {{range .Statuses}}
            <option value="{{.}}" {{if eq . $.Form.Status}}selected{{end}}>{{.}}</option>
            {{end}}
        </select>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Progress (%)</label>
        <input name="progress" type="number" min="0" max="100" value="{{.Form.Progress}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div class="flex space-x-3">
        <button type="submit" class="rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700">Save</button>
        <a href="/admin/projects" class="rounded-md border border-gray-300 px-4 py-2 text-sm font-medium text-gray-700 hover:bg-gray-50">Cancel</a>
    </div>
</form>
{{end}}`,

	"attendance_form": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">{{.Title}}</h1>
{{if .Error}}<div class="mt-4 rounded-md bg-red-50 border border-red-200 p-4 text-sm text-red-700">{{.Error}}</div>{{end}}
<form class="mt-6 max-w-xl space-y-4 bg-white p-6 shadow rounded-lg" method="POST" action="{{.Action}}">
    <div>
        <label class="block text-sm font-medium text-gray-700">Employee</label>
        <select name="employee" required class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
            {{range .Employees}}
            <option value="{{.ID}}" {{if eq .ID $.Form.Employee}}selected{{end}}>{{if .User}}{{.User.Username}}{{else}}{{.ID}}{{end}} — {{.Designation}}</option>
            {{end}}
        </select>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Date</label>
        <input name="date" type="date" required value="{{.Form.Date}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div class="grid grid-cols-2 gap-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Check in</label>
            <input name="checkIn" type="time" value="{{.Form.CheckIn}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Check out</label>
            <input name="checkOut" type="time" value="{{.Form.CheckOut}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
        </div>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Status</label>
        <select name="status" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
            {{range .Statuses}}
            <option value="{{.}}" {{if eq . $.Form.Status}}selected{{end}}>{{.}}</option>
            {{end}}
        </select>
    </div>
    <div class="flex space-x-3">
        <button type="submit" class="rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700">Save</button>
        <a href="/admin/attendance" class="rounded-md border border-gray-300 px-4 py-2 text-sm font-medium text-gray-700 hover:bg-gray-50">Cancel</a>
    </div>
</form>
{{end}}`,

	"payroll_form": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">{{.Title}}</h1>
{{if .Error}}<div class="mt-4 rounded-md bg-red-50 border border-red-200 p-4 text-sm text-red-700">{{.Error}}</div>{{end}}
<form class="mt-6 max-w-xl space-y-4 bg-white p-6 shadow rounded-lg" method="POST" action="{{.Action}}">
    <div>
        <label class="block text-sm font-medium text-gray-700">Employee</label>
        <select name="employee" required class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
            {{range .Employees}}
            <option value="{{.ID}}" {{if eq .ID $.Form.Employee}}selected{{end}}>{{if .User}}{{.User.Username}}{{else}}{{.ID}}{{end}} — {{.Designation}}</option>
            {{end}}
        </select>
    </div>
    <div class="grid grid-cols-2 gap-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Month</label>
            <select name="month" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
                {{range .Months}}
                <option value="{{.}}" {{if eq . $.Form.Month}}selected{{end}}>{{monthName .}}</option>
                {{end}}
            </select>
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Year</label>
            <input name="year" type="number" min="2000" max="2100" required value="{{.Form.Year}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
        </div>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Basic salary</label>
        <input name="basicSalary" type="number" step="0.01" min="0" required value="{{.Form.BasicSalary}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div class="grid grid-cols-2 gap-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Allowances</label>
            <input name="allowances" type="number" step="0.01" min="0" value="{{.Form.Allowances}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Deductions</label>
            <input name="deductions" type="number" step="0.01" min="0" value="{{.Form.Deductions}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
        </div>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Status</label>
        <select name="status" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
            {{range .Statuses}}
            <option value="{{.}}" {{if eq . $.Form.Status}}selected{{end}}>{{.}}</option>
            {{end}}
        </select>
    </div>
    <div class="flex space-x-3">
        <button type="submit" class="rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700">Save</button>
        <a href="/admin/payroll" class="rounded-md border border-gray-300 px-4 py-2 text-sm font-medium text-gray-700 hover:bg-gray-50">Cancel</a>
    </div>
</form>
{{end}}`,

	"production_form": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">{{.Title}}</h1>
{{if .Error}}<div class="mt-4 rounded-md bg-red-50 border border-red-200 p-4 text-sm text-red-700">{{.Error}}</div>{{end}}
<form class="mt-6 max-w-xl space-y-4 bg-white p-6 shadow rounded-lg" method="POST" action="{{.Action}}">
    <div>
        <label class="block text-sm font-medium text-gray-700">Task name</label>
        <input name="taskName" type="text" required value="{{.Form.TaskName}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Description</label>
        <textarea name="description" rows="3" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">{{.Form.Description}}</textarea>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Assigned to</label>
        <select name="assignedTo" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
            <option value="">— unassigned —</option>
            {{range .Employees}}
            <option value="{{.ID}}" {{if eq .ID $.Form.AssignedTo}}selected{{end}}>{{if .User}}{{.User.Username}}{{else}}{{.ID}}{{end}} — {{.Designation}}</option>
            {{end}}
        </select>
    </div>
    <div class="grid grid-cols-2 gap-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Deadline</label>
            <input name="deadline" type="date" value="{{.Form.Deadline}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Quantity</label>
            <input name="quantity" type="number" min="1" required value="{{.Form.Quantity}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
        </div>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Status</label>
        <select name="status" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
            {{range .Statuses}}
            <option value="{{.}}" {{if eq . $.Form.Status}}selected{{end}}>{{.}}</option>
            {{end}}
        </select>
    </div>
    <div class="flex space-x-3">
        <button type="submit" class="rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700">Save</button>
        <a href="/admin/production" class="rounded-md border border-gray-300 px-4 py-2 text-sm font-medium text-gray-700 hover:bg-gray-50">Cancel</a>
    </div>
</form>
{{end}}`,

	"order_form": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">{{.Title}}</h1>
{{if .Error}}<div class="mt-4 rounded-md bg-red-50 border border-red-200 p-4 text-sm text-red-700">{{.Error}}</div>{{end}}
<div class="mt-6 max-w-xl bg-white p-6 shadow rounded-lg">
    <dl class="grid grid-cols-2 gap-4 text-sm">
        <div><dt class="text-gray-500">Order</dt><dd class="font-medium text-gray-900">{{.Order.OrderNumber}}</dd></div>
        <div><dt class="text-gray-500">Product</dt><dd class="font-medium text-gray-900">{{.Order.ProductName}}</dd></div>
        <div><dt class="text-gray-500">Quantity</dt><dd class="font-medium text-gray-900">{{.Order.Quantity}}</dd></div>
        <div><dt class="text-gray-500">Amount</dt><dd class="font-medium text-gray-900">{{money .Order.TotalAmount}}</dd></div>
    </dl>
    <form class="mt-6 space-y-4" method="POST" action="{{.Action}}">
        <div>
            <label class="block text-sm font-medium text-gray-700">Status</label>
            <select name="status" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
                {{range .Statuses}}
                <option value="{{.}}" {{if eq . $.Order.Status}}selected{{end}}>{{.}}</option>
                {{end}}
            </select>
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Delivery date</label>
            <input name="deliveryDate" type="date" value="{{dateValue .Order.DeliveryDate}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
        </div>
        <div class="flex space-x-3">
            <button type="submit" class="rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700">Update</button>
            <a href="/admin/orders" class="rounded-md border border-gray-300 px-4 py-2 text-sm font-medium text-gray-700 hover:bg-gray-50">Cancel</a>
        </div>
    </form>
</div>
{{end}}`,

	"award_form": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">{{.Title}}</h1>
{{if .Error}}<div class="mt-4 rounded-md bg-red-50 border border-red-200 p-4 text-sm text-red-700">{{.Error}}</div>{{end}}
<form class="mt-6 max-w-xl space-y-4 bg-white p-6 shadow rounded-lg" method="POST" action="{{.Action}}">
    <div>
        <label class="block text-sm font-medium text-gray-700">Title</label>
        <input name="title" type="text" required value="{{.Form.Title}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Description</label>
        <textarea name="description" rows="3" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">{{.Form.Description}}</textarea>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Date</label>
        <input name="date" type="date" value="{{.Form.Date}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div class="flex space-x-3">
        <button type="submit" class="rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700">Save</button>
        <a href="/admin/awards" class="rounded-md border border-gray-300 px-4 py-2 text-sm font-medium text-gray-700 hover:bg-gray-50">Cancel</a>
    </div>
</form>
{{end}}`,

	"employee_dashboard": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">My Profile</h1>
<p class="mt-1 text-sm text-gray-500">Welcome back, {{.Session.Username}}</p>
{{with .Employee}}
<div class="mt-6 max-w-2xl bg-white p-6 shadow rounded-lg">
    <dl class="grid grid-cols-2 gap-4 text-sm">
        <div><dt class="text-gray-500">Designation</dt><dd class="font-medium text-gray-900">{{.Designation}}</dd></div>
        <div><dt class="text-gray-500">Department</dt><dd class="font-medium text-gray-900">{{if .Department}}{{.Department.Name}}{{else}}-{{end}}</dd></div>
        <div><dt class="text-gray-500">Salary</dt><dd class="font-medium text-gray-900">{{money .Salary}}</dd></div>
        <div><dt class="text-gray-500">Date of joining</dt><dd class="font-medium text-gray-900">{{formatDate .DateOfJoining}}</dd></div>
        <div><dt class="text-gray-500">Phone</dt><dd class="font-medium text-gray-900">{{.Phone}}</dd></div>
        <div><dt class="text-gray-500">Address</dt><dd class="font-medium text-gray-900">{{.Address}}</dd></div>
    </dl>
</div>
{{else}}
<p class="mt-6 text-sm text-gray-500">No employee profile is linked to your account yet. Contact an administrator.</p>
{{end}}
{{end}}`,

	"employee_tasks": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">My Tasks</h1>
<div class="mt-6 bg-white shadow rounded-lg overflow-hidden">
    <table class="min-w-full divide-y divide-gray-200">
        <thead class="bg-gray-50">
            <tr>
                <th class="px-4 py-3 text-left text-xs font-medium uppercase tracking-wider text-gray-500">Task</th>
                <th class="px-4 py-3 text-left text-xs font-medium uppercase tracking-wider text-gray-500">Quantity</th>
                <th class="px-4 py-3 text-left text-xs font-medium uppercase tracking-wider text-gray-500">Deadline</th>
                <th class="px-4 py-3 text-left text-xs font-medium uppercase tracking-wider text-gray-500">Status</th>
                <th class="px-4 py-3 text-right text-xs font-medium uppercase tracking-wider text-gray-500">Update</th>
            </tr>
        </thead>
        <tbody class="divide-y divide-gray-200">
            {{range .Tasks}}
            <tr class="hover:bg-gray-50">
                <td class="px-4 py-3 text-sm text-gray-700">
                    <span class="font-medium text-gray-900">{{.TaskName}}</span>
                    {{if .Description}}<p class="text-xs text-gray-500">{{.Description}}</p>{{end}}
                </td>
                <td class="px-4 py-3 text-sm text-gray-700">{{.Quantity}}</td>
                <td class="px-4 py-3 text-sm text-gray-700">{{formatDate .Deadline}}</td>
                <td class="px-4 py-3 text-sm"><span class="rounded-full px-2 py-0.5 text-xs font-medium {{statusBadge .Status}}">{{.Status}}</span></td>
                <td class="px-4 py-3 text-right">
                    <form method="POST" action="/employee/tasks/{{.ID}}/status" class="inline-flex items-center space-x-2">
                        <select name="status" class="rounded-md border border-gray-300 px-2 py-1 text-xs">
                            {{range $.TaskStatuses}}
                            <option value="{{.}}">{{.}}</option>
                            {{end}}
                        </select>
                        <button type="submit" class="rounded-md bg-indigo-600 px-2 py-1 text-xs font-medium text-white hover:bg-indigo-700">Set</button>
                    </form>
                </td>
            </tr>
            {{else}}
            <tr><td colspan="5" class="px-4 py-8 text-center text-sm text-gray-500">No tasks assigned to you</td></tr>
            {{end}}
        </tbody>
    </table>
</div>
{{end}}`,

	"employee_attendance": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">My Attendance</h1>
<div class="mt-6">
    {{template "table" .Grid}}
</div>
{{end}}`,

	"employee_payroll": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">My Payroll</h1>
<div class="mt-6">
    {{template "table" .Grid}}
</div>
{{end}}`,

	"client_dashboard": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">Client Dashboard</h1>
<p class="mt-1 text-sm text-gray-500">Welcome back, {{.Session.Username}}</p>
<div class="mt-6 grid grid-cols-1 gap-5 sm:grid-cols-3">
    <a href="/client/projects" class="block bg-white p-5 shadow rounded-lg hover:shadow-md">
        <p class="text-sm font-medium text-gray-500">My Projects</p>
        <p class="mt-1 text-2xl font-semibold text-gray-900">{{.ProjectCount}}</p>
    </a>
    <a href="/client/orders" class="block bg-white p-5 shadow rounded-lg hover:shadow-md">
        <p class="text-sm font-medium text-gray-500">My Orders</p>
        <p class="mt-1 text-2xl font-semibold text-gray-900">{{.OrderCount}}</p>
    </a>
    <a href="/client/orders/new" class="block bg-indigo-600 p-5 shadow rounded-lg hover:bg-indigo-700">
        <p class="text-sm font-medium text-indigo-100">Place a new order</p>
        <p class="mt-1 text-2xl font-semibold text-white">+</p>
    </a>
</div>
{{end}}`,

	"client_projects": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">My Projects</h1>
<div class="mt-6 grid gap-4 sm:grid-cols-2">
    {{range .Projects}}
    <div class="bg-white p-5 shadow rounded-lg">
        <div class="flex items-center justify-between">
            <h3 class="font-medium text-gray-900">{{.Title}}</h3>
            <span class="rounded-full px-2 py-0.5 text-xs font-medium {{statusBadge .Status}}">{{.Status}}</span>
        </div>
        <p class="mt-1 text-sm text-gray-500">{{.Description}}</p>
        <div class="mt-3">
            <div class="h-2 rounded bg-gray-200"><div class="h-2 rounded bg-indigo-600" style="width: {{.Progress}}%"></div></div>
            <p class="mt-1 text-xs text-gray-400">{{.Progress}}% · {{formatDate .StartDate}} → {{formatDate .EndDate}}</p>
        </div>
    </div>
    {{else}}
    <p class="text-sm text-gray-500">No projects yet.</p>
    {{end}}
</div>
{{end}}`,

	"client_orders": `{{define "content"}}
<div class="flex items-center justify-between">
    <h1 class="text-2xl font-semibold text-gray-900">My Orders</h1>
    <a href="/client/orders/new" class="rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700">Place Order</a>
</div>
<div class="mt-6 bg-white shadow rounded-lg overflow-hidden">
    <table class="min-w-full divide-y divide-gray-200">
        <thead class="bg-gray-50">
            <tr>
                <th class="px-4 py-3 text-left text-xs font-medium uppercase tracking-wider text-gray-500">Order</th>
                <th class="px-4 py-3 text-left text-xs font-medium uppercase tracking-wider text-gray-500">Product</th>
                <th class="px-4 py-3 text-left text-xs font-medium uppercase tracking-wider text-gray-500">Quantity</th>
                <th class="px-4 py-3 text-left text-xs font-medium uppercase tracking-wider text-gray-500">Amount</th>
                <th class="px-4 py-3 text-left text-xs font-medium uppercase tracking-wider text-gray-500">Status</th>
                <th class="px-4 py-3 text-left text-xs font-medium uppercase tracking-wider text-gray-500">Delivery</th>
                <th class="px-4 py-3 text-right text-xs font-medium uppercase tracking-wider text-gray-500"></th>
            </tr>
        </thead>
        <tbody class="divide-y divide-gray-200">
            {{range .Orders}}
            <tr class="hover:bg-gray-50">
                <td class="px-4 py-3 text-sm font-medium text-gray-900">{{.OrderNumber}}</td>
                <td class="px-4 py-3 text-sm text-gray-700">{{.ProductName}}</td>
                <td class="px-4 py-3 text-sm text-gray-700">{{.Quantity}}</td>
                <td class="px-4 py-3 text-sm text-gray-700">{{money .TotalAmount}}</td>
                <td class="px-4 py-3 text-sm"><span class="rounded-full px-2 py-0.5 text-xs font-medium {{statusBadge (printf "%s" .Status)}}">{{.Status}}</span></td>
                <td class="px-4 py-3 text-sm text-gray-700">{{formatDate .DeliveryDate}}</td>
                <td class="px-4 py-3 text-right text-sm">
                    {{if eq (printf "%s" .Status) "Pending"}}
                    <form method="POST" action="/client/orders/{{.ID}}/cancel" class="inline" onsubmit="return confirm('Cancel this order?')">
                        <button type="submit" class="text-red-600 hover:text-red-800">Cancel</button>
                    </form>
                    {{end}}
                </td>
            </tr>
            {{else}}
            <tr><td colspan="7" class="px-4 py-8 text-center text-sm text-gray-500">You have not placed any orders yet</td></tr>
            {{end}}
        </tbody>
    </table>
</div>
{{end}}`,

	"client_order_form": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">Place Order</h1>
{{if .Error}}<div class="mt-4 rounded-md bg-red-50 border border-red-200 p-4 text-sm text-red-700">{{.Error}}</div>{{end}}
<form class="mt-6 max-w-xl space-y-4 bg-white p-6 shadow rounded-lg" method="POST" action="/client/orders">
    <div>
        <label class="block text-sm font-medium text-gray-700">Product name</label>
        <input name="productName" type="text" required value="{{.Form.ProductName}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div class="grid grid-cols-2 gap-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Quantity</label>
            <input name="quantity" type="number" min="1" required value="{{.Form.Quantity}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Total amount</label>
            <input name="totalAmount" type="number" step="0.01" min="0" required value="{{.Form.TotalAmount}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
        </div>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Requested delivery date</label>
        <input name="deliveryDate" type="date" value="{{.Form.DeliveryDate}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div class="flex space-x-3">
        <button type="submit" class="rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700">Place order</button>
        <a href="/client/orders" class="rounded-md border border-gray-300 px-4 py-2 text-sm font-medium text-gray-700 hover:bg-gray-50">Cancel</a>
    </div>
</form>
{{end}}`,

	"client_enquiry_form": `{{define "content"}}
<h1 class="text-2xl font-semibold text-gray-900">Send an Enquiry</h1>
{{if .Error}}<div class="mt-4 rounded-md bg-red-50 border border-red-200 p-4 text-sm text-red-700">{{.Error}}</div>{{end}}
<form class="mt-6 max-w-xl space-y-4 bg-white p-6 shadow rounded-lg" method="POST" action="/client/enquiry">
    <div>
        <label class="block text-sm font-medium text-gray-700">Subject</label>
        <input name="subject" type="text" required value="{{.Form.Subject}}" class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Message</label>
        <textarea name="message" rows="5" required class="mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm">{{.Form.Message}}</textarea>
    </div>
    <button type="submit" class="rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-700">Send</button>
</form>
{{end}}`,
}
