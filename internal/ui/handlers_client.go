package ui

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
)

// ClientDashboard shows project and order counts for the caller.
func (ui *UI) ClientDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	sess := sessionFrom(c)

	projects, err := ui.backend.ListClientProjects(ctx, sess.Token, sess.UserID)
	if err != nil {
		ui.logger.Debug().Err(err).Msg("client projects unavailable for dashboard")
	}
	orders, err := ui.backend.ListOrders(ctx, sess.Token)
	if err != nil {
		ui.logger.Debug().Err(err).Msg("client orders unavailable for dashboard")
	}

	return ui.render(c, http.StatusOK, "client_dashboard", map[string]any{
		"Title":        "Client Dashboard",
		"ProjectCount": len(projects),
		"OrderCount":   len(orders),
	})
}

// ClientProjects lists projects tied to the caller's account.
func (ui *UI) ClientProjects(c echo.Context) error {
	sess := sessionFrom(c)
	projects, err := ui.backend.ListClientProjects(c.Request().Context(), sess.Token, sess.UserID)
	toast, herr := ui.fetchToast(c, err, "your projects")
	if herr != nil {
		return herr
	}
	data := map[string]any{
		"Title":    "My Projects",
		"Projects": projects,
	}
	if toast != nil {
		data["Toast"] = toast
	}
	return ui.render(c, http.StatusOK, "client_projects", data)
}

// ClientOrders lists the caller's orders. The backend scopes the order list
// to the caller for the Client role.
func (ui *UI) ClientOrders(c echo.Context) error {
	orders, err := ui.backend.ListOrders(c.Request().Context(), sessionFrom(c).Token)
	toast, herr := ui.fetchToast(c, err, "your orders")
	if herr != nil {
		return herr
	}
	data := map[string]any{
		"Title":  "My Orders",
		"Orders": orders,
	}
	if toast != nil {
		data["Toast"] = toast
	}
	return ui.render(c, http.StatusOK, "client_orders", data)
}

// ClientOrderNew renders the order form.
func (ui *UI) ClientOrderNew(c echo.Context) error {
	return ui.render(c, http.StatusOK, "client_order_form", map[string]any{
		"Title": "Place Order",
		"Form":  domain.OrderInput{Quantity: 1},
	})
}

// ClientOrderCreate places a new order.
func (ui *UI) ClientOrderCreate(c echo.Context) error {
	var in domain.OrderInput
	if err := c.Bind(&in); err != nil {
		return ui.clientOrderError(c, in, "Invalid form submission")
	}
	if err := c.Validate(&in); err != nil {
		return ui.clientOrderError(c, in, validationMessage(err))
	}
	err := ui.backend.CreateOrder(c.Request().Context(), sessionFrom(c).Token, in)
	return ui.writeOutcome(c, err, "/client/orders", "Order placed")
}

func (ui *UI) clientOrderError(c echo.Context, in domain.OrderInput, message string) error {
	return ui.render(c, http.StatusUnprocessableEntity, "client_order_form", map[string]any{
		"Title": "Place Order",
		"Form":  in,
		"Error": message,
	})
}

// ClientOrderCancel cancels one of the caller's pending orders. The backend
// rejects the transition for any order that already left Pending.
func (ui *UI) ClientOrderCancel(c echo.Context) error {
	in := domain.OrderStatusInput{Status: domain.OrderCancelled}
	err := ui.backend.UpdateOrderStatus(c.Request().Context(), sessionFrom(c).Token, c.Param("id"), in)
	return ui.writeOutcome(c, err, "/client/orders", "Order cancelled")
}

// ClientEnquiryNew renders the enquiry form, pre-filled from the session.
func (ui *UI) ClientEnquiryNew(c echo.Context) error {
	return ui.render(c, http.StatusOK, "client_enquiry_form", map[string]any{
		"Title": "Enquiry",
		"Form":  domain.EnquiryInput{},
	})
}

// ClientEnquiryCreate submits an enquiry. Name and email come from the
// session, not the form, so an enquiry is always attributable.
func (ui *UI) ClientEnquiryCreate(c echo.Context) error {
	sess := sessionFrom(c)
	var in domain.EnquiryInput
	if err := c.Bind(&in); err != nil {
		return ui.clientEnquiryError(c, in, "Invalid form submission")
	}
	in.Name = sess.Username
	in.Email = sess.Email
	if err := c.Validate(&in); err != nil {
		return ui.clientEnquiryError(c, in, validationMessage(err))
	}
	err := ui.backend.CreateEnquiry(c.Request().Context(), sess.Token, in)
	return ui.writeOutcome(c, err, "/client/enquiry", "Enquiry sent")
}

func (ui *UI) clientEnquiryError(c echo.Context, in domain.EnquiryInput, message string) error {
	return ui.render(c, http.StatusUnprocessableEntity, "client_enquiry_form", map[string]any{
		"Title": "Enquiry",
		"Form":  in,
		"Error": message,
	})
}
