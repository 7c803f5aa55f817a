package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"paypal-subscribe/internal/dto"
	"paypal-subscribe/internal/model"
	"paypal-subscribe/internal/service"
	"paypal-subscribe/internal/subscribe"
	"strconv"

	"github.com/labstack/echo/v4"
)

const pageLayout = `
{{define "layout"}}<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>{{.Title}}</title>
	<style>
		body {
			font-family: Arial, sans-serif;
			max-width: 640px;
			margin: 40px auto;
		}
		.plan {
			border-bottom: 1px solid #ddd;
			padding: 16px 0;
		}
	</style>
</head>
<body>
	<h2>{{.Title}}</h2>
	{{template "content" .}}
</body>
</html>{{end}}
`

const plansContent = `
{{define "content"}}
	{{range .Plans}}
	<div class="plan">
		<h3>{{.Name}}</h3>
		<p>{{.Description}}</p>
		<p>{{.Amount.StringFixed 2}} {{.Currency}} every {{.Period}}{{.Unit}}</p>
		{{paypalSubscribeButton "fields" .FieldOverrides "image" $.Image "alt" $.Alt "id" (printf "paypal_submit_%s" .ID)}}
	</div>
	{{else}}
	<p>No plans available.</p>
	{{end}}
{{end}}
`

const planContent = `
{{define "content"}}
	<div class="plan">
		<p>{{.Plan.Description}}</p>
		<p>{{.Plan.Amount.StringFixed 2}} {{.Plan.Currency}} every {{.Plan.Period}}{{.Plan.Unit}}</p>
		{{.Form}}
	</div>
{{end}}
`

const messageContent = `
{{define "content"}}
	<p>{{.Message}}</p>
	<p><a href="{{.Home}}">Back to plans</a></p>
{{end}}
`

type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
	image               string
	alt                 string

	plansPage   *template.Template
	planPage    *template.Template
	messagePage *template.Template
}

// NewSubscriptionHandler renders forms with the given image and alt text
// unless a request asks for button mode.
func NewSubscriptionHandler(subscriptionService service.SubscriptionService, image, alt string) *SubscriptionHandler {
	page := func(content string) *template.Template {
		return template.Must(template.New("page").
			Funcs(subscriptionService.FuncMap()).
			Parse(pageLayout + content))
	}

	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		image:               image,
		alt:                 alt,
		plansPage:           page(plansContent),
		planPage:            page(planContent),
		messagePage:         page(messageContent),
	}
}

func (h *SubscriptionHandler) ListPlans(c echo.Context) error {
	ctx := c.Request().Context()

	plans, err := h.subscriptionService.ListPlans(ctx)
	if err != nil {
		return err
	}

	return h.render(c, h.plansPage, map[string]any{
		"Title": "Subscriptions",
		"Plans": plans,
		"Image": h.image,
		"Alt":   h.alt,
	})
}

func (h *SubscriptionHandler) ShowPlan(c echo.Context) error {
	ctx := c.Request().Context()
	planID := c.Param("id")

	button := false
	if raw := c.QueryParam("button"); raw != "" {
		var err error
		if button, err = strconv.ParseBool(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid button parameter")
		}
	}

	opts := subscribe.Options{
		Image:  h.image,
		Alt:    h.alt,
		Button: button,
		Value:  "Subscribe",
		HTML:   map[string]string{"class": "paypal-button"},
	}

	plan, err := h.subscriptionService.GetPlan(ctx, planID)
	if errors.Is(err, service.ErrPlanNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "plan not found")
	}
	if err != nil {
		return err
	}

	form, err := h.subscriptionService.FormForPlan(plan, opts)
	if err != nil {
		return err
	}

	return h.render(c, h.planPage, struct {
		Title string
		Plan  *model.Plan
		Form  template.HTML
	}{
		Title: plan.Name,
		Plan:  plan,
		Form:  form,
	})
}

// PlanForm returns the form markup of a plan as JSON, for pages that embed
// it client side.
func (h *SubscriptionHandler) PlanForm(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PlanFormRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	form, err := h.subscriptionService.PlanForm(ctx, req.PlanID, subscribe.Options{
		Image:  h.image,
		Alt:    h.alt,
		Button: req.Button,
		Value:  "Subscribe",
		ID:     req.ID,
	})
	if errors.Is(err, service.ErrPlanNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "plan not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.PlanFormResponse{
		PlanID:   req.PlanID,
		Endpoint: h.subscriptionService.Endpoint(),
		HTML:     string(form),
	})
}

// HandleReturn is where PayPal sends the buyer after completing checkout.
func (h *SubscriptionHandler) HandleReturn(c echo.Context) error {
	c.Logger().Infof("subscription return: item_number=%s", c.FormValue("item_number"))

	return h.message(c, "Subscription approved", "Thank you! Your subscription is being set up.")
}

// HandleCancel is where PayPal sends the buyer after abandoning checkout.
func (h *SubscriptionHandler) HandleCancel(c echo.Context) error {
	return h.message(c, "Subscription cancelled", "No payment was made. You can pick a plan again at any time.")
}

// HandleNotify acknowledges PayPal notifications. Messages are only logged,
// they are not verified against PayPal.
func (h *SubscriptionHandler) HandleNotify(c echo.Context) error {
	c.Logger().Infof("paypal notification: txn_type=%s subscr_id=%s item_number=%s",
		c.FormValue("txn_type"), c.FormValue("subscr_id"), c.FormValue("item_number"))

	return c.NoContent(http.StatusOK)
}

func (h *SubscriptionHandler) message(c echo.Context, title, msg string) error {
	return h.render(c, h.messagePage, map[string]any{
		"Title":   title,
		"Message": msg,
		"Home":    c.Echo().Reverse(RoutePlans),
	})
}

func (h *SubscriptionHandler) render(c echo.Context, t *template.Template, data any) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
