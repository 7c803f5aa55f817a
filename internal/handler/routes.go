package handler

// Route names used to build URLs with echo's Reverse. The callback names are
// the defaults for the return, cancel_return and notify_url fields.
const (
	RoutePlans              = "plans"
	RoutePlan               = "plan"
	RouteSubscriptionReturn = "subscription_return"
	RouteSubscriptionCancel = "subscription_cancel"
	RoutePaypalNotify       = "paypal_notify"
)
