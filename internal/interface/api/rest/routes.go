package rest

const (
	// auth
	RouteSessions = "/sessions"

	// accounts
	RouteAccounts    = "/accounts"
	RouteAccount     = RouteAccounts + "/:identifier"
	RouteDeliverymen = "/deliverymen"

	// recipients
	RouteRecipients     = "/recipients"
	RouteRecipient      = RouteRecipients + "/:identifier"
	RouteRecipientItems = "/recipient/items"

	// deliveries
	RouteDeliveries    = "/deliveries"
	RouteDelivery      = RouteDeliveries + "/:delivery_id"
	RouteDeliveryItems = RouteDeliveries + "/items/:deliveryman_id"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
