package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth              = RouteApiV1 + "/auth"
	RouteRegister          = RouteAuth + "/register"
	RouteLogin             = RouteAuth + "/login"
	RouteSecurityQuestions = RouteAuth + "/security-questions"
	RouteForgotPassword    = RouteAuth + "/forgot-password"
	RouteRecoveryQuestion  = RouteForgotPassword + "/question"
	RouteResetPassword     = RouteAuth + "/reset-password"

	// users
	RouteUsers = RouteApiV1 + "/users"

	// resources
	RoutePets             = RouteApiV1 + "/pets"
	RouteProducts         = RouteApiV1 + "/products"
	RouteServices         = RouteApiV1 + "/services"
	routeResource         = "/:id"
	routeResourceCategory = "/category/:category"
	routePetsByType       = "/type/:category"
	routeProductStock     = routeResource + "/stock"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
