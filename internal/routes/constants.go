package routes

const (
	// API route constants
	IndexRoute         = "/"
	LoginRouteAPI      = "/login"
	SignupRouteAPI     = "/signup"
	LogoutRouteAPI     = "/logout"
	DashboardRouteAPI  = "/api/dashboard"
	ProjectRouteAPI    = "/api/project"
	MineralsRouteAPI   = "/api/minerals"
	ProjectionRouteAPI = "/api/projection"
	MetricsRouteAPI    = "/metrics"
	HealthzRouteAPI    = "/healthz"

	// query parameters
	ParamProject = "project"
	ParamMineral = "mineral"
	ParamGrowth  = "growth"
	ParamName    = "name"
	ParamQuery   = "q"
	ParamTotal   = "total"
	ParamPercent = "percent"

	// form fields
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"

	// Content-Type constants
	ContentType          = "Content-Type"
	ContentTypeJson      = "application/json"
	ContentTypeForm      = "application/x-www-form-urlencoded"
	ContentTypeMultipart = "multipart/form-data"
	ContentTypeHTML      = "text/html; charset=utf-8"

	maxFormMemory = 1 << 20

	// message constants
	MsgLoginSuccessful    = "Login successful"
	MsgLogoutSuccessful   = "Logout successful"
	MsgAlreadySignedIn    = "Already signed in"
	MsgUserCreated        = "User registered successfully. You can now sign in."
	MsgUsernameTaken      = "That username already exists. Please choose another one."
	MsgRegistrationFailed = "Registration failed. Please try again later."
	MsgPasswordsDiffer    = "Passwords do not match."
	MsgUnauthenticated    = "Please sign in to view the dashboard."
	MsgHealthy            = "ok"

	// Error messages
	ErrMethodNotAllowed         = "method not allowed"
	ErrInvalidContentType       = "content-Type must be application/json or a form"
	ErrInvalidRequestBody       = "invalid request body"
	ErrValidationFailed         = "data validation failed"
	ErrFailedToRegisterUser     = "failed to register user"
	ErrFailedToEncodeResponse   = "failed to encode response"
	ErrFailedToRenderPage       = "failed to render page"
	ErrFailedToGenerateToken    = "failed to generate session token"
	ErrInvalidCredentials       = "invalid username or password"
	ErrServiceUnavailable       = "Error connecting to the database. Please try again later."
	ErrNotAuthenticated         = "not authenticated"
	ErrMissingParameter         = "missing query parameter: %s"
	ErrInvalidParameter         = "invalid query parameter: %s"
	ErrInvalidContentTypeFormat = "invalid content-type: %s"
)
