package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/haguru/raikiri/internal/dashboard"
	"github.com/haguru/raikiri/internal/interfaces"
	"github.com/haguru/raikiri/internal/metrics"
	"github.com/haguru/raikiri/internal/models/dto"
	"github.com/haguru/raikiri/internal/session"
	"github.com/haguru/raikiri/internal/userservice"
	"github.com/haguru/raikiri/internal/views"
	"github.com/haguru/raikiri/pkg/helper"
)

type Route struct {
	Metrics     interfaces.Metrics
	UserService interfaces.UserService
	Gate        *session.Gate
	Renderer    *dashboard.Renderer
	Views       *views.Views
	Logger      interfaces.Logger
	validator   *structValidator.Validate
}

// NewRoute creates a new Route instance.
func NewRoute(metrics interfaces.Metrics, userService interfaces.UserService, gate *session.Gate,
	renderer *dashboard.Renderer, pages *views.Views, logger interfaces.Logger, validator *structValidator.Validate,
) *Route {
	return &Route{
		Metrics:     metrics,
		UserService: userService,
		Gate:        gate,
		Renderer:    renderer,
		Views:       pages,
		Logger:      logger,
		validator:   validator,
	}
}

// Index renders the login view for unauthenticated sessions and the
// dashboard otherwise.
func (r *Route) Index(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != IndexRoute {
		http.NotFound(w, req)
		return
	}
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return
	}

	sess := r.session(req)
	if !sess.Authenticated() {
		r.renderLogin(w, http.StatusOK, views.LoginPage{})
		return
	}

	view := r.Renderer.Render(req.Context(), sess, selectionFromQuery(req))
	if view == nil {
		r.renderLogin(w, http.StatusOK, views.LoginPage{})
		return
	}

	w.Header().Set(ContentType, ContentTypeHTML)
	w.WriteHeader(http.StatusOK)
	if err := r.Views.Dashboard(w, views.DashboardPage{View: view}); err != nil {
		r.Logger.Error(ErrFailedToRenderPage, "func", helper.GetFuncName(), "error", err)
	}
}

// Login handles user login requests sent as JSON or as a form.
func (r *Route) Login(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		if r.Metrics != nil {
			r.Metrics.IncCounter(metrics.LoginFailedTotal)
		}
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(metrics.LoginRequestsTotal)
	}

	kind := kindOf(req)
	if kind == kindUnsupported {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, fmt.Errorf(ErrInvalidContentTypeFormat, req.Header.Get(ContentType)), ErrInvalidContentType)
		if r.Metrics != nil {
			r.Metrics.IncCounter(metrics.LoginFailedTotal)
		}
		return
	}

	sess := r.session(req)
	if sess.Authenticated() {
		if kind == kindForm {
			http.Redirect(w, req, IndexRoute, http.StatusSeeOther)
			return
		}
		r.writeJSON(w, http.StatusOK, &dto.LoginResponseDTO{Message: MsgAlreadySignedIn})
		return
	}

	loginRequest, err := decodeLogin(req, kind)
	if err != nil {
		r.loginFailure(w, kind, http.StatusBadRequest, err, ErrInvalidRequestBody, "")
		return
	}

	if err := r.validator.Struct(loginRequest); err != nil {
		r.loginFailure(w, kind, http.StatusBadRequest, err, validationMessage(err), loginRequest.Username)
		return
	}

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	_, err = r.UserService.ValidateCredentials(req.Context(), loginRequest.Username, loginRequest.Password)
	if r.Metrics != nil {
		r.Metrics.ObserveHistogram(metrics.LoginDurationSeconds, time.Since(startTime).Seconds())
	}
	if err != nil {
		status, message, public := http.StatusUnauthorized, ErrInvalidCredentials, userservice.ErrInvalidCredentials
		if errors.Is(err, userservice.ErrUnavailable) {
			status, message, public = http.StatusServiceUnavailable, ErrServiceUnavailable, userservice.ErrUnavailable
		}
		r.loginFailure(w, kind, status, public, message, loginRequest.Username)
		return
	}

	if err := r.Gate.SignIn(w, sess, loginRequest.Username); err != nil {
		r.Logger.Error(ErrFailedToGenerateToken, "func", helper.GetFuncName(), "error", err)
		r.loginFailure(w, kind, http.StatusInternalServerError, err, ErrFailedToGenerateToken, loginRequest.Username)
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(metrics.LoginSuccessTotal)
	}

	if kind == kindForm {
		http.Redirect(w, req, IndexRoute, http.StatusSeeOther)
		return
	}
	r.writeJSON(w, http.StatusOK, &dto.LoginResponseDTO{Message: MsgLoginSuccessful})
}

// Signup handles user registration requests sent as JSON or as a form. It
// never signs the session in.
func (r *Route) Signup(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(metrics.SignupRequestsTotal)
	}

	kind := kindOf(req)
	if kind == kindUnsupported {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, fmt.Errorf(ErrInvalidContentTypeFormat, req.Header.Get(ContentType)), ErrInvalidContentType)
		if r.Metrics != nil {
			r.Metrics.IncCounter(metrics.SignupErrorsTotal)
		}
		return
	}

	signupRequest, err := decodeSignup(req, kind)
	if err != nil {
		r.signupResult(w, kind, http.StatusBadRequest, err, ErrInvalidRequestBody, "")
		return
	}

	if err := r.validator.Struct(signupRequest); err != nil {
		r.signupResult(w, kind, http.StatusBadRequest, err, validationMessage(err), "")
		return
	}

	var startTime time.Time
	if r.Metrics != nil {
		startTime = time.Now()
	}

	err = r.UserService.RegisterUser(req.Context(), signupRequest.Username, signupRequest.Password)
	if r.Metrics != nil {
		r.Metrics.ObserveHistogram(metrics.SignupDurationSeconds, time.Since(startTime).Seconds())
	}
	if err != nil {
		r.Logger.Warn(ErrFailedToRegisterUser, "func", helper.GetFuncName(), "error", err)
		status, message, public := http.StatusInternalServerError, MsgRegistrationFailed, userservice.ErrRegistrationFailed
		if errors.Is(err, userservice.ErrUsernameTaken) {
			status, message, public = http.StatusConflict, MsgUsernameTaken, userservice.ErrUsernameTaken
		}
		r.signupResult(w, kind, status, public, message, "")
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(metrics.SignupSuccessTotal)
	}
	r.signupResult(w, kind, http.StatusCreated, nil, MsgUserCreated, signupRequest.Username)
}

// Logout signs the session out. Signing out an unauthenticated session is a
// no-op.
func (r *Route) Logout(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return
	}

	sess := r.session(req)
	if sess.Authenticated() {
		if err := r.Gate.SignOut(w, sess); err != nil {
			r.Logger.Warn("Failed to sign out", "func", helper.GetFuncName(), "error", err)
		} else if r.Metrics != nil {
			r.Metrics.IncCounter(metrics.LogoutTotal)
		}
	}

	if kindOf(req) == kindJSON {
		r.writeJSON(w, http.StatusOK, &dto.LogoutResponseDTO{Message: MsgLogoutSuccessful})
		return
	}
	http.Redirect(w, req, IndexRoute, http.StatusSeeOther)
}

// Healthz reports liveness.
func (r *Route) Healthz(w http.ResponseWriter, req *http.Request) {
	r.writeJSON(w, http.StatusOK, map[string]string{"status": MsgHealthy})
}

// session returns the request's session, loading it from the cookie when no
// middleware has done so.
func (r *Route) session(req *http.Request) *session.Session {
	if s, ok := session.Lookup(req.Context()); ok {
		return s
	}
	return r.Gate.Load(req)
}

func (r *Route) loginFailure(w http.ResponseWriter, kind requestKind, status int, err error, message, username string) {
	r.Logger.Warn("Login failed", "status", status, "error", err)
	if r.Metrics != nil {
		r.Metrics.IncCounter(metrics.LoginFailedTotal)
	}

	if kind == kindForm {
		r.renderLogin(w, status, views.LoginPage{Notices: []string{message}, Username: username})
		return
	}
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(status)
	r.errorResponse(w, err, message)
}

func (r *Route) signupResult(w http.ResponseWriter, kind requestKind, status int, err error, message, username string) {
	if err != nil {
		r.Logger.Warn("Signup failed", "status", status, "error", err)
		if r.Metrics != nil {
			r.Metrics.IncCounter(metrics.SignupErrorsTotal)
		}
	}

	if kind == kindForm {
		r.renderLogin(w, status, views.LoginPage{SignupMessage: message})
		return
	}
	if err != nil {
		w.Header().Set(ContentType, ContentTypeJson)
		w.WriteHeader(status)
		r.errorResponse(w, err, message)
		return
	}
	r.writeJSON(w, status, &dto.UserSignupResponseDTO{Message: message, Username: username})
}

func (r *Route) renderLogin(w http.ResponseWriter, status int, page views.LoginPage) {
	w.Header().Set(ContentType, ContentTypeHTML)
	w.WriteHeader(status)
	if err := r.Views.Login(w, page); err != nil {
		r.Logger.Error(ErrFailedToRenderPage, "func", helper.GetFuncName(), "error", err)
	}
}

func (r *Route) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		r.Logger.Error(ErrFailedToEncodeResponse, "func", helper.GetFuncName(), "error", err)
	}
}

func (r *Route) errorResponse(w http.ResponseWriter, err error, message string) {
	response := &dto.ErrorResponseDTO{Message: message}
	if err != nil {
		response.Error = err.Error()
	}
	_ = json.NewEncoder(w).Encode(response)
}
