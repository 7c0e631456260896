package routes

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/haguru/raikiri/internal/dashboard"
	"github.com/haguru/raikiri/internal/models/dto"
	"github.com/haguru/raikiri/internal/session"
)

// Dashboard returns the full dashboard view model as JSON.
func (r *Route) Dashboard(w http.ResponseWriter, req *http.Request) {
	sess, ok := r.authorize(w, req)
	if !ok {
		return
	}
	r.writeJSON(w, http.StatusOK, r.Renderer.Render(req.Context(), sess, selectionFromQuery(req)))
}

// Project returns the detail and team of one project.
func (r *Route) Project(w http.ResponseWriter, req *http.Request) {
	if _, ok := r.authorize(w, req); !ok {
		return
	}

	name := strings.TrimSpace(req.URL.Query().Get(ParamName))
	if name == "" {
		w.Header().Set(ContentType, ContentTypeJson)
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, fmt.Errorf(ErrMissingParameter, ParamName), ErrValidationFailed)
		return
	}
	r.writeJSON(w, http.StatusOK, r.Renderer.RenderProject(req.Context(), name))
}

// Minerals returns the minerals whose name contains the q parameter.
func (r *Route) Minerals(w http.ResponseWriter, req *http.Request) {
	if _, ok := r.authorize(w, req); !ok {
		return
	}
	r.writeJSON(w, http.StatusOK, r.Renderer.Minerals(req.Context(), req.URL.Query().Get(ParamQuery)))
}

// Projection computes the what-if growth of total by percent. Percent is
// clamped to the slider range.
func (r *Route) Projection(w http.ResponseWriter, req *http.Request) {
	if _, ok := r.authorize(w, req); !ok {
		return
	}

	total, err := parseFloatParam(req, ParamTotal)
	if err != nil {
		r.badRequest(w, err)
		return
	}
	percent, err := parseFloatParam(req, ParamPercent)
	if err != nil {
		r.badRequest(w, err)
		return
	}

	projectionRequest := &dto.ProjectionRequestDTO{Total: total, Percent: dashboard.ClampPercent(percent)}
	if err := r.validator.Struct(projectionRequest); err != nil {
		r.badRequest(w, err)
		return
	}

	p := dashboard.Project(projectionRequest.Total, projectionRequest.Percent)
	r.writeJSON(w, http.StatusOK, &dto.ProjectionResponseDTO{
		Base:       p.Base,
		Percent:    p.Percent,
		Additional: p.Additional,
		Projected:  p.Projected,
		Display:    dashboard.FormatCurrency(p.Projected),
	})
}

// authorize enforces GET and an authenticated session.
func (r *Route) authorize(w http.ResponseWriter, req *http.Request) (*session.Session, bool) {
	if req.Method != http.MethodGet {
		w.Header().Set(ContentType, ContentTypeJson)
		w.WriteHeader(http.StatusMethodNotAllowed)
		r.errorResponse(w, fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return nil, false
	}

	sess := r.session(req)
	if !sess.Authenticated() {
		w.Header().Set(ContentType, ContentTypeJson)
		w.WriteHeader(http.StatusUnauthorized)
		r.errorResponse(w, errors.New(ErrNotAuthenticated), MsgUnauthenticated)
		return nil, false
	}
	return sess, true
}

func (r *Route) badRequest(w http.ResponseWriter, err error) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(http.StatusBadRequest)
	r.errorResponse(w, err, ErrValidationFailed)
}
