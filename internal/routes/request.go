package routes

import (
	"encoding/json"
	"fmt"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/haguru/raikiri/internal/dashboard"
	"github.com/haguru/raikiri/internal/models/dto"
)

// requestKind tells how a request body is encoded.
type requestKind int

const (
	kindUnsupported requestKind = iota
	kindJSON
	kindForm
)

func kindOf(req *http.Request) requestKind {
	mediaType, _, err := mime.ParseMediaType(req.Header.Get(ContentType))
	if err != nil {
		return kindUnsupported
	}
	switch mediaType {
	case ContentTypeJson:
		return kindJSON
	case ContentTypeForm, ContentTypeMultipart:
		return kindForm
	default:
		return kindUnsupported
	}
}

// decodeBody fills dst from a JSON body, or calls fromForm with the parsed form.
func decodeBody(req *http.Request, kind requestKind, dst any, fromForm func(get func(string) string)) error {
	switch kind {
	case kindJSON:
		return json.NewDecoder(req.Body).Decode(dst)
	case kindForm:
		var err error
		if strings.HasPrefix(req.Header.Get(ContentType), ContentTypeMultipart) {
			err = req.ParseMultipartForm(maxFormMemory)
		} else {
			err = req.ParseForm()
		}
		if err != nil {
			return err
		}
		fromForm(req.PostForm.Get)
		return nil
	default:
		return fmt.Errorf(ErrInvalidContentTypeFormat, req.Header.Get(ContentType))
	}
}

func decodeLogin(req *http.Request, kind requestKind) (*dto.LoginRequestDTO, error) {
	login := &dto.LoginRequestDTO{}
	err := decodeBody(req, kind, login, func(get func(string) string) {
		login.Username = get(FieldUsername)
		login.Password = get(FieldPassword)
	})
	login.Username = strings.TrimSpace(login.Username)
	return login, err
}

func decodeSignup(req *http.Request, kind requestKind) (*dto.UserSignupRequestDTO, error) {
	signup := &dto.UserSignupRequestDTO{}
	err := decodeBody(req, kind, signup, func(get func(string) string) {
		signup.Username = get(FieldUsername)
		signup.Password = get(FieldPassword)
		signup.ConfirmPassword = get(FieldConfirmPassword)
	})
	signup.Username = strings.TrimSpace(signup.Username)
	return signup, err
}

// validationMessage turns validator errors into a message for end users.
func validationMessage(err error) string {
	validationErrors, ok := err.(structValidator.ValidationErrors)
	if !ok {
		return ErrValidationFailed
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "eqfield":
			messages = append(messages, MsgPasswordsDiffer)
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required.", fe.Field()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s characters.", fe.Field(), fe.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters.", fe.Field(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid.", fe.Field()))
		}
	}
	return strings.Join(messages, " ")
}

// selectionFromQuery reads the dashboard selection. An unparsable growth
// falls back to 0.
func selectionFromQuery(req *http.Request) dashboard.Selection {
	query := req.URL.Query()
	growth, err := strconv.ParseFloat(query.Get(ParamGrowth), 64)
	if err != nil || math.IsInf(growth, 0) {
		growth = 0
	}
	return dashboard.Selection{
		Project: query.Get(ParamProject),
		Mineral: query.Get(ParamMineral),
		Growth:  dashboard.ClampPercent(growth),
	}
}

func parseFloatParam(req *http.Request, name string) (float64, error) {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf(ErrMissingParameter, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf(ErrInvalidParameter, name)
	}
	return v, nil
}
