package handler

import (
	"errors"
	"net/http"

	"clinica-ginecologica/config"
	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/delivery/http/middleware"
	"clinica-ginecologica/internal/delivery/http/view"
	"clinica-ginecologica/internal/usecase"
	"clinica-ginecologica/pkg/validator"

	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	renderer    *view.Renderer
	log         *logrus.Logger
	session     config.SessionConfig
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, renderer *view.Renderer, log *logrus.Logger, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		renderer:    renderer,
		log:         log,
		session:     session,
	}
}

// Index renders the landing page
func (h *AuthHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusOK, "index", "Inicio", nil)
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusOK, "login", "Iniciar sesión", &dto.LoginRequest{
		Next: r.URL.Query().Get("next"),
	})
}

// Login verifies credentials and sets the session cookie
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeForm(r, &req); err != nil {
		h.renderer.Render(w, r, http.StatusBadRequest, "login", "Iniciar sesión", &dto.LoginRequest{}, view.Flash{Category: view.FlashError, Message: msgInvalidForm})
		return
	}
	form := &dto.LoginRequest{Email: req.Email, Next: req.Next}

	if err := h.validator.Validate(&req); err != nil {
		h.renderer.Render(w, r, http.StatusOK, "login", "Iniciar sesión", form, view.Flash{Category: view.FlashError, Message: h.validator.FirstMessage(err)})
		return
	}

	session, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			h.renderer.Render(w, r, http.StatusOK, "login", "Iniciar sesión", form, view.Flash{Category: view.FlashError, Message: "Email o contraseña incorrectos."})
		default:
			h.renderer.InternalError(w, r)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(session.ExpiresIn),
		HttpOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	redirectWithFlash(w, r, safeNext(req.Next), view.FlashSuccess, "¡Bienvenida de nuevo!")
}

// RegisterPage renders the registration form
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusOK, "register", "Registro", &dto.RegisterRequest{})
}

// Register creates the patient account
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeForm(r, &req); err != nil {
		h.renderer.Render(w, r, http.StatusBadRequest, "register", "Registro", &dto.RegisterRequest{}, view.Flash{Category: view.FlashError, Message: msgInvalidForm})
		return
	}

	// Echo the form back without the password
	form := req
	form.Password = ""
	fail := func(message string) {
		h.renderer.Render(w, r, http.StatusOK, "register", "Registro", &form, view.Flash{Category: view.FlashError, Message: message})
	}

	if err := h.validator.Validate(&req); err != nil {
		fail(h.validator.FirstMessage(err))
		return
	}

	_, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateEmail):
			fail("Este email ya está registrado.")
		case errors.Is(err, usecase.ErrDuplicateNationalID):
			fail("Esta cédula ya está registrada.")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			fail(msgInvalidDate)
		case errors.Is(err, usecase.ErrInvalidBirthDate):
			fail("La fecha de nacimiento debe ser anterior a hoy.")
		default:
			h.renderer.InternalError(w, r)
		}
		return
	}

	redirectWithFlash(w, r, "/login", view.FlashSuccess, "Registro exitoso. Ya puedes iniciar sesión.")
}

// Logout revokes the session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentityFromContext(r.Context())
	if identity != nil {
		if err := h.authUsecase.Logout(r.Context(), identity.PatientID, identity.TokenID); err != nil {
			h.renderer.InternalError(w, r)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	redirectWithFlash(w, r, "/", view.FlashInfo, "Has cerrado sesión exitosamente.")
}
