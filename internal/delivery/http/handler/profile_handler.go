package handler

import (
	"errors"
	"net/http"

	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/delivery/http/view"
	"clinica-ginecologica/internal/usecase"
	"clinica-ginecologica/pkg/validator"
)

type ProfileHandler struct {
	profileUsecase usecase.PatientProfileUsecase
	validator      *validator.CustomValidator
	renderer       *view.Renderer
}

func NewProfileHandler(profileUsecase usecase.PatientProfileUsecase, validator *validator.CustomValidator, renderer *view.Renderer) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
		renderer:       renderer,
	}
}

func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.GetProfile(r.Context(), currentPatientID(r))
	if err != nil {
		h.renderer.InternalError(w, r)
		return
	}
	h.renderer.Render(w, r, http.StatusOK, "profile", "Mi perfil", profile)
}

func (h *ProfileHandler) EditProfilePage(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.GetProfile(r.Context(), currentPatientID(r))
	if err != nil {
		h.renderer.InternalError(w, r)
		return
	}
	h.renderer.Render(w, r, http.StatusOK, "profile_edit", "Editar perfil", profile)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	const editURL = "/mi-perfil/editar"

	var req dto.UpdateProfileRequest
	if err := decodeForm(r, &req); err != nil {
		redirectWithFlash(w, r, editURL, view.FlashError, formErrorMessage(err))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		redirectWithFlash(w, r, editURL, view.FlashError, h.validator.FirstMessage(err))
		return
	}

	_, err := h.profileUsecase.UpdateProfile(r.Context(), currentPatientID(r), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCurrentPassword):
			redirectWithFlash(w, r, editURL, view.FlashError, "La contraseña actual es incorrecta.")
		case errors.Is(err, usecase.ErrNegativeObstetricCount):
			redirectWithFlash(w, r, editURL, view.FlashError, "Los antecedentes obstétricos no pueden ser negativos.")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			redirectWithFlash(w, r, editURL, view.FlashError, msgInvalidDate)
		default:
			h.renderer.InternalError(w, r)
		}
		return
	}

	redirectWithFlash(w, r, "/mi-perfil", view.FlashSuccess, "Perfil actualizado exitosamente.")
}

func (h *ProfileHandler) Activity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.profileUsecase.GetActivity(r.Context(), currentPatientID(r))
	if err != nil {
		h.renderer.InternalError(w, r)
		return
	}
	h.renderer.Render(w, r, http.StatusOK, "activity", "Actividad", activity)
}
