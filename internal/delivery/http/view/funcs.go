package view

import (
	"html/template"

	"clinica-ginecologica/internal/domain/entity"
)

var templateFuncs = template.FuncMap{
	"statusLabel":       statusLabel,
	"statusClass":       statusClass,
	"reminderTypeLabel": reminderTypeLabel,
	"reminderLabel":     reminderStatusLabel,
	"actionLabel":       actionLabel,
	"bloodTypes":        func() []string { return bloodTypes },
}

var bloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

var statusLabels = map[string]string{
	string(entity.AppointmentStatusPending):   "Pendiente",
	string(entity.AppointmentStatusConfirmed): "Confirmada",
	string(entity.AppointmentStatusCompleted): "Completada",
	string(entity.AppointmentStatusCancelled): "Cancelada",
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

func statusClass(status string) string {
	switch entity.AppointmentStatus(status) {
	case entity.AppointmentStatusPending:
		return "warning"
	case entity.AppointmentStatusConfirmed:
		return "info"
	case entity.AppointmentStatusCompleted:
		return "success"
	default:
		return "secondary"
	}
}

var reminderTypeLabels = map[string]string{
	entity.ReminderTypeAppointment: "Cita",
	entity.ReminderTypeMedication:  "Medicamento",
	entity.ReminderTypeStudy:       "Estudio",
	entity.ReminderTypeCheckup:     "Control",
}

func reminderTypeLabel(t string) string {
	if label, ok := reminderTypeLabels[t]; ok {
		return label
	}
	return t
}

func reminderStatusLabel(status string) string {
	switch entity.ReminderStatus(status) {
	case entity.ReminderStatusActive:
		return "Activo"
	case entity.ReminderStatusSent:
		return "Enviado"
	case entity.ReminderStatusCompleted:
		return "Completado"
	default:
		return status
	}
}

var actionLabels = map[string]string{
	entity.AuditActionPatientRegister:   "Registro de cuenta",
	entity.AuditActionPatientLogin:      "Inicio de sesión",
	entity.AuditActionProfileUpdate:     "Actualización de perfil",
	entity.AuditActionAppointmentCreate: "Cita agendada",
	entity.AuditActionAppointmentCancel: "Cita cancelada",
	entity.AuditActionReminderCreate:    "Recordatorio creado",
	entity.AuditActionReminderComplete:  "Recordatorio completado",
}

func actionLabel(action string) string {
	if label, ok := actionLabels[action]; ok {
		return label
	}
	return action
}
