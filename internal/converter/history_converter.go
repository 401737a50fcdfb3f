package converter

import (
	"time"

	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func HistoryEntryToResponse(entry *entity.HistoryEntry, doctorName string, loc *time.Location) *dto.HistoryEntryResponse {
	if entry == nil {
		return nil
	}

	return &dto.HistoryEntryResponse{
		ID:               entry.ID,
		PatientID:        entry.PatientID,
		DoctorID:         entry.DoctorID,
		DoctorName:       doctorName,
		AppointmentID:    entry.AppointmentID,
		ConsultationDate: entry.ConsultationDate.In(loc).Format(DisplayDateLayout),
		ConsultationType: entry.ConsultationType,
		Reason:           entry.Reason,
		Symptoms:         entry.Symptoms,
		PhysicalExam:     entry.PhysicalExam,
		Diagnosis:        entry.Diagnosis,
		Treatment:        entry.Treatment,
		WeightKg:         formatMeasure(entry.WeightKg, 2),
		HeightCm:         formatMeasure(entry.HeightCm, 2),
		BloodPressure:    entry.BloodPressure,
		TemperatureC:     formatMeasure(entry.TemperatureC, 1),
		StudiesRequested: entry.StudiesRequested,
		StudyResults:     entry.StudyResults,
		Observations:     entry.Observations,
		FollowUpDate:     formatCalendarDate(entry.FollowUpDate, DisplayDateLayout),
	}
}

func HistoryEntriesToResponses(entries []entity.HistoryEntry, doctorNames map[int64]string, loc *time.Location) []dto.HistoryEntryResponse {
	responses := make([]dto.HistoryEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *HistoryEntryToResponse(&entries[i], doctorNames[entries[i].DoctorID], loc)
	}
	return responses
}

func formatMeasure(value decimal.NullDecimal, places int32) string {
	if !value.Valid {
		return ""
	}
	return value.Decimal.StringFixed(places)
}
