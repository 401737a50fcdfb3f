package converter

import (
	"time"

	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"
)

// AuditLogToResponse converts a AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog, loc *time.Location) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	local := log.CreatedAt.In(loc)
	return &dto.AuditLogResponse{
		ID:        log.ID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: local,
		Date:      local.Format(DisplayDateLayout),
		Time:      local.Format(DisplayTimeLayout),
	}
}

// AuditLogsToResponses converts a slice of AuditLog entities to slice of AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog, loc *time.Location) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i], loc)
	}
	return responses
}
