package usecase

import (
	"context"
	"errors"
	"time"

	"clinica-ginecologica/internal/converter"
	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"
	"clinica-ginecologica/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrHistoryEntryNotFound = errors.New("history entry not found")
)

type HistoryUsecase interface {
	ListHistory(ctx context.Context, patientID int64) (*dto.HistoryListResponse, error)
	GetHistoryEntry(ctx context.Context, patientID, entryID int64) (*dto.HistoryEntryResponse, error)
}

type historyUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	loc         *time.Location
	historyRepo repository.HistoryRepository
	doctorRepo  repository.DoctorRepository
}

func NewHistoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	historyRepo repository.HistoryRepository,
	doctorRepo repository.DoctorRepository,
) HistoryUsecase {
	return &historyUsecase{
		db:          db,
		log:         log,
		loc:         loc,
		historyRepo: historyRepo,
		doctorRepo:  doctorRepo,
	}
}

func (u *historyUsecase) ListHistory(ctx context.Context, patientID int64) (*dto.HistoryListResponse, error) {
	db := u.db.WithContext(ctx)

	entries, err := u.historyRepo.FindByPatient(db, patientID, 0)
	if err != nil {
		u.log.Warnf("Failed to find history for patient %d: %+v", patientID, err)
		return nil, err
	}

	doctors, err := u.doctorRepo.FindByIDs(db, historyDoctorIDs(entries))
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return &dto.HistoryListResponse{
		Entries: converter.HistoryEntriesToResponses(entries, converter.DoctorNames(doctors), u.loc),
		Total:   len(entries),
	}, nil
}

func (u *historyUsecase) GetHistoryEntry(ctx context.Context, patientID, entryID int64) (*dto.HistoryEntryResponse, error) {
	db := u.db.WithContext(ctx)

	entry, err := u.historyRepo.FindByID(db, entryID)
	if err != nil {
		u.log.Warnf("Failed to find history entry %d: %+v", entryID, err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrHistoryEntryNotFound
	}
	if entry.PatientID != patientID {
		return nil, ErrForbidden
	}

	doctor, err := u.doctorRepo.FindByID(db, entry.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", entry.DoctorID, err)
		return nil, err
	}

	doctorName := ""
	if doctor != nil {
		doctorName = doctor.DisplayName()
	}
	return converter.HistoryEntryToResponse(entry, doctorName, u.loc), nil
}

func historyDoctorIDs(entries []entity.HistoryEntry) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for _, e := range entries {
		if _, ok := seen[e.DoctorID]; !ok {
			seen[e.DoctorID] = struct{}{}
			ids = append(ids, e.DoctorID)
		}
	}
	return ids
}
