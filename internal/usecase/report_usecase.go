package usecase

import (
	"context"
	"sort"
	"strconv"
	"time"

	"clinica-ginecologica/internal/delivery/dto"
	"clinica-ginecologica/internal/domain/entity"
	"clinica-ginecologica/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type ReportUsecase interface {
	GetReport(ctx context.Context, patientID int64) (*dto.ReportResponse, error)
}

type reportUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	loc             *time.Location
	appointmentRepo repository.AppointmentRepository
	historyRepo     repository.HistoryRepository
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	appointmentRepo repository.AppointmentRepository,
	historyRepo repository.HistoryRepository,
) ReportUsecase {
	return &reportUsecase{
		db:              db,
		log:             log,
		loc:             loc,
		appointmentRepo: appointmentRepo,
		historyRepo:     historyRepo,
	}
}

// GetReport aggregates the patient's appointment and history statistics.
// The four queries are independent and run concurrently.
func (u *reportUsecase) GetReport(ctx context.Context, patientID int64) (*dto.ReportResponse, error) {
	var (
		total      int64
		byStatus   []entity.StatusCount
		byType     []entity.ConsultationTypeCount
		visitDates []time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	db := u.db.WithContext(gctx)

	g.Go(func() error {
		var err error
		total, err = u.appointmentRepo.CountByPatient(db, patientID)
		return err
	})
	g.Go(func() error {
		var err error
		byStatus, err = u.appointmentRepo.CountByStatus(db, patientID)
		return err
	})
	g.Go(func() error {
		var err error
		byType, err = u.appointmentRepo.CountByConsultationType(db, patientID)
		return err
	})
	g.Go(func() error {
		var err error
		visitDates, err = u.historyRepo.FindConsultationDates(db, patientID)
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to build report for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.ReportResponse{
		TotalAppointments:     total,
		ByStatus:              statusCounts(byStatus),
		ByConsultationType:    consultationTypeCounts(byType),
		HistoryEntriesPerYear: countsPerYear(visitDates, u.loc),
	}, nil
}

// statusCounts lists every status, zero-filled, in lifecycle order.
func statusCounts(rows []entity.StatusCount) []dto.CountResponse {
	totals := make(map[entity.AppointmentStatus]int64, len(rows))
	for _, row := range rows {
		totals[row.Status] = row.Total
	}

	counts := make([]dto.CountResponse, len(entity.AppointmentStatuses))
	for i, status := range entity.AppointmentStatuses {
		counts[i] = dto.CountResponse{Label: string(status), Total: totals[status]}
	}
	return counts
}

func consultationTypeCounts(rows []entity.ConsultationTypeCount) []dto.CountResponse {
	counts := make([]dto.CountResponse, len(rows))
	for i, row := range rows {
		counts[i] = dto.CountResponse{Label: row.ConsultationType, Total: row.Total}
	}
	return counts
}

// countsPerYear groups consultation dates by calendar year in the clinic location, oldest first.
func countsPerYear(dates []time.Time, loc *time.Location) []dto.CountResponse {
	perYear := make(map[int]int64)
	for _, d := range dates {
		perYear[d.In(loc).Year()]++
	}

	years := make([]int, 0, len(perYear))
	for year := range perYear {
		years = append(years, year)
	}
	sort.Ints(years)

	counts := make([]dto.CountResponse, len(years))
	for i, year := range years {
		counts[i] = dto.CountResponse{Label: strconv.Itoa(year), Total: perYear[year]}
	}
	return counts
}
