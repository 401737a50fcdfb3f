// Package testutil builds in-process stores for integration-style tests.
package testutil

import (
	"fmt"
	"io"
	"testing"
	"time"
	_ "time/tzdata"

	"clinica-ginecologica/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with the full schema.
// A single connection keeps every query (and every transaction) on the same memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(entity.Models()...))
	return db
}

// NewRedis starts a miniredis server and returns it with a connected client.
func NewRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return server, client
}

// NewLogger returns a logger that discards output.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Location is the clinic timezone used across tests.
func Location(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)
	return loc
}

// CreatePatient inserts an active patient with the given email and national ID.
func CreatePatient(t *testing.T, db *gorm.DB, email, nationalID string) *entity.Patient {
	t.Helper()

	patient := &entity.Patient{
		Email:        email,
		PasswordHash: "x",
		FirstName:    "Lucía",
		LastName:     "Martínez",
		NationalID:   nationalID,
		BirthDate:    time.Date(1990, time.May, 14, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
	}
	require.NoError(t, db.Create(patient).Error)
	return patient
}

// CreateDoctor inserts an active doctor.
func CreateDoctor(t *testing.T, db *gorm.DB, firstName, lastName string) *entity.Doctor {
	t.Helper()

	doctor := &entity.Doctor{
		FirstName: firstName,
		LastName:  lastName,
		Specialty: entity.DefaultSpecialty,
		IsActive:  true,
	}
	require.NoError(t, db.Create(doctor).Error)
	return doctor
}
