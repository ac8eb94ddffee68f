package usecase_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"odontoflash-api/config"
	"odontoflash-api/internal/delivery/dto"
	"odontoflash-api/internal/domain/entity"
	"odontoflash-api/internal/infrastructure/cache"
	"odontoflash-api/internal/infrastructure/database"
	"odontoflash-api/internal/repository"
	"odontoflash-api/internal/service"
	"odontoflash-api/internal/usecase"
	"odontoflash-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Tests here run against a real Postgres and Redis; they skip when the
// environment is not configured.

type testEnv struct {
	auth        usecase.AuthUsecase
	appointment usecase.AppointmentUsecase
	review      usecase.ReviewUsecase
	directory   usecase.DirectoryUsecase
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	_ = godotenv.Load("../../.env")
	if os.Getenv("DB_HOST") == "" || os.Getenv("REDIS_HOST") == "" {
		t.Skip("DB_HOST or REDIS_HOST not set")
	}

	cfg := &config.Config{
		DB: config.DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
		Redis: config.RedisConfig{
			Host: os.Getenv("REDIS_HOST"),
			Port: os.Getenv("REDIS_PORT"),
		},
		JWT: config.JWTConfig{Secret: "integration-test-secret", Expiry: time.Hour},
	}

	if err := database.RunMigrations(cfg.DB); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		t.Fatalf("redis: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		redisClient.Close()
	})

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	userRepo := repository.NewUserRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	studentProfileRepo := repository.NewStudentProfileRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	reviewRepo := repository.NewReviewRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditLogRepo)
	ratingCache := service.NewRatingCacheService(db, redisClient, log, reviewRepo)
	jwtService := jwt.NewJWTService(cfg.JWT)

	return &testEnv{
		auth:        usecase.NewAuthUsecase(db, log, userRepo, patientProfileRepo, studentProfileRepo, jwtService, redisClient, auditService),
		appointment: usecase.NewAppointmentUsecase(db, log, appointmentRepo, userRepo, auditService),
		review:      usecase.NewReviewUsecase(db, log, reviewRepo, userRepo, ratingCache, auditService),
		directory:   usecase.NewDirectoryUsecase(db, log, patientProfileRepo, studentProfileRepo, ratingCache),
	}
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@test.local", prefix, uuid.New().String()[:8])
}

func registerPatient(t *testing.T, env *testEnv) (*dto.UserResponse, string) {
	t.Helper()
	email := uniqueEmail("patient")
	user, err := env.auth.Register(context.Background(), &dto.RegisterRequest{
		Email:     email,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "Patient",
		Phone:     "+34 600 000 001",
		Address:   "Calle Test 1",
		BirthDate: "1990-01-15",
		UserType:  entity.UserTypePatient,
		PatientData: &dto.RegisterPatientData{
			DentalNeeds: "Limpieza",
		},
	})
	if err != nil {
		t.Fatalf("register patient: %v", err)
	}
	return user, email
}

func registerStudent(t *testing.T, env *testEnv) (*dto.UserResponse, string) {
	t.Helper()
	email := uniqueEmail("student")
	user, err := env.auth.Register(context.Background(), &dto.RegisterRequest{
		Email:     email,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "Student",
		Phone:     "+34 600 000 002",
		Address:   "Calle Test 2",
		BirthDate: "1999-06-20",
		UserType:  entity.UserTypeStudent,
		StudentData: &dto.RegisterStudentData{
			University:     "Universidad Test",
			StudentID:      "UT-" + uuid.New().String()[:8],
			Semester:       7,
			Specialization: "Odontología General",
		},
	})
	if err != nil {
		t.Fatalf("register student: %v", err)
	}
	return user, email
}

func createAppointment(t *testing.T, env *testEnv, studentID, patientID uuid.UUID) *dto.AppointmentResponse {
	t.Helper()
	price := 50.0
	appt, err := env.appointment.Create(context.Background(), &dto.CreateAppointmentRequest{
		StudentID: studentID.String(),
		PatientID: patientID.String(),
		Title:     "Limpieza dental",
		Date:      time.Now().UTC().Add(48 * time.Hour).Format(time.RFC3339),
		Duration:  60,
		Price:     &price,
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return appt
}

// ----- auth -----

func TestRegisterDuplicateEmail(t *testing.T) {
	env := setup(t)
	_, email := registerPatient(t, env)

	_, err := env.auth.Register(context.Background(), &dto.RegisterRequest{
		Email:     email,
		Password:  "password123",
		FirstName: "Other",
		LastName:  "Person",
		Phone:     "+34 600 000 003",
		Address:   "Calle Test 3",
		BirthDate: "1992-03-10",
		UserType:  entity.UserTypePatient,
		PatientData: &dto.RegisterPatientData{
			DentalNeeds: "Revisión",
		},
	})
	if err != usecase.ErrEmailAlreadyExists {
		t.Errorf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestRegisterProfileMismatch(t *testing.T) {
	env := setup(t)

	_, err := env.auth.Register(context.Background(), &dto.RegisterRequest{
		Email:     uniqueEmail("mismatch"),
		Password:  "password123",
		FirstName: "No",
		LastName:  "Profile",
		Phone:     "+34 600 000 004",
		Address:   "Calle Test 4",
		BirthDate: "1995-09-05",
		UserType:  entity.UserTypePatient,
		StudentData: &dto.RegisterStudentData{
			University:     "Universidad Test",
			StudentID:      "UT-0000",
			Semester:       3,
			Specialization: "Endodoncia",
		},
	})
	if err != usecase.ErrPatientDataRequired {
		t.Errorf("err = %v, want ErrPatientDataRequired", err)
	}
}

func TestLoginCollapsesFailureModes(t *testing.T) {
	env := setup(t)
	_, email := registerPatient(t, env)

	// wrong password
	_, err := env.auth.Login(context.Background(), &dto.LoginRequest{
		Email:    email,
		Password: "wrong-password",
	})
	if err != usecase.ErrInvalidCredentials {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}

	// unknown email yields the same error
	_, err = env.auth.Login(context.Background(), &dto.LoginRequest{
		Email:    uniqueEmail("ghost"),
		Password: "password123",
	})
	if err != usecase.ErrInvalidCredentials {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginAndGetCurrentUser(t *testing.T) {
	env := setup(t)
	user, email := registerPatient(t, env)

	res, err := env.auth.Login(context.Background(), &dto.LoginRequest{
		Email:    email,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token == "" {
		t.Fatal("empty token")
	}
	if res.User.ID != user.ID {
		t.Errorf("user id = %s, want %s", res.User.ID, user.ID)
	}

	me, err := env.auth.GetCurrentUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get current user: %v", err)
	}
	if me.PatientProfile == nil {
		t.Error("patient profile missing from /me projection")
	}
	if me.StudentProfile != nil {
		t.Error("student profile should be absent for a patient")
	}
}

// ----- appointments -----

func TestCreateAppointmentChecksParticipants(t *testing.T) {
	env := setup(t)
	patient, _ := registerPatient(t, env)
	student, _ := registerStudent(t, env)

	// roles swapped
	price := 30.0
	_, err := env.appointment.Create(context.Background(), &dto.CreateAppointmentRequest{
		StudentID: patient.ID.String(),
		PatientID: student.ID.String(),
		Title:     "Roles al revés",
		Date:      time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
		Duration:  30,
		Price:     &price,
	})
	if err != usecase.ErrParticipantTypeWrong {
		t.Errorf("err = %v, want ErrParticipantTypeWrong", err)
	}

	// unknown participant
	_, err = env.appointment.Create(context.Background(), &dto.CreateAppointmentRequest{
		StudentID: uuid.New().String(),
		PatientID: patient.ID.String(),
		Title:     "Estudiante fantasma",
		Date:      time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
		Duration:  30,
		Price:     &price,
	})
	if err != usecase.ErrParticipantNotFound {
		t.Errorf("err = %v, want ErrParticipantNotFound", err)
	}
}

func TestCreateAppointmentRequiresPriceUnlessFree(t *testing.T) {
	env := setup(t)
	patient, _ := registerPatient(t, env)
	student, _ := registerStudent(t, env)

	_, err := env.appointment.Create(context.Background(), &dto.CreateAppointmentRequest{
		StudentID: student.ID.String(),
		PatientID: patient.ID.String(),
		Title:     "Sin precio",
		Date:      time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
		Duration:  30,
	})
	if err != usecase.ErrPriceRequired {
		t.Errorf("err = %v, want ErrPriceRequired", err)
	}

	free, err := env.appointment.Create(context.Background(), &dto.CreateAppointmentRequest{
		StudentID: student.ID.String(),
		PatientID: patient.ID.String(),
		Title:     "Consulta gratuita",
		Date:      time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
		Duration:  30,
		IsFree:    true,
	})
	if err != nil {
		t.Fatalf("create free appointment: %v", err)
	}
	if free.EffectivePrice != 0 {
		t.Errorf("effective price = %v, want 0", free.EffectivePrice)
	}
}

func TestAppointmentDiscountApplied(t *testing.T) {
	env := setup(t)
	patient, _ := registerPatient(t, env)
	student, _ := registerStudent(t, env)

	price := 100.0
	discount := 20
	appt, err := env.appointment.Create(context.Background(), &dto.CreateAppointmentRequest{
		StudentID: student.ID.String(),
		PatientID: patient.ID.String(),
		Title:     "Con descuento",
		Date:      time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
		Duration:  45,
		Price:     &price,
		Discount:  &discount,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if appt.EffectivePrice != 80 {
		t.Errorf("effective price = %v, want 80", appt.EffectivePrice)
	}
}

func TestListAppointmentsFiltersByParticipant(t *testing.T) {
	env := setup(t)
	patient, _ := registerPatient(t, env)
	student, _ := registerStudent(t, env)
	createAppointment(t, env, student.ID, patient.ID)
	createAppointment(t, env, student.ID, patient.ID)

	appts, total, err := env.appointment.List(context.Background(), &usecase.ListAppointmentsQuery{
		UserID:   student.ID.String(),
		UserType: "STUDENT",
		Page:     1,
		Limit:    10,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	for _, a := range appts {
		if a.Student == nil || a.Student.ID != student.ID {
			t.Errorf("appointment %s not owned by the student filter", a.ID)
		}
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	env := setup(t)
	patient, _ := registerPatient(t, env)
	student, _ := registerStudent(t, env)
	appt := createAppointment(t, env, student.ID, patient.ID)

	updated, err := env.appointment.UpdateStatus(context.Background(), student.ID, appt.ID, "CONFIRMED")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != "CONFIRMED" {
		t.Errorf("status = %s, want CONFIRMED", updated.Status)
	}

	_, err = env.appointment.UpdateStatus(context.Background(), student.ID, appt.ID, "FINISHED")
	if err != usecase.ErrInvalidStatus {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}

	_, err = env.appointment.UpdateStatus(context.Background(), student.ID, uuid.New(), "CANCELLED")
	if err != usecase.ErrAppointmentNotFound {
		t.Errorf("err = %v, want ErrAppointmentNotFound", err)
	}
}

// ----- reviews -----

func TestReviewDuplicateForAppointment(t *testing.T) {
	env := setup(t)
	patient, _ := registerPatient(t, env)
	student, _ := registerStudent(t, env)
	appt := createAppointment(t, env, student.ID, patient.ID)

	apptID := appt.ID.String()
	first, err := env.review.Create(context.Background(), &dto.CreateReviewRequest{
		ReviewerID:    patient.ID.String(),
		ReceiverID:    student.ID.String(),
		AppointmentID: &apptID,
		Rating:        5,
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if first.Rating != 5 {
		t.Errorf("rating = %d, want 5", first.Rating)
	}

	_, err = env.review.Create(context.Background(), &dto.CreateReviewRequest{
		ReviewerID:    patient.ID.String(),
		ReceiverID:    student.ID.String(),
		AppointmentID: &apptID,
		Rating:        3,
	})
	if err != usecase.ErrReviewAlreadyExists {
		t.Errorf("err = %v, want ErrReviewAlreadyExists", err)
	}
}

func TestReviewWithoutAppointmentRepeats(t *testing.T) {
	env := setup(t)
	patient, _ := registerPatient(t, env)
	student, _ := registerStudent(t, env)

	// reviews not tied to an appointment are not deduplicated
	for i := 0; i < 2; i++ {
		_, err := env.review.Create(context.Background(), &dto.CreateReviewRequest{
			ReviewerID: patient.ID.String(),
			ReceiverID: student.ID.String(),
			Rating:     4,
		})
		if err != nil {
			t.Fatalf("create review %d: %v", i+1, err)
		}
	}
}

func TestStudentDirectoryCarriesRatings(t *testing.T) {
	env := setup(t)
	patient, _ := registerPatient(t, env)
	student, _ := registerStudent(t, env)
	appt := createAppointment(t, env, student.ID, patient.ID)

	apptID := appt.ID.String()
	if _, err := env.review.Create(context.Background(), &dto.CreateReviewRequest{
		ReviewerID:    patient.ID.String(),
		ReceiverID:    student.ID.String(),
		AppointmentID: &apptID,
		Rating:        5,
	}); err != nil {
		t.Fatalf("create review: %v", err)
	}

	entries, _, err := env.directory.ListStudents(context.Background(), &usecase.ListStudentsQuery{
		Page:  1,
		Limit: 100,
	})
	if err != nil {
		t.Fatalf("list students: %v", err)
	}

	found := false
	for _, e := range entries {
		if e.ID == student.ID {
			found = true
			if e.TotalReviews < 1 {
				t.Errorf("totalReviews = %d, want >= 1", e.TotalReviews)
			}
			if e.AverageRating < 1 || e.AverageRating > 5 {
				t.Errorf("averageRating = %v out of range", e.AverageRating)
			}
		}
	}
	if !found && len(entries) == 100 {
		t.Skip("student not on the first directory page")
	}
	if !found {
		t.Error("registered student missing from directory")
	}
}
