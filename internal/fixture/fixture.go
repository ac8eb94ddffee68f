// Package fixture seeds a development database with a small set of demo
// accounts, appointments and reviews so the API is browsable right after
// startup. Seeding is idempotent: it does nothing when any user exists.
package fixture

import (
	"time"

	"odontoflash-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const demoPassword = "password123"

type demoUser struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Address   string
	BirthDate time.Time
	UserType  entity.UserType
	Patient   *entity.PatientProfile
	Student   *entity.StudentProfile
}

func demoUsers() []demoUser {
	medicalHistory := "Hipertensión controlada"
	return []demoUser{
		{
			Email:     "maria.gonzalez@email.com",
			FirstName: "María",
			LastName:  "González",
			Phone:     "+34 612 345 678",
			Address:   "Calle Mayor 15, Madrid",
			BirthDate: time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
			UserType:  entity.UserTypePatient,
			Patient: &entity.PatientProfile{
				DentalNeeds: "Limpieza dental y revisión general",
				IsActive:    true,
			},
		},
		{
			Email:     "carlos.rodriguez@universidad.edu",
			FirstName: "Carlos",
			LastName:  "Rodríguez",
			Phone:     "+34 623 456 789",
			Address:   "Avenida de la Universidad 3, Madrid",
			BirthDate: time.Date(1999, 11, 3, 0, 0, 0, 0, time.UTC),
			UserType:  entity.UserTypeStudent,
			Student: &entity.StudentProfile{
				University:     "Universidad Complutense de Madrid",
				StudentID:      "UCM-2021-4587",
				Semester:       8,
				Specialization: "Odontología General",
				IsActive:       true,
			},
		},
		{
			Email:     "laura.martinez@email.com",
			FirstName: "Laura",
			LastName:  "Martínez",
			Phone:     "+34 634 567 890",
			Address:   "Plaza España 7, Sevilla",
			BirthDate: time.Date(1985, 2, 24, 0, 0, 0, 0, time.UTC),
			UserType:  entity.UserTypePatient,
			Patient: &entity.PatientProfile{
				DentalNeeds:    "Tratamiento de ortodoncia",
				MedicalHistory: &medicalHistory,
				IsActive:       true,
			},
		},
		{
			Email:     "miguel.sanchez@universidad.edu",
			FirstName: "Miguel",
			LastName:  "Sánchez",
			Phone:     "+34 645 678 901",
			Address:   "Calle Sierpes 22, Sevilla",
			BirthDate: time.Date(2000, 7, 18, 0, 0, 0, 0, time.UTC),
			UserType:  entity.UserTypeStudent,
			Student: &entity.StudentProfile{
				University:     "Universidad de Sevilla",
				StudentID:      "US-2022-1123",
				Semester:       6,
				Specialization: "Endodoncia",
				IsActive:       true,
			},
		},
	}
}

// Seed populates demo data when the database holds no users.
func Seed(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 12)
	if err != nil {
		return err
	}

	tx := db.Begin()
	defer tx.Rollback()

	users := make([]*entity.User, 0, 4)
	for _, d := range demoUsers() {
		user := &entity.User{
			ID:        uuid.New(),
			Email:     d.Email,
			Password:  string(hash),
			FirstName: d.FirstName,
			LastName:  d.LastName,
			Phone:     d.Phone,
			Address:   d.Address,
			BirthDate: d.BirthDate,
			UserType:  d.UserType,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if d.Patient != nil {
			d.Patient.UserID = user.ID
			if err := tx.Create(d.Patient).Error; err != nil {
				return err
			}
		}
		if d.Student != nil {
			d.Student.UserID = user.ID
			if err := tx.Create(d.Student).Error; err != nil {
				return err
			}
		}
		users = append(users, user)
	}

	// users[0]/users[2] are patients, users[1]/users[3] are students.
	price := decimal.NewFromInt(50)
	discount := 20
	cleaningDesc := "Limpieza y revisión general"
	orthoDesc := "Primera valoración"
	completed := &entity.Appointment{
		ID:          uuid.New(),
		StudentID:   users[1].ID,
		PatientID:   users[0].ID,
		Title:       "Limpieza dental",
		Description: &cleaningDesc,
		Date:        time.Now().UTC().AddDate(0, 0, -14),
		Duration:    60,
		Status:      entity.AppointmentStatusCompleted,
		Price:       &price,
		Discount:    &discount,
		IsFree:      false,
	}
	scheduled := &entity.Appointment{
		ID:          uuid.New(),
		StudentID:   users[3].ID,
		PatientID:   users[2].ID,
		Title:       "Consulta de ortodoncia",
		Description: &orthoDesc,
		Date:        time.Now().UTC().AddDate(0, 0, 7),
		Duration:    90,
		Status:      entity.AppointmentStatusScheduled,
		IsFree:      true,
	}
	for _, a := range []*entity.Appointment{completed, scheduled} {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
	}

	comment := "Excelente trato, muy profesional."
	review := &entity.Review{
		ID:            uuid.New(),
		ReviewerID:    users[0].ID,
		ReceiverID:    users[1].ID,
		AppointmentID: &completed.ID,
		Rating:        5,
		Comment:       &comment,
	}
	if err := tx.Create(review).Error; err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	log.Infof("Seeded %d demo users", len(users))
	return nil
}
