package usecase

import (
	"context"
	"errors"
	"time"

	"odontoflash-api/internal/converter"
	"odontoflash-api/internal/delivery/dto"
	"odontoflash-api/internal/domain/entity"
	"odontoflash-api/internal/domain/repository"
	"odontoflash-api/internal/service"
	"odontoflash-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPatientDataRequired = errors.New("patientData is required for PATIENT registration")
	ErrStudentDataRequired = errors.New("studentData is required for STUDENT registration")
	ErrInvalidBirthDate    = errors.New("invalid birth date format, use YYYY-MM-DD")
	ErrUserNotFound        = errors.New("user not found")
)

// bcryptCost matches the work factor the stored hashes were created with.
const bcryptCost = 12

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, tokenID string) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.CurrentUserResponse, error)
}

type authUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
	studentProfileRepo repository.StudentProfileRepository
	jwtService         *jwt.JWTService
	redisClient        *redis.Client
	auditService       service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	studentProfileRepo repository.StudentProfileRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
		studentProfileRepo: studentProfileRepo,
		jwtService:         jwtService,
		redisClient:        redisClient,
		auditService:       auditService,
	}
}

// Register creates the user plus its type-matching profile in one
// transaction. The profile variant must match UserType.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	switch req.UserType {
	case entity.UserTypePatient:
		if req.PatientData == nil {
			return nil, ErrPatientDataRequired
		}
	case entity.UserTypeStudent:
		if req.StudentData == nil {
			return nil, ErrStudentDataRequired
		}
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Email:     req.Email,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		BirthDate: birthDate,
		UserType:  req.UserType,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	switch req.UserType {
	case entity.UserTypePatient:
		profile := &entity.PatientProfile{
			UserID:         user.ID,
			DentalNeeds:    req.PatientData.DentalNeeds,
			MedicalHistory: req.PatientData.MedicalHistory,
			IsActive:       true,
		}
		if err := u.patientProfileRepo.Create(tx, profile); err != nil {
			u.log.Warnf("Failed to create patient profile: %+v", err)
			return nil, err
		}
	case entity.UserTypeStudent:
		profile := &entity.StudentProfile{
			UserID:         user.ID,
			University:     req.StudentData.University,
			StudentID:      req.StudentData.StudentID,
			Semester:       req.StudentData.Semester,
			Specialization: req.StudentData.Specialization,
			IsActive:       true,
		}
		if err := u.studentProfileRepo.Create(tx, profile); err != nil {
			u.log.Warnf("Failed to create student profile: %+v", err)
			return nil, err
		}
	}

	u.auditService.Record(tx, &user.ID, entity.AuditActionUserRegister, entity.JSON{
		"email":    user.Email,
		"userType": string(user.UserType),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit registration: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// Login verifies credentials and issues a session token. An unknown email
// and a wrong password produce the same error so callers cannot enumerate
// accounts.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, tokenID, err := u.jwtService.Generate(user)
	if err != nil {
		u.log.Warnf("Failed to sign session token: %+v", err)
		return nil, err
	}

	sessionKey := jwt.SessionKey(user.ID, tokenID)
	if err := u.redisClient.Set(ctx, sessionKey, "valid", u.jwtService.Expiry()).Err(); err != nil {
		u.log.Warnf("Failed to store session in Redis: %+v", err)
		return nil, err
	}

	u.auditService.Record(u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin, entity.JSON{
		"email": user.Email,
	})

	return &dto.LoginResponse{
		User:  converter.UserToResponse(user),
		Token: token,
	}, nil
}

// Logout revokes the session token id in Redis.
func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if err := u.redisClient.Del(ctx, jwt.SessionKey(userID, tokenID)).Err(); err != nil {
		u.log.Warnf("Failed to revoke session: %+v", err)
		return err
	}

	u.auditService.Record(u.db.WithContext(ctx), &userID, entity.AuditActionUserLogout, nil)
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.CurrentUserResponse, error) {
	user, err := u.userRepo.FindByIDWithProfile(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToCurrentUserResponse(user), nil
}
