package converter

import (
	"odontoflash-api/internal/delivery/dto"
	"odontoflash-api/internal/domain/entity"
)

// UserToResponse projects a User into the public shape (no password hash).
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserType:  user.UserType,
	}
}

// UserToCurrentUserResponse builds the /auth/me projection with the profile
// variant attached.
func UserToCurrentUserResponse(user *entity.User) *dto.CurrentUserResponse {
	if user == nil {
		return nil
	}
	resp := &dto.CurrentUserResponse{
		UserResponse: *UserToResponse(user),
		Phone:        user.Phone,
		Address:      user.Address,
		BirthDate:    user.BirthDate.Format("2006-01-02"),
	}
	if user.PatientProfile != nil {
		resp.PatientProfile = PatientProfileToResponse(user.PatientProfile)
	}
	if user.StudentProfile != nil {
		resp.StudentProfile = StudentProfileToResponse(user.StudentProfile)
	}
	return resp
}

func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}
	return &dto.PatientProfileResponse{
		DentalNeeds:    profile.DentalNeeds,
		MedicalHistory: profile.MedicalHistory,
	}
}

func StudentProfileToResponse(profile *entity.StudentProfile) *dto.StudentProfileResponse {
	if profile == nil {
		return nil
	}
	return &dto.StudentProfileResponse{
		University:     profile.University,
		StudentID:      profile.StudentID,
		Semester:       profile.Semester,
		Specialization: profile.Specialization,
	}
}
