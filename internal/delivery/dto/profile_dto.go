package dto

type PatientProfileResponse struct {
	DentalNeeds    string  `json:"dentalNeeds"`
	MedicalHistory *string `json:"medicalHistory,omitempty"`
}

type StudentProfileResponse struct {
	University     string `json:"university"`
	StudentID      string `json:"studentId"`
	Semester       int    `json:"semester"`
	Specialization string `json:"specialization"`
}

// PatientDirectoryEntry is one row of GET /api/patients.
type PatientDirectoryEntry struct {
	UserResponse
	Phone          string                 `json:"phone"`
	Address        string                 `json:"address"`
	AverageRating  float64                `json:"averageRating"`
	TotalReviews   int64                  `json:"totalReviews"`
	PatientProfile PatientProfileResponse `json:"patientProfile"`
}

// StudentDirectoryEntry is one row of GET /api/students.
type StudentDirectoryEntry struct {
	UserResponse
	Phone          string                 `json:"phone"`
	Address        string                 `json:"address"`
	AverageRating  float64                `json:"averageRating"`
	TotalReviews   int64                  `json:"totalReviews"`
	StudentProfile StudentProfileResponse `json:"studentProfile"`
}
