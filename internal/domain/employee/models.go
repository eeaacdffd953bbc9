package employee

import "time"

// Employee is the persisted document created by an onboarding submission and
// managed through the administration console.
type Employee struct {
	ID                    string    `bson:"_id,omitempty" json:"id"`
	EmployeeNumber        string    `bson:"employeeNumber" json:"employeeNumber"`
	FirstName             string    `bson:"firstName" json:"firstName"`
	MiddleName            string    `bson:"middleName,omitempty" json:"middleName,omitempty"`
	LastName              string    `bson:"lastName" json:"lastName"`
	DateOfBirth           string    `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender                string    `bson:"gender,omitempty" json:"gender,omitempty"`
	MaritalStatus         string    `bson:"maritalStatus,omitempty" json:"maritalStatus,omitempty"`
	Nationality           string    `bson:"nationality,omitempty" json:"nationality,omitempty"`
	NationalID            string    `bson:"nationalId,omitempty" json:"nationalId,omitempty"`
	PassportNumber        string    `bson:"passportNumber,omitempty" json:"passportNumber,omitempty"`
	BloodGroup            string    `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	Religion              string    `bson:"religion,omitempty" json:"religion,omitempty"`
	WorkEmail             string    `bson:"workEmail" json:"workEmail"`
	PersonalPhone         string    `bson:"personalPhone,omitempty" json:"personalPhone,omitempty"`
	WorkPhone             string    `bson:"workPhone,omitempty" json:"workPhone,omitempty"`
	CurrentAddress        Address   `bson:"currentAddress,omitempty" json:"currentAddress"`
	PermanentAddress      Address   `bson:"permanentAddress,omitempty" json:"permanentAddress"`
	LinkedIn              string    `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub                string    `bson:"github,omitempty" json:"github,omitempty"`
	EmergencyContactName  string    `bson:"emergencyContactName,omitempty" json:"emergencyContactName,omitempty"`
	EmergencyContactRel   string    `bson:"emergencyContactRelationship,omitempty" json:"emergencyContactRelationship,omitempty"`
	EmergencyContactPhone string    `bson:"emergencyContactPhone,omitempty" json:"emergencyContactPhone,omitempty"`
	Department            string    `bson:"department,omitempty" json:"department,omitempty"`
	Position              string    `bson:"position,omitempty" json:"position,omitempty"`
	Location              string    `bson:"location,omitempty" json:"location,omitempty"`
	HireDate              string    `bson:"hireDate,omitempty" json:"hireDate,omitempty"`
	TerminationDate       string    `bson:"terminationDate,omitempty" json:"terminationDate,omitempty"`
	EmploymentType        string    `bson:"employmentType,omitempty" json:"employmentType,omitempty"`
	EmploymentStatus      string    `bson:"employmentStatus,omitempty" json:"employmentStatus,omitempty"`
	HoursPerWeek          float64   `bson:"hoursPerWeek,omitempty" json:"hoursPerWeek,omitempty"`
	SalaryAmount          float64   `bson:"salaryAmount,omitempty" json:"salaryAmount,omitempty"`
	SalaryCurrency        string    `bson:"salaryCurrency,omitempty" json:"salaryCurrency,omitempty"`
	FingerprintEnrolled   bool      `bson:"fingerprintEnrolled,omitempty" json:"fingerprintEnrolled,omitempty"`
	FaceEnrolled          bool      `bson:"faceEnrolled,omitempty" json:"faceEnrolled,omitempty"`
	BadgeReference        string    `bson:"badgeReference,omitempty" json:"badgeReference,omitempty"`
	CreatedAt             time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time `bson:"updatedAt" json:"updatedAt"`
}

type Address struct {
	Line       string `bson:"line,omitempty" json:"line,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	Province   string `bson:"province,omitempty" json:"province,omitempty"`
	PostalCode string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
}

// ListFilter narrows employee listings in the administration console.
type ListFilter struct {
	Department     string
	EmploymentType string
	Status         string
	Search         string
	Limit          int
	Offset         int
}
