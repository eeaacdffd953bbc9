package onboarding

// Record is the aggregate in-progress onboarding entity. It is owned
// exclusively by the Store; views read copies and route every mutation
// through the patch operations.
type Record struct {
	Personal    PersonalDetails   `json:"personalDetails"`
	Contact     ContactDetails    `json:"contactDetails"`
	Work        WorkDetails       `json:"workDetails"`
	Credentials AccessCredentials `json:"accessCredentials"`
	Biometrics  Biometrics        `json:"biometrics"`
}

type PersonalDetails struct {
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName"`
	LastName       string `json:"lastName"`
	DateOfBirth    string `json:"dateOfBirth"`
	Gender         string `json:"gender"`
	MaritalStatus  string `json:"maritalStatus"`
	Nationality    string `json:"nationality"`
	NationalID     string `json:"nationalId"`
	PassportNumber string `json:"passportNumber"`
	BloodGroup     string `json:"bloodGroup"`
	Religion       string `json:"religion"`
}

type Address struct {
	Line       string `json:"line"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type ContactDetails struct {
	WorkEmail        string           `json:"workEmail"`
	PersonalPhone    string           `json:"personalPhone"`
	WorkPhone        string           `json:"workPhone"`
	CurrentAddress   Address          `json:"currentAddress"`
	PermanentAddress Address          `json:"permanentAddress"`
	LinkedIn         string           `json:"linkedin"`
	GitHub           string           `json:"github"`
	Emergency        EmergencyContact `json:"emergencyContact"`
}

// Employment types recognised by the work-details step.
const (
	EmploymentFullTime = "full-time"
	EmploymentPartTime = "part-time"
	EmploymentContract = "contract"
	EmploymentIntern   = "intern"
)

type WorkDetails struct {
	EmployeeNumber   string  `json:"employeeNumber"`
	Department       string  `json:"department"`
	Position         string  `json:"position"`
	Location         string  `json:"location"`
	HireDate         string  `json:"hireDate"`
	TerminationDate  string  `json:"terminationDate"`
	EmploymentType   string  `json:"employmentType"`
	EmploymentStatus string  `json:"employmentStatus"`
	HoursPerWeek     float64 `json:"hoursPerWeek"`
	SalaryAmount     float64 `json:"salaryAmount"`
	SalaryCurrency   string  `json:"salaryCurrency"`
}

type AccessCredentials struct {
	Username          string `json:"username"`
	OneTimePassword   string `json:"oneTimePassword"`
	ConfirmPassword   string `json:"confirmPassword"`
	PasswordIsOneTime bool   `json:"passwordIsOneTime"`
	PasswordSent      bool   `json:"passwordSent"`
}

// Biometrics holds enrollment markers only; capture itself is out of scope
// for this administrative flow.
type Biometrics struct {
	FingerprintEnrolled bool   `json:"fingerprintEnrolled"`
	FaceEnrolled        bool   `json:"faceEnrolled"`
	BadgeReference      string `json:"badgeReference"`
}

// NewRecord returns the documented initial (empty) record.
func NewRecord() Record {
	return Record{}
}
