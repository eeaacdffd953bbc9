package onboarding

// Section patches use pointer fields so callers can distinguish "set to this
// value" from "leave untouched". Applying a patch shallow-merges: nil fields
// persist, non-nil fields overwrite. An all-nil patch is a no-op.

type PersonalPatch struct {
	FirstName      *string
	MiddleName     *string
	LastName       *string
	DateOfBirth    *string
	Gender         *string
	MaritalStatus  *string
	Nationality    *string
	NationalID     *string
	PassportNumber *string
	BloodGroup     *string
	Religion       *string
}

func (p PersonalPatch) apply(d *PersonalDetails) {
	assign(&d.FirstName, p.FirstName)
	assign(&d.MiddleName, p.MiddleName)
	assign(&d.LastName, p.LastName)
	assign(&d.DateOfBirth, p.DateOfBirth)
	assign(&d.Gender, p.Gender)
	assign(&d.MaritalStatus, p.MaritalStatus)
	assign(&d.Nationality, p.Nationality)
	assign(&d.NationalID, p.NationalID)
	assign(&d.PassportNumber, p.PassportNumber)
	assign(&d.BloodGroup, p.BloodGroup)
	assign(&d.Religion, p.Religion)
}

type AddressPatch struct {
	Line       *string
	City       *string
	Province   *string
	PostalCode *string
	Country    *string
}

func (p AddressPatch) apply(a *Address) {
	assign(&a.Line, p.Line)
	assign(&a.City, p.City)
	assign(&a.Province, p.Province)
	assign(&a.PostalCode, p.PostalCode)
	assign(&a.Country, p.Country)
}

type EmergencyContactPatch struct {
	Name         *string
	Relationship *string
	Phone        *string
}

func (p EmergencyContactPatch) apply(c *EmergencyContact) {
	assign(&c.Name, p.Name)
	assign(&c.Relationship, p.Relationship)
	assign(&c.Phone, p.Phone)
}

type ContactPatch struct {
	WorkEmail        *string
	PersonalPhone    *string
	WorkPhone        *string
	CurrentAddress   *AddressPatch
	PermanentAddress *AddressPatch
	LinkedIn         *string
	GitHub           *string
	Emergency        *EmergencyContactPatch
}

func (p ContactPatch) apply(d *ContactDetails) {
	assign(&d.WorkEmail, p.WorkEmail)
	assign(&d.PersonalPhone, p.PersonalPhone)
	assign(&d.WorkPhone, p.WorkPhone)
	if p.CurrentAddress != nil {
		p.CurrentAddress.apply(&d.CurrentAddress)
	}
	if p.PermanentAddress != nil {
		p.PermanentAddress.apply(&d.PermanentAddress)
	}
	assign(&d.LinkedIn, p.LinkedIn)
	assign(&d.GitHub, p.GitHub)
	if p.Emergency != nil {
		p.Emergency.apply(&d.Emergency)
	}
}

type WorkPatch struct {
	EmployeeNumber   *string
	Department       *string
	Position         *string
	Location         *string
	HireDate         *string
	TerminationDate  *string
	EmploymentType   *string
	EmploymentStatus *string
	HoursPerWeek     *float64
	SalaryAmount     *float64
	SalaryCurrency   *string
}

func (p WorkPatch) apply(d *WorkDetails) {
	assign(&d.EmployeeNumber, p.EmployeeNumber)
	assign(&d.Department, p.Department)
	assign(&d.Position, p.Position)
	assign(&d.Location, p.Location)
	assign(&d.HireDate, p.HireDate)
	assign(&d.TerminationDate, p.TerminationDate)
	assign(&d.EmploymentType, p.EmploymentType)
	assign(&d.EmploymentStatus, p.EmploymentStatus)
	assign(&d.HoursPerWeek, p.HoursPerWeek)
	assign(&d.SalaryAmount, p.SalaryAmount)
	assign(&d.SalaryCurrency, p.SalaryCurrency)
}

type CredentialsPatch struct {
	Username          *string
	OneTimePassword   *string
	ConfirmPassword   *string
	PasswordIsOneTime *bool
	PasswordSent      *bool
}

func (p CredentialsPatch) apply(d *AccessCredentials) {
	assign(&d.Username, p.Username)
	assign(&d.OneTimePassword, p.OneTimePassword)
	assign(&d.ConfirmPassword, p.ConfirmPassword)
	assign(&d.PasswordIsOneTime, p.PasswordIsOneTime)
	assign(&d.PasswordSent, p.PasswordSent)
}

type BiometricsPatch struct {
	FingerprintEnrolled *bool
	FaceEnrolled        *bool
	BadgeReference      *string
}

func (p BiometricsPatch) apply(d *Biometrics) {
	assign(&d.FingerprintEnrolled, p.FingerprintEnrolled)
	assign(&d.FaceEnrolled, p.FaceEnrolled)
	assign(&d.BadgeReference, p.BadgeReference)
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
