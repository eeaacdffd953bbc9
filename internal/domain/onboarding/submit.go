package onboarding

import (
	"context"
	"errors"
	"time"
)

// ErrSubmissionInFlight is returned when a submission is already outstanding.
// The UI disables the submit control, so hitting this means a caller bypassed
// the guard.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// Payload is the flat wire shape the submission endpoint expects. Keeping it
// a dedicated type isolates the internal record layout from the external
// contract: renaming a record field without updating the mapping fails to
// compile instead of silently dropping data.
type Payload struct {
	FirstName             string  `json:"firstName"`
	MiddleName            string  `json:"middleName,omitempty"`
	LastName              string  `json:"lastName"`
	DateOfBirth           string  `json:"dateOfBirth"`
	Gender                string  `json:"gender"`
	MaritalStatus         string  `json:"maritalStatus"`
	Nationality           string  `json:"nationality"`
	NationalID            string  `json:"nationalId"`
	PassportNumber        string  `json:"passportNumber,omitempty"`
	BloodGroup            string  `json:"bloodGroup,omitempty"`
	Religion              string  `json:"religion,omitempty"`
	WorkEmail             string  `json:"workEmail"`
	PersonalPhone         string  `json:"personalPhone"`
	WorkPhone             string  `json:"workPhone,omitempty"`
	CurrentAddressLine    string  `json:"currentAddressLine"`
	CurrentCity           string  `json:"currentCity"`
	CurrentProvince       string  `json:"currentProvince,omitempty"`
	CurrentPostalCode     string  `json:"currentPostalCode"`
	CurrentCountry        string  `json:"currentCountry"`
	PermanentAddressLine  string  `json:"permanentAddressLine"`
	PermanentCity         string  `json:"permanentCity"`
	PermanentProvince     string  `json:"permanentProvince,omitempty"`
	PermanentPostalCode   string  `json:"permanentPostalCode"`
	PermanentCountry      string  `json:"permanentCountry"`
	LinkedIn              string  `json:"linkedin,omitempty"`
	GitHub                string  `json:"github,omitempty"`
	EmergencyContactName  string  `json:"emergencyContactName"`
	EmergencyContactRel   string  `json:"emergencyContactRelationship,omitempty"`
	EmergencyContactPhone string  `json:"emergencyContactPhone"`
	EmployeeNumber        string  `json:"employeeNumber,omitempty"`
	Department            string  `json:"department"`
	Position              string  `json:"position"`
	Location              string  `json:"location"`
	HireDate              string  `json:"hireDate"`
	TerminationDate       string  `json:"terminationDate,omitempty"`
	EmploymentType        string  `json:"employmentType"`
	EmploymentStatus      string  `json:"employmentStatus,omitempty"`
	HoursPerWeek          float64 `json:"hoursPerWeek,omitempty"`
	SalaryAmount          float64 `json:"salaryAmount"`
	SalaryCurrency        string  `json:"salaryCurrency"`
	Username              string  `json:"username"`
	OneTimePassword       string  `json:"oneTimePassword"`
	PasswordIsOneTime     bool    `json:"passwordIsOneTime"`
	FingerprintEnrolled   bool    `json:"fingerprintEnrolled"`
	FaceEnrolled          bool    `json:"faceEnrolled"`
	BadgeReference        string  `json:"badgeReference,omitempty"`
}

// BuildPayload maps the internal record to the wire payload.
func BuildPayload(record Record) Payload {
	return Payload{
		FirstName:             record.Personal.FirstName,
		MiddleName:            record.Personal.MiddleName,
		LastName:              record.Personal.LastName,
		DateOfBirth:           record.Personal.DateOfBirth,
		Gender:                record.Personal.Gender,
		MaritalStatus:         record.Personal.MaritalStatus,
		Nationality:           record.Personal.Nationality,
		NationalID:            record.Personal.NationalID,
		PassportNumber:        record.Personal.PassportNumber,
		BloodGroup:            record.Personal.BloodGroup,
		Religion:              record.Personal.Religion,
		WorkEmail:             record.Contact.WorkEmail,
		PersonalPhone:         record.Contact.PersonalPhone,
		WorkPhone:             record.Contact.WorkPhone,
		CurrentAddressLine:    record.Contact.CurrentAddress.Line,
		CurrentCity:           record.Contact.CurrentAddress.City,
		CurrentProvince:       record.Contact.CurrentAddress.Province,
		CurrentPostalCode:     record.Contact.CurrentAddress.PostalCode,
		CurrentCountry:        record.Contact.CurrentAddress.Country,
		PermanentAddressLine:  record.Contact.PermanentAddress.Line,
		PermanentCity:         record.Contact.PermanentAddress.City,
		PermanentProvince:     record.Contact.PermanentAddress.Province,
		PermanentPostalCode:   record.Contact.PermanentAddress.PostalCode,
		PermanentCountry:      record.Contact.PermanentAddress.Country,
		LinkedIn:              record.Contact.LinkedIn,
		GitHub:                record.Contact.GitHub,
		EmergencyContactName:  record.Contact.Emergency.Name,
		EmergencyContactRel:   record.Contact.Emergency.Relationship,
		EmergencyContactPhone: record.Contact.Emergency.Phone,
		EmployeeNumber:        record.Work.EmployeeNumber,
		Department:            record.Work.Department,
		Position:              record.Work.Position,
		Location:              record.Work.Location,
		HireDate:              record.Work.HireDate,
		TerminationDate:       record.Work.TerminationDate,
		EmploymentType:        record.Work.EmploymentType,
		EmploymentStatus:      record.Work.EmploymentStatus,
		HoursPerWeek:          record.Work.HoursPerWeek,
		SalaryAmount:          record.Work.SalaryAmount,
		SalaryCurrency:        record.Work.SalaryCurrency,
		Username:              record.Credentials.Username,
		OneTimePassword:       record.Credentials.OneTimePassword,
		PasswordIsOneTime:     record.Credentials.PasswordIsOneTime,
		FingerprintEnrolled:   record.Biometrics.FingerprintEnrolled,
		FaceEnrolled:          record.Biometrics.FaceEnrolled,
		BadgeReference:        record.Biometrics.BadgeReference,
	}
}

// Submitter posts an assembled payload and returns the generated identifier.
type Submitter interface {
	Submit(ctx context.Context, payload Payload) (string, error)
}

// Coordinator drives one submission attempt end to end. The caller is
// responsible for checking all steps are complete first; the coordinator does
// not re-validate. No automatic retry, no backoff: a failure is surfaced once
// and cleared only by ClearError or another attempt.
type Coordinator struct {
	Store     *Store
	Submitter Submitter

	// GracePeriod delays the post-success Reset so a confirmation can be
	// shown before state clears.
	GracePeriod time.Duration
}

func NewCoordinator(store *Store, submitter Submitter, gracePeriod time.Duration) *Coordinator {
	return &Coordinator{Store: store, Submitter: submitter, GracePeriod: gracePeriod}
}

// Submit assembles the payload, posts it, and folds the outcome back into
// the store. At most one submission is in flight at a time.
func (c *Coordinator) Submit(ctx context.Context) (string, error) {
	if !c.Store.BeginSubmit() {
		return "", ErrSubmissionInFlight
	}

	payload := BuildPayload(c.Store.Record())
	id, err := c.Submitter.Submit(ctx, payload)
	if err != nil {
		c.Store.FailSubmit(err.Error())
		return "", err
	}

	c.Store.FinishSubmit(id)
	if c.GracePeriod > 0 {
		time.AfterFunc(c.GracePeriod, c.Store.Reset)
	} else {
		c.Store.Reset()
	}
	return id, nil
}
