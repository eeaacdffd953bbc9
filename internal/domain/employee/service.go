package employee

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"talentnest/internal/domain/onboarding"
)

// Service wraps the store with the operations the handlers need: number
// generation, payload intake, and the printable onboarding summary.
type Service struct {
	Store      *Store
	NumberSeed int
}

func NewService(store *Store, numberSeed int) *Service {
	return &Service{Store: store, NumberSeed: numberSeed}
}

// NextEmployeeNumber derives the next sequential number from the collection
// size. Format: TN-1042.
func (s *Service) NextEmployeeNumber(ctx context.Context) (string, error) {
	count, err := s.Store.Count(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("TN-%d", int64(s.NumberSeed)+count+1), nil
}

// FromPayload maps an onboarding submission payload onto a new employee
// document. The one-time password is deliberately not carried: credentials
// are stored hashed by the credentials service, never on the employee.
func FromPayload(payload onboarding.Payload) Employee {
	return Employee{
		EmployeeNumber: payload.EmployeeNumber,
		FirstName:      payload.FirstName,
		MiddleName:     payload.MiddleName,
		LastName:       payload.LastName,
		DateOfBirth:    payload.DateOfBirth,
		Gender:         payload.Gender,
		MaritalStatus:  payload.MaritalStatus,
		Nationality:    payload.Nationality,
		NationalID:     payload.NationalID,
		PassportNumber: payload.PassportNumber,
		BloodGroup:     payload.BloodGroup,
		Religion:       payload.Religion,
		WorkEmail:      payload.WorkEmail,
		PersonalPhone:  payload.PersonalPhone,
		WorkPhone:      payload.WorkPhone,
		CurrentAddress: Address{
			Line:       payload.CurrentAddressLine,
			City:       payload.CurrentCity,
			Province:   payload.CurrentProvince,
			PostalCode: payload.CurrentPostalCode,
			Country:    payload.CurrentCountry,
		},
		PermanentAddress: Address{
			Line:       payload.PermanentAddressLine,
			City:       payload.PermanentCity,
			Province:   payload.PermanentProvince,
			PostalCode: payload.PermanentPostalCode,
			Country:    payload.PermanentCountry,
		},
		LinkedIn:              payload.LinkedIn,
		GitHub:                payload.GitHub,
		EmergencyContactName:  payload.EmergencyContactName,
		EmergencyContactRel:   payload.EmergencyContactRel,
		EmergencyContactPhone: payload.EmergencyContactPhone,
		Department:            payload.Department,
		Position:              payload.Position,
		Location:              payload.Location,
		HireDate:              payload.HireDate,
		TerminationDate:       payload.TerminationDate,
		EmploymentType:        payload.EmploymentType,
		EmploymentStatus:      payload.EmploymentStatus,
		HoursPerWeek:          payload.HoursPerWeek,
		SalaryAmount:          payload.SalaryAmount,
		SalaryCurrency:        payload.SalaryCurrency,
		FingerprintEnrolled:   payload.FingerprintEnrolled,
		FaceEnrolled:          payload.FaceEnrolled,
		BadgeReference:        payload.BadgeReference,
	}
}

// SummaryPDF renders a one-page onboarding summary for the employee.
func (s *Service) SummaryPDF(ctx context.Context, id string) ([]byte, error) {
	emp, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Onboarding Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s (%s)", emp.FirstName, emp.LastName, emp.EmployeeNumber))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", emp.WorkEmail))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", emp.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Position: %s", emp.Position))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Location: %s", emp.Location))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Hire date: %s", emp.HireDate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employment: %s", emp.EmploymentType))
	if emp.TerminationDate != "" {
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Termination date: %s", emp.TerminationDate))
	}
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Salary: %.2f %s", emp.SalaryAmount, emp.SalaryCurrency))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
