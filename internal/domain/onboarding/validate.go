package onboarding

import "strings"

// StepComplete reports whether every effective required field of step is
// present in the record. Pure and cheap; safe to call on every keystroke.
// Whitespace-only text counts as absent; numeric fields must be strictly
// positive.
func StepComplete(step Step, record Record, geo GeoLookup) bool {
	return len(MissingFields(step, record, geo)) == 0
}

// MissingFields returns the required fields of step that are still absent,
// in no particular order. An empty result means the step is complete.
func MissingFields(step Step, record Record, geo GeoLookup) []FieldName {
	if step == StepReview {
		// Review is complete once every data-bearing step is.
		var missing []FieldName
		for prior := FirstStep; prior < StepReview; prior++ {
			missing = append(missing, MissingFields(prior, record, geo)...)
		}
		return missing
	}

	var missing []FieldName
	for field := range RequiredFields(step, record, geo) {
		if !fieldPresent(field, record) {
			missing = append(missing, field)
		}
	}
	return missing
}

func fieldPresent(field FieldName, record Record) bool {
	switch field {
	case FieldSalaryAmount:
		return record.Work.SalaryAmount > 0
	default:
		return strings.TrimSpace(fieldText(field, record)) != ""
	}
}

func fieldText(field FieldName, record Record) string {
	switch field {
	case FieldFirstName:
		return record.Personal.FirstName
	case FieldLastName:
		return record.Personal.LastName
	case FieldDateOfBirth:
		return record.Personal.DateOfBirth
	case FieldGender:
		return record.Personal.Gender
	case FieldMaritalStatus:
		return record.Personal.MaritalStatus
	case FieldNationality:
		return record.Personal.Nationality
	case FieldNationalID:
		return record.Personal.NationalID
	case FieldPassportNumber:
		return record.Personal.PassportNumber
	case FieldWorkEmail:
		return record.Contact.WorkEmail
	case FieldPersonalPhone:
		return record.Contact.PersonalPhone
	case FieldCurrentLine:
		return record.Contact.CurrentAddress.Line
	case FieldCurrentCity:
		return record.Contact.CurrentAddress.City
	case FieldCurrentProvince:
		return record.Contact.CurrentAddress.Province
	case FieldCurrentPostalCode:
		return record.Contact.CurrentAddress.PostalCode
	case FieldCurrentCountry:
		return record.Contact.CurrentAddress.Country
	case FieldPermanentLine:
		return record.Contact.PermanentAddress.Line
	case FieldPermanentCity:
		return record.Contact.PermanentAddress.City
	case FieldPermanentProvince:
		return record.Contact.PermanentAddress.Province
	case FieldPermanentPostalCode:
		return record.Contact.PermanentAddress.PostalCode
	case FieldPermanentCountry:
		return record.Contact.PermanentAddress.Country
	case FieldEmergencyName:
		return record.Contact.Emergency.Name
	case FieldEmergencyPhone:
		return record.Contact.Emergency.Phone
	case FieldDepartment:
		return record.Work.Department
	case FieldPosition:
		return record.Work.Position
	case FieldLocation:
		return record.Work.Location
	case FieldHireDate:
		return record.Work.HireDate
	case FieldTerminationDate:
		return record.Work.TerminationDate
	case FieldEmploymentType:
		return record.Work.EmploymentType
	case FieldSalaryCurrency:
		return record.Work.SalaryCurrency
	case FieldUsername:
		return record.Credentials.Username
	case FieldOneTimePassword:
		return record.Credentials.OneTimePassword
	case FieldConfirmPassword:
		return record.Credentials.ConfirmPassword
	}
	return ""
}
