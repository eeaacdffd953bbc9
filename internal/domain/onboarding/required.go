package onboarding

import "strings"

// FieldName identifies a record field in validation output.
type FieldName string

const (
	FieldFirstName              FieldName = "personalDetails.firstName"
	FieldLastName               FieldName = "personalDetails.lastName"
	FieldDateOfBirth            FieldName = "personalDetails.dateOfBirth"
	FieldGender                 FieldName = "personalDetails.gender"
	FieldMaritalStatus          FieldName = "personalDetails.maritalStatus"
	FieldNationality            FieldName = "personalDetails.nationality"
	FieldNationalID             FieldName = "personalDetails.nationalId"
	FieldPassportNumber         FieldName = "personalDetails.passportNumber"
	FieldWorkEmail              FieldName = "contactDetails.workEmail"
	FieldPersonalPhone          FieldName = "contactDetails.personalPhone"
	FieldCurrentLine            FieldName = "contactDetails.currentAddress.line"
	FieldCurrentCity            FieldName = "contactDetails.currentAddress.city"
	FieldCurrentProvince        FieldName = "contactDetails.currentAddress.province"
	FieldCurrentPostalCode      FieldName = "contactDetails.currentAddress.postalCode"
	FieldCurrentCountry         FieldName = "contactDetails.currentAddress.country"
	FieldPermanentLine          FieldName = "contactDetails.permanentAddress.line"
	FieldPermanentCity          FieldName = "contactDetails.permanentAddress.city"
	FieldPermanentProvince      FieldName = "contactDetails.permanentAddress.province"
	FieldPermanentPostalCode    FieldName = "contactDetails.permanentAddress.postalCode"
	FieldPermanentCountry       FieldName = "contactDetails.permanentAddress.country"
	FieldEmergencyName          FieldName = "contactDetails.emergencyContact.name"
	FieldEmergencyPhone         FieldName = "contactDetails.emergencyContact.phone"
	FieldDepartment             FieldName = "workDetails.department"
	FieldPosition               FieldName = "workDetails.position"
	FieldLocation               FieldName = "workDetails.location"
	FieldHireDate               FieldName = "workDetails.hireDate"
	FieldTerminationDate        FieldName = "workDetails.terminationDate"
	FieldEmploymentType         FieldName = "workDetails.employmentType"
	FieldSalaryAmount           FieldName = "workDetails.salaryAmount"
	FieldSalaryCurrency         FieldName = "workDetails.salaryCurrency"
	FieldUsername               FieldName = "accessCredentials.username"
	FieldOneTimePassword        FieldName = "accessCredentials.oneTimePassword"
	FieldConfirmPassword        FieldName = "accessCredentials.confirmPassword"
)

// HomeCountry is the sentinel nationality that waives the passport
// requirement.
const HomeCountry = "Sri Lanka"

// GeoLookup resolves a country name to its first-level subdivisions. It is
// injected so validation stays synchronous and testable; implementations may
// hit the network. A nil lookup or a lookup error degrades to "no
// subdivisions".
type GeoLookup func(country string) ([]string, error)

// Countries with no first-level administrative subdivisions. Consulting the
// geo collaborator for these is pointless, so they short-circuit to optional
// province.
var statelessCountries = map[string]struct{}{
	"singapore":    {},
	"monaco":       {},
	"vatican city": {},
	"gibraltar":    {},
	"macau":        {},
	"hong kong":    {},
}

func normalizeCountry(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}

func isHomeCountry(nationality string) bool {
	normalized := normalizeCountry(nationality)
	home := normalizeCountry(HomeCountry)
	// Accept both the country name and its adjectival form ("Sri Lankan").
	return normalized == home || normalized == home+"n"
}

func provinceRequired(country string, geo GeoLookup) bool {
	normalized := normalizeCountry(country)
	if normalized == "" {
		return false
	}
	if _, stateless := statelessCountries[normalized]; stateless {
		return false
	}
	if geo == nil {
		return false
	}
	subdivisions, err := geo(country)
	if err != nil {
		// Best-effort collaborator: on failure treat the country as
		// stateless rather than blocking the user.
		return false
	}
	return len(subdivisions) > 0
}

// RequiredFields computes the effective required-field set for a step.
// Deterministic for identical inputs; never mutates the record.
func RequiredFields(step Step, record Record, geo GeoLookup) map[FieldName]struct{} {
	required := make(map[FieldName]struct{})
	add := func(fields ...FieldName) {
		for _, field := range fields {
			required[field] = struct{}{}
		}
	}

	switch step {
	case StepPersonal:
		add(FieldFirstName, FieldLastName, FieldDateOfBirth, FieldGender,
			FieldMaritalStatus, FieldNationality, FieldNationalID)
		if strings.TrimSpace(record.Personal.Nationality) != "" && !isHomeCountry(record.Personal.Nationality) {
			add(FieldPassportNumber)
		}
	case StepContact:
		add(FieldWorkEmail, FieldPersonalPhone,
			FieldCurrentLine, FieldCurrentCity, FieldCurrentPostalCode, FieldCurrentCountry,
			FieldPermanentLine, FieldPermanentCity, FieldPermanentPostalCode, FieldPermanentCountry,
			FieldEmergencyName, FieldEmergencyPhone)
		if provinceRequired(record.Contact.CurrentAddress.Country, geo) {
			add(FieldCurrentProvince)
		}
		if provinceRequired(record.Contact.PermanentAddress.Country, geo) {
			add(FieldPermanentProvince)
		}
	case StepWork:
		add(FieldDepartment, FieldPosition, FieldLocation, FieldHireDate,
			FieldEmploymentType, FieldSalaryAmount, FieldSalaryCurrency)
		switch record.Work.EmploymentType {
		case EmploymentContract, EmploymentIntern:
			add(FieldTerminationDate)
		}
	case StepCredentials:
		add(FieldUsername, FieldOneTimePassword, FieldConfirmPassword)
	case StepBiometrics, StepReview:
		// Biometric enrollment is optional by policy; review has no fields
		// of its own.
	}
	return required
}
