package onboarding

import "testing"

// completeRecord fills every field any step can require, using the home
// nationality so no passport is needed and stateless countries so no
// province is needed.
func completeRecord() Record {
	record := NewRecord()
	record.Personal = PersonalDetails{
		FirstName:     "Amara",
		LastName:      "Perera",
		DateOfBirth:   "1994-03-12",
		Gender:        "female",
		MaritalStatus: "single",
		Nationality:   "Sri Lanka",
		NationalID:    "942345678V",
	}
	record.Contact = ContactDetails{
		WorkEmail:     "amara@talentnest.io",
		PersonalPhone: "+94 77 123 4567",
		CurrentAddress: Address{
			Line:       "12 Galle Road",
			City:       "Singapore",
			PostalCode: "018956",
			Country:    "Singapore",
		},
		PermanentAddress: Address{
			Line:       "8 Temple Lane",
			City:       "Monaco",
			PostalCode: "98000",
			Country:    "Monaco",
		},
		Emergency: EmergencyContact{Name: "Nimal Perera", Phone: "+94 71 765 4321"},
	}
	record.Work = WorkDetails{
		Department:     "Engineering",
		Position:       "Software Engineer",
		Location:       "Colombo",
		HireDate:       "2026-09-01",
		EmploymentType: EmploymentFullTime,
		SalaryAmount:   250000,
		SalaryCurrency: "LKR",
	}
	record.Credentials = AccessCredentials{
		Username:        "amara@talentnest.io",
		OneTimePassword: "48261537",
		ConfirmPassword: "48261537",
	}
	return record
}

func TestCompleteRecordPassesEveryStep(t *testing.T) {
	record := completeRecord()
	for step := FirstStep; step <= LastStep; step++ {
		if !StepComplete(step, record, nil) {
			t.Fatalf("step %v unexpectedly incomplete: %v", step, MissingFields(step, record, nil))
		}
	}
}

func TestRemovingRequiredFieldFlipsCompleteness(t *testing.T) {
	cases := []struct {
		name  string
		step  Step
		field FieldName
		blank func(*Record)
	}{
		{"first name", StepPersonal, FieldFirstName, func(r *Record) { r.Personal.FirstName = "" }},
		{"national id", StepPersonal, FieldNationalID, func(r *Record) { r.Personal.NationalID = "" }},
		{"work email", StepContact, FieldWorkEmail, func(r *Record) { r.Contact.WorkEmail = "" }},
		{"emergency phone", StepContact, FieldEmergencyPhone, func(r *Record) { r.Contact.Emergency.Phone = "" }},
		{"department", StepWork, FieldDepartment, func(r *Record) { r.Work.Department = "" }},
		{"salary", StepWork, FieldSalaryAmount, func(r *Record) { r.Work.SalaryAmount = 0 }},
		{"one-time password", StepCredentials, FieldOneTimePassword, func(r *Record) { r.Credentials.OneTimePassword = "" }},
	}

	for _, tc := range cases {
		record := completeRecord()
		tc.blank(&record)

		if StepComplete(tc.step, record, nil) {
			t.Fatalf("%s: step %v should be incomplete", tc.name, tc.step)
		}
		missing := MissingFields(tc.step, record, nil)
		if len(missing) != 1 || missing[0] != tc.field {
			t.Fatalf("%s: expected only %q missing, got %v", tc.name, tc.field, missing)
		}
	}
}

func TestWhitespaceCountsAsAbsent(t *testing.T) {
	record := completeRecord()
	record.Personal.FirstName = "   "

	if StepComplete(StepPersonal, record, nil) {
		t.Fatal("whitespace-only value should not satisfy a required field")
	}
}

func TestSalaryMustBeStrictlyPositive(t *testing.T) {
	record := completeRecord()
	record.Work.SalaryAmount = -1

	if StepComplete(StepWork, record, nil) {
		t.Fatal("negative salary should not satisfy the requirement")
	}
}

func TestBiometricsAlwaysComplete(t *testing.T) {
	if !StepComplete(StepBiometrics, NewRecord(), nil) {
		t.Fatal("biometrics step must be complete even on an empty record")
	}
}

func TestReviewAggregatesPriorSteps(t *testing.T) {
	record := completeRecord()
	if !StepComplete(StepReview, record, nil) {
		t.Fatal("review should be complete when every prior step is")
	}

	record.Work.Position = ""
	if StepComplete(StepReview, record, nil) {
		t.Fatal("review must report incomplete when any prior step is")
	}
	missing := MissingFields(StepReview, record, nil)
	if len(missing) != 1 || missing[0] != FieldPosition {
		t.Fatalf("expected position to surface through review, got %v", missing)
	}
}

func TestConditionalFieldsFeedCompleteness(t *testing.T) {
	record := completeRecord()
	record.Personal.Nationality = "France"

	if StepComplete(StepPersonal, record, nil) {
		t.Fatal("foreign nationality without a passport should be incomplete")
	}

	record.Personal.PassportNumber = "P1234567"
	if !StepComplete(StepPersonal, record, nil) {
		t.Fatal("filling the passport should complete the step")
	}
}
