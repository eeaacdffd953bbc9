package onboarding

import (
	"reflect"
	"testing"
)

func strp(s string) *string { return &s }

func float64p(f float64) *float64 { return &f }

func TestNewStoreInitialState(t *testing.T) {
	store := NewStore()

	if store.CurrentStep() != StepPersonal {
		t.Fatalf("expected initial step %v, got %v", StepPersonal, store.CurrentStep())
	}
	if len(store.CompletedSteps()) != 0 {
		t.Fatalf("expected no completed steps, got %v", store.CompletedSteps())
	}
	if !reflect.DeepEqual(store.Record(), NewRecord()) {
		t.Fatalf("expected empty record, got %+v", store.Record())
	}
	if store.IsSubmitting() || store.IsSubmitted() || store.Err() != "" || store.SubmittedID() != "" {
		t.Fatal("expected clear submission state")
	}
}

func TestPatchShallowMerge(t *testing.T) {
	store := NewStore()
	store.PatchPersonal(PersonalPatch{FirstName: strp("Amara"), LastName: strp("Perera")})

	// An all-nil patch must leave everything untouched.
	before := store.Record()
	store.PatchPersonal(PersonalPatch{})
	if !reflect.DeepEqual(store.Record(), before) {
		t.Fatalf("empty patch mutated the record: %+v", store.Record())
	}

	// A partial patch only overwrites the fields it names.
	store.PatchPersonal(PersonalPatch{FirstName: strp("Nimal")})
	got := store.Record().Personal
	if got.FirstName != "Nimal" || got.LastName != "Perera" {
		t.Fatalf("unexpected merge result: %+v", got)
	}
}

func TestPatchNestedAddress(t *testing.T) {
	store := NewStore()
	store.PatchContact(ContactPatch{
		CurrentAddress: &AddressPatch{City: strp("Colombo"), Country: strp("Sri Lanka")},
	})
	store.PatchContact(ContactPatch{
		CurrentAddress: &AddressPatch{Line: strp("12 Galle Road")},
	})

	addr := store.Record().Contact.CurrentAddress
	if addr.Line != "12 Galle Road" || addr.City != "Colombo" || addr.Country != "Sri Lanka" {
		t.Fatalf("unexpected address: %+v", addr)
	}
}

func TestUsernameMirrorsWorkEmail(t *testing.T) {
	store := NewStore()
	store.PatchContact(ContactPatch{WorkEmail: strp("amara@talentnest.io")})

	if got := store.Record().Credentials.Username; got != "amara@talentnest.io" {
		t.Fatalf("expected mirrored username, got %q", got)
	}

	// A stale username arriving through the credentials step loses to the
	// store's work email.
	store.PatchCredentials(CredentialsPatch{Username: strp("stale@example.com")})
	if got := store.Record().Credentials.Username; got != "amara@talentnest.io" {
		t.Fatalf("expected work email to win, got %q", got)
	}

	// Updating the work email re-mirrors.
	store.PatchContact(ContactPatch{WorkEmail: strp("a.perera@talentnest.io")})
	if got := store.Record().Credentials.Username; got != "a.perera@talentnest.io" {
		t.Fatalf("expected updated mirror, got %q", got)
	}
}

func TestTerminationDateClearedForPermanentTypes(t *testing.T) {
	store := NewStore()
	store.PatchWork(WorkPatch{
		EmploymentType:  strp(EmploymentContract),
		TerminationDate: strp("2027-06-30"),
	})
	if got := store.Record().Work.TerminationDate; got != "2027-06-30" {
		t.Fatalf("expected termination date kept for contract, got %q", got)
	}

	store.PatchWork(WorkPatch{EmploymentType: strp(EmploymentFullTime)})
	if got := store.Record().Work.TerminationDate; got != "" {
		t.Fatalf("expected termination date cleared for full-time, got %q", got)
	}

	store.PatchWork(WorkPatch{EmploymentType: strp(EmploymentIntern), TerminationDate: strp("2026-12-31")})
	store.PatchWork(WorkPatch{EmploymentType: strp(EmploymentPartTime)})
	if got := store.Record().Work.TerminationDate; got != "" {
		t.Fatalf("expected termination date cleared for part-time, got %q", got)
	}
}

func TestAdvanceAndRetreatBounds(t *testing.T) {
	store := NewStore()

	store.Retreat()
	if store.CurrentStep() != FirstStep {
		t.Fatalf("retreat below first step: %v", store.CurrentStep())
	}

	for i := 0; i < 10; i++ {
		store.Advance()
	}
	if store.CurrentStep() != LastStep {
		t.Fatalf("advance past last step: %v", store.CurrentStep())
	}
}

func TestRetreatStripsArrivedStepOnly(t *testing.T) {
	store := NewStore()
	store.MarkStepCompleted(StepPersonal)
	store.MarkStepCompleted(StepContact)
	store.SetCurrentStep(StepWork)

	store.Retreat()

	if store.CurrentStep() != StepContact {
		t.Fatalf("expected step %v, got %v", StepContact, store.CurrentStep())
	}
	if store.IsCompleted(StepContact) {
		t.Fatal("expected the step retreated onto to lose its done mark")
	}
	if !store.IsCompleted(StepPersonal) {
		t.Fatal("expected earlier steps to keep their done marks")
	}
}

func TestSetCurrentStepIgnoresOutOfRange(t *testing.T) {
	store := NewStore()
	store.SetCurrentStep(StepWork)

	store.SetCurrentStep(Step(0))
	store.SetCurrentStep(Step(7))
	if store.CurrentStep() != StepWork {
		t.Fatalf("out-of-range step moved the pointer: %v", store.CurrentStep())
	}
}

func TestMarkStepCompletedIdempotent(t *testing.T) {
	store := NewStore()
	store.MarkStepCompleted(StepPersonal)
	store.MarkStepCompleted(StepPersonal)

	if got := store.CompletedSteps(); len(got) != 1 || got[0] != StepPersonal {
		t.Fatalf("unexpected completed set: %v", got)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	store := NewStore()
	store.PatchPersonal(PersonalPatch{FirstName: strp("Amara")})
	store.PatchWork(WorkPatch{SalaryAmount: float64p(250000)})
	store.MarkStepCompleted(StepPersonal)
	store.SetCurrentStep(StepReview)
	store.FinishSubmit("sub-1")
	store.FailSubmit("boom")

	store.Reset()

	if !reflect.DeepEqual(store.Record(), NewRecord()) {
		t.Fatalf("record not reset: %+v", store.Record())
	}
	if store.CurrentStep() != FirstStep {
		t.Fatalf("step not reset: %v", store.CurrentStep())
	}
	if len(store.CompletedSteps()) != 0 {
		t.Fatalf("completed set not reset: %v", store.CompletedSteps())
	}
	if store.IsSubmitting() || store.IsSubmitted() || store.SubmittedID() != "" || store.Err() != "" {
		t.Fatal("submission state not reset")
	}
}

func TestSubmitLifecycleFlags(t *testing.T) {
	store := NewStore()

	if !store.BeginSubmit() {
		t.Fatal("first BeginSubmit should succeed")
	}
	if store.BeginSubmit() {
		t.Fatal("second BeginSubmit should be rejected while in flight")
	}

	store.FailSubmit("endpoint unavailable")
	if store.IsSubmitting() {
		t.Fatal("FailSubmit should clear the in-flight flag")
	}
	if store.Err() != "endpoint unavailable" {
		t.Fatalf("unexpected error message: %q", store.Err())
	}
	if store.IsSubmitted() {
		t.Fatal("failed submission must not mark submitted")
	}

	// Retry after failure.
	if !store.BeginSubmit() {
		t.Fatal("retry should be allowed after failure")
	}
	store.FinishSubmit("sub-42")

	if !store.IsSubmitted() || store.SubmittedID() != "sub-42" {
		t.Fatalf("unexpected success state: submitted=%v id=%q", store.IsSubmitted(), store.SubmittedID())
	}
	if store.Err() != "" {
		t.Fatalf("success should clear the error, got %q", store.Err())
	}
	if got := store.CompletedSteps(); len(got) != int(LastStep) {
		t.Fatalf("expected all steps completed, got %v", got)
	}
}
