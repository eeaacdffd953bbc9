package onboarding

import (
	"sort"
	"sync"
)

// Store is the single source of truth for one in-progress onboarding record:
// the aggregate data, the current step pointer, the completed-step set, and
// the submission flags. All readers receive copies; mutation only happens
// through the methods below. The store never validates — that is the
// validators' and Navigator's job, layered above.
type Store struct {
	mu          sync.Mutex
	record      Record
	currentStep Step
	completed   map[Step]struct{}
	submitting  bool
	submitted   bool
	submittedID string
	errMsg      string
}

func NewStore() *Store {
	return &Store{
		record:      NewRecord(),
		currentStep: FirstStep,
		completed:   make(map[Step]struct{}),
	}
}

// Record returns a copy of the aggregate.
func (s *Store) Record() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

func (s *Store) CurrentStep() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStep
}

// CompletedSteps returns the completed set in ascending order.
func (s *Store) CompletedSteps() []Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Step, 0, len(s.completed))
	for step := range s.completed {
		out = append(out, step)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s *Store) IsCompleted(step Step) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.completed[step]
	return ok
}

func (s *Store) PatchPersonal(patch PersonalPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.apply(&s.record.Personal)
}

func (s *Store) PatchContact(patch ContactPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.apply(&s.record.Contact)
	// Username mirrors the work email once set; the store copy wins over any
	// stale value the credentials step may hold.
	if s.record.Contact.WorkEmail != "" {
		s.record.Credentials.Username = s.record.Contact.WorkEmail
	}
}

func (s *Store) PatchWork(patch WorkPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.apply(&s.record.Work)
	// Permanent employment has no termination date; clear it on transition.
	switch s.record.Work.EmploymentType {
	case EmploymentFullTime, EmploymentPartTime:
		s.record.Work.TerminationDate = ""
	}
}

func (s *Store) PatchCredentials(patch CredentialsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.apply(&s.record.Credentials)
	if s.record.Contact.WorkEmail != "" {
		s.record.Credentials.Username = s.record.Contact.WorkEmail
	}
}

func (s *Store) PatchBiometrics(patch BiometricsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.apply(&s.record.Biometrics)
}

// SetCurrentStep moves the pointer unconditionally. Gating legal transitions
// is the Navigator's responsibility, not the store's. Out-of-range values are
// ignored.
func (s *Store) SetCurrentStep(step Step) {
	if !step.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentStep = step
}

// MarkStepCompleted inserts step into the completed set. Idempotent.
func (s *Store) MarkStepCompleted(step Step) {
	if !step.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed[step] = struct{}{}
}

// Advance moves the pointer forward, capped at the last step.
func (s *Store) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentStep < LastStep {
		s.currentStep++
	}
}

// Retreat moves the pointer backward, floored at the first step, and strips
// the post-decrement current step from the completed set. Stepping backward
// therefore invalidates that step's done mark until it is re-validated.
// Observable behavior carried over from the original flow; do not change it
// without a product decision.
func (s *Store) Retreat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentStep > FirstStep {
		s.currentStep--
	}
	delete(s.completed, s.currentStep)
}

// Reset restores the initial empty state: empty record, first step, empty
// completed set, cleared submission flags.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = NewRecord()
	s.currentStep = FirstStep
	s.completed = make(map[Step]struct{})
	s.submitting = false
	s.submitted = false
	s.submittedID = ""
	s.errMsg = ""
}

// BeginSubmit flips the in-flight flag; it reports false when a submission is
// already outstanding. This is the wizard's only concurrency guard.
func (s *Store) BeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

// FinishSubmit records a successful submission: all steps completed, the
// returned identifier stored, the submitted flag set, errors cleared.
func (s *Store) FinishSubmit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for step := FirstStep; step <= LastStep; step++ {
		s.completed[step] = struct{}{}
	}
	s.submitting = false
	s.submitted = true
	s.submittedID = id
	s.errMsg = ""
}

// FailSubmit captures the error message and leaves the record untouched so
// the user can retry.
func (s *Store) FailSubmit(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	s.errMsg = message
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Store) IsSubmitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

func (s *Store) IsSubmitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}

func (s *Store) SubmittedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submittedID
}
