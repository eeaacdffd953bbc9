package onboarding

// Step identifies one of the six linear wizard stages.
type Step int

const (
	StepPersonal Step = iota + 1
	StepContact
	StepWork
	StepCredentials
	StepBiometrics
	StepReview
)

const (
	FirstStep = StepPersonal
	LastStep  = StepReview
)

var stepNames = map[Step]string{
	StepPersonal:    "personal-details",
	StepContact:     "contact-details",
	StepWork:        "work-details",
	StepCredentials: "access-credentials",
	StepBiometrics:  "biometric-enrollment",
	StepReview:      "review-submit",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}
