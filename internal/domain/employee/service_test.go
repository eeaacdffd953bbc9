package employee

import (
	"encoding/json"
	"strings"
	"testing"

	"talentnest/internal/domain/onboarding"
)

func TestFromPayloadMapsAddresses(t *testing.T) {
	payload := onboarding.Payload{
		FirstName:            "Amara",
		LastName:             "Perera",
		WorkEmail:            "amara@talentnest.io",
		CurrentAddressLine:   "12 Galle Road",
		CurrentCity:          "Colombo",
		CurrentProvince:      "Western",
		CurrentPostalCode:    "00300",
		CurrentCountry:       "Sri Lanka",
		PermanentAddressLine: "8 Temple Lane",
		PermanentCity:        "Kandy",
		PermanentCountry:     "Sri Lanka",
		Department:           "Engineering",
		SalaryAmount:         250000,
		SalaryCurrency:       "LKR",
	}

	emp := FromPayload(payload)

	if emp.FirstName != "Amara" || emp.WorkEmail != "amara@talentnest.io" {
		t.Fatalf("unexpected identity fields: %+v", emp)
	}
	if emp.CurrentAddress.Line != "12 Galle Road" || emp.CurrentAddress.Province != "Western" {
		t.Fatalf("current address not mapped: %+v", emp.CurrentAddress)
	}
	if emp.PermanentAddress.City != "Kandy" {
		t.Fatalf("permanent address not mapped: %+v", emp.PermanentAddress)
	}
	if emp.SalaryAmount != 250000 || emp.SalaryCurrency != "LKR" {
		t.Fatalf("salary not mapped: %+v", emp)
	}
}

func TestFromPayloadNeverCarriesPassword(t *testing.T) {
	payload := onboarding.Payload{
		FirstName:       "Amara",
		OneTimePassword: "one-time-secret-48261537",
	}

	emp := FromPayload(payload)

	// The employee document must never hold a credential; those live hashed
	// in the credentials collection.
	raw, err := json.Marshal(emp)
	if err != nil {
		t.Fatalf("marshal employee: %v", err)
	}
	if strings.Contains(string(raw), payload.OneTimePassword) {
		t.Fatal("one-time password leaked into the employee document")
	}
}
