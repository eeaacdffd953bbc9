package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore() *Store {
	store := NewStore()
	record := completeRecord()
	store.PatchPersonal(PersonalPatch{
		FirstName:   strp(record.Personal.FirstName),
		LastName:    strp(record.Personal.LastName),
		Nationality: strp(record.Personal.Nationality),
		NationalID:  strp(record.Personal.NationalID),
	})
	store.PatchContact(ContactPatch{WorkEmail: strp(record.Contact.WorkEmail)})
	store.PatchWork(WorkPatch{
		Department:   strp(record.Work.Department),
		SalaryAmount: float64p(record.Work.SalaryAmount),
	})
	return store
}

func TestBuildPayloadFlattensRecord(t *testing.T) {
	record := completeRecord()
	record.Contact.CurrentAddress.Province = "Western"

	payload := BuildPayload(record)

	assert.Equal(t, record.Personal.FirstName, payload.FirstName)
	assert.Equal(t, record.Contact.WorkEmail, payload.WorkEmail)
	assert.Equal(t, "Western", payload.CurrentProvince)
	assert.Equal(t, record.Contact.PermanentAddress.Country, payload.PermanentCountry)
	assert.Equal(t, record.Contact.Emergency.Phone, payload.EmergencyContactPhone)
	assert.Equal(t, record.Work.SalaryAmount, payload.SalaryAmount)
	assert.Equal(t, record.Credentials.Username, payload.Username)
}

func TestSubmitSuccessStoresIDAndResets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/onboarding/submissions", r.URL.Path)

		var payload Payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Amara", payload.FirstName)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"abc123"}`))
	}))
	defer server.Close()

	store := seededStore()
	coordinator := NewCoordinator(store, NewClient(server.URL), 30*time.Millisecond)

	id, err := coordinator.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)
	assert.True(t, store.IsSubmitted())
	assert.Equal(t, "abc123", store.SubmittedID())
	assert.Len(t, store.CompletedSteps(), int(LastStep))

	// After the grace period the wizard clears for the next hire.
	assert.Eventually(t, func() bool {
		return !store.IsSubmitted() && reflect.DeepEqual(store.Record(), NewRecord())
	}, time.Second, 10*time.Millisecond)
}

func TestSubmitFailureLeavesRecordUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"submission service unavailable"}}`))
	}))
	defer server.Close()

	store := seededStore()
	before := store.Record()
	coordinator := NewCoordinator(store, NewClient(server.URL), 0)

	_, err := coordinator.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "submission service unavailable", err.Error())
	assert.Equal(t, "submission service unavailable", store.Err())
	assert.False(t, store.IsSubmitted())
	assert.False(t, store.IsSubmitting())
	assert.Equal(t, before, store.Record())

	// The failure is sticky until cleared or retried; no automatic retry.
	assert.Equal(t, "submission service unavailable", store.Err())
	store.ClearError()
	assert.Empty(t, store.Err())
}

func TestSubmitFailureWithoutMessageUsesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	store := seededStore()
	coordinator := NewCoordinator(store, NewClient(server.URL), 0)

	_, err := coordinator.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "submission failed with status 502", err.Error())
}

func TestSubmitRetryAfterFailure(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"second-try"}}`))
	}))
	defer server.Close()

	store := seededStore()
	coordinator := NewCoordinator(store, NewClient(server.URL), 0)

	_, err := coordinator.Submit(context.Background())
	require.Error(t, err)

	id, err := coordinator.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second-try", id)
	assert.Equal(t, 2, calls, "no automatic retry: exactly one call per attempt")
}

type blockingSubmitter struct {
	release chan struct{}
}

func (b *blockingSubmitter) Submit(ctx context.Context, payload Payload) (string, error) {
	<-b.release
	return "slow-1", nil
}

func TestSingleSubmissionInFlight(t *testing.T) {
	submitter := &blockingSubmitter{release: make(chan struct{})}
	store := seededStore()
	coordinator := NewCoordinator(store, submitter, 0)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = coordinator.Submit(context.Background())
	}()

	require.Eventually(t, store.IsSubmitting, time.Second, time.Millisecond)

	_, err := coordinator.Submit(context.Background())
	assert.True(t, errors.Is(err, ErrSubmissionInFlight))

	close(submitter.release)
	wg.Wait()
	assert.True(t, store.IsSubmitted())
}

func TestSubmitMissingIdentifier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	store := seededStore()
	coordinator := NewCoordinator(store, NewClient(server.URL), 0)

	_, err := coordinator.Submit(context.Background())
	require.Error(t, err)
	assert.False(t, store.IsSubmitted())
}
