package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func testService(t *testing.T) (*Service, func()) {
	t.Helper()
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("mongo connect: %v", err)
	}

	dbName := fmt.Sprintf("talentnest_otp_test_%d", time.Now().UnixNano())
	svc, err := NewService(client.Database(dbName), 8)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	cleanup := func() {
		_ = client.Database(dbName).Drop(context.Background())
		_ = client.Disconnect(context.Background())
	}
	return svc, cleanup
}

func TestIssueAndVerify(t *testing.T) {
	svc, cleanup := testService(t)
	defer cleanup()
	ctx := context.Background()

	code, err := svc.Issue(ctx, "amara@talentnest.io", "hr-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !regexp.MustCompile(`^\d{8}$`).MatchString(code) {
		t.Fatalf("expected 8-digit code, got %q", code)
	}

	if err := svc.Verify(ctx, "amara@talentnest.io", code); err != nil {
		t.Fatalf("verify: %v", err)
	}

	// A consumed code cannot be replayed.
	if err := svc.Verify(ctx, "amara@talentnest.io", code); !errors.Is(err, ErrNoActiveCode) {
		t.Fatalf("expected ErrNoActiveCode on replay, got %v", err)
	}
}

func TestIssueInvalidatesPriorCode(t *testing.T) {
	svc, cleanup := testService(t)
	defer cleanup()
	ctx := context.Background()

	first, err := svc.Issue(ctx, "amara@talentnest.io", "hr-1")
	if err != nil {
		t.Fatalf("issue first: %v", err)
	}
	second, err := svc.Issue(ctx, "amara@talentnest.io", "hr-1")
	if err != nil {
		t.Fatalf("issue second: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct codes")
	}

	if err := svc.Verify(ctx, "amara@talentnest.io", first); err == nil {
		t.Fatal("expected the superseded code to be rejected")
	}
	if err := svc.Verify(ctx, "amara@talentnest.io", second); err != nil {
		t.Fatalf("expected the latest code to verify: %v", err)
	}
}

func TestVerifyMismatch(t *testing.T) {
	svc, cleanup := testService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.Issue(ctx, "amara@talentnest.io", "hr-1"); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := svc.Verify(ctx, "amara@talentnest.io", "00000000"); !errors.Is(err, ErrCodeMismatch) {
		t.Fatalf("expected ErrCodeMismatch, got %v", err)
	}
	if err := svc.Verify(ctx, "unknown@talentnest.io", "00000000"); !errors.Is(err, ErrNoActiveCode) {
		t.Fatalf("expected ErrNoActiveCode for unknown user, got %v", err)
	}
}

func TestHistoryHidesHashes(t *testing.T) {
	svc, cleanup := testService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.Issue(ctx, "amara@talentnest.io", "hr-1"); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Issue(ctx, "amara@talentnest.io", "hr-2"); err != nil {
		t.Fatalf("issue: %v", err)
	}

	records, err := svc.History(ctx, "amara@talentnest.io", 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if !records[1].Consumed {
		t.Fatal("expected the older record to be consumed by reissue")
	}
	if records[0].IssuedBy != "hr-2" {
		t.Fatalf("expected newest first, got %+v", records[0])
	}
}
