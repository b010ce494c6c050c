package worker

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/factforge/factforge/internal/model"
)

// MockChecker implements Checker interface
type MockChecker struct {
	ShouldError bool
}

func (m *MockChecker) CheckDocument(ctx context.Context, source string) (*model.Report, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.ShouldError {
		return nil, errors.New("check error")
	}
	return &model.Report{
		Subject: "Test Document",
		Source:  source,
	}, nil
}

func TestBatchProcessor_ProcessDocuments(t *testing.T) {
	checker := &MockChecker{}
	processor := NewBatchProcessor(checker, 2)

	sources := []string{"report-a.txt", "report-b.txt", "https://example.com/doc"}
	ctx := context.Background()

	results := processor.ProcessDocuments(ctx, sources)

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}

	successCount := 0
	for _, res := range results {
		if res.Error == nil {
			successCount++
			if res.Report == nil {
				t.Error("expected report for successful check")
			}
		} else {
			t.Errorf("unexpected error for %s: %v", res.Source, res.Error)
		}
	}

	if successCount != 3 {
		t.Errorf("expected 3 successes, got %d", successCount)
	}
}

func TestBatchProcessor_ProcessDocuments_Error(t *testing.T) {
	checker := &MockChecker{ShouldError: true}
	processor := NewBatchProcessor(checker, 2)

	results := processor.ProcessDocuments(context.Background(), []string{"report.txt"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Report != nil {
		t.Error("expected nil report on error")
	}
}

func TestBatchProcessor_ProcessDocuments_Empty(t *testing.T) {
	checker := &MockChecker{}
	processor := NewBatchProcessor(checker, 2)

	results := processor.ProcessDocuments(context.Background(), []string{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestReadSourcesFromFile(t *testing.T) {
	content := `report-a.txt
# comment
https://example.com/doc

report-b.txt   `

	tmpfile, err := os.CreateTemp("", "sources")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	sources, err := ReadSourcesFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadSourcesFromFile failed: %v", err)
	}

	expected := []string{"report-a.txt", "https://example.com/doc", "report-b.txt"}
	if len(sources) != len(expected) {
		t.Fatalf("expected %d sources, got %d", len(expected), len(sources))
	}

	for i, source := range sources {
		if source != expected[i] {
			t.Errorf("expected source %s at index %d, got %s", expected[i], i, source)
		}
	}
}

func TestReadSourcesFromFile_NonExistent(t *testing.T) {
	_, err := ReadSourcesFromFile("non_existent_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestCheckResult_GetError(t *testing.T) {
	r1 := &CheckResult{Source: "report.txt", Error: nil}
	if r1.GetError() != nil {
		t.Errorf("expected nil error, got %v", r1.GetError())
	}

	expected := errors.New("check failed")
	r2 := &CheckResult{Source: "report.txt", Error: expected}
	if r2.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, r2.GetError())
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	content := "report-a.txt\nhttps://example.com/doc\n# comment\n\nreport-b.txt\n"

	tmpfile, err := os.CreateTemp("", "batch_sources")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	checker := &MockChecker{}
	processor := NewBatchProcessor(checker, 2)

	results, err := processor.ProcessFile(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessFile_NonExistent(t *testing.T) {
	checker := &MockChecker{}
	processor := NewBatchProcessor(checker, 2)

	_, err := processor.ProcessFile(context.Background(), "no_such_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestBatchProcessor_ProcessFile_Empty(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "empty_sources")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	checker := &MockChecker{}
	processor := NewBatchProcessor(checker, 2)

	results, err := processor.ProcessFile(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results for empty file, got %d", len(results))
	}
}

func TestReadSourcesFromFile_Deduplication(t *testing.T) {
	content := `report.txt
report.txt`

	tmpfile, err := os.CreateTemp("", "sources_dedup")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	sources, err := ReadSourcesFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadSourcesFromFile failed: %v", err)
	}

	if len(sources) != 1 {
		t.Errorf("expected 1 source after deduplication, got %d", len(sources))
	}
}
