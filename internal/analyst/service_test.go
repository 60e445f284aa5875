package analyst

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/tabledata/csv-analyst/internal/catalog"
	"github.com/tabledata/csv-analyst/internal/tabular"
	_ "github.com/tabledata/csv-analyst/internal/tabular/csvfmt"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	resolver, err := catalog.NewResolver(dir)
	if err != nil {
		t.Fatalf("NewResolver() unexpected error: %v", err)
	}
	return NewService(resolver, zap.NewNop()), dir
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestServiceListFiles(t *testing.T) {
	svc, dir := newTestService(t)
	writeFixture(t, dir, "b.csv", "a\n1\n")
	writeFixture(t, dir, "a.csv", "a\n1\n")
	writeFixture(t, dir, "skip.txt", "x")

	files, err := svc.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles() unexpected error: %v", err)
	}
	if len(files) != 2 || files[0].Name != "a.csv" || files[1].Name != "b.csv" {
		t.Errorf("ListFiles() = %v", files)
	}
}

func TestServicePreview(t *testing.T) {
	svc, dir := newTestService(t)
	writeFixture(t, dir, "people.csv", "id,name\n1,Alice\n2,\n3,Carol\n")

	resp, err := svc.Preview("people.csv", 2)
	if err != nil {
		t.Fatalf("Preview() unexpected error: %v", err)
	}
	if resp.TotalRowCount != 3 || len(resp.Rows) != 2 {
		t.Fatalf("Preview() rows = %d, total = %d", len(resp.Rows), resp.TotalRowCount)
	}
	if got := resp.Rows[0]["id"]; got != float64(1) {
		t.Errorf("id rendered as %v (%T), want float64 1", got, got)
	}
	if got := resp.Rows[0]["name"]; got != "Alice" {
		t.Errorf("name rendered as %v", got)
	}
	// Missing cells render as explicit nulls; the key is still present.
	if v, ok := resp.Rows[1]["name"]; !ok || v != nil {
		t.Errorf("missing cell rendered as %v (present=%v), want nil present", v, ok)
	}
}

func TestServiceDescribe(t *testing.T) {
	svc, dir := newTestService(t)
	writeFixture(t, dir, "scores.csv", "player,score\nAlice,10\nBob,\nAlice,20\n")

	resp, err := svc.Describe("scores.csv")
	if err != nil {
		t.Fatalf("Describe() unexpected error: %v", err)
	}
	if len(resp.Columns) != 2 || resp.Columns[0] != "player" {
		t.Fatalf("Describe() columns = %v", resp.Columns)
	}

	score := resp.Summary["score"]
	if score.Type != "numeric" || score.NonMissing != 2 || score.Missing != 1 {
		t.Errorf("score summary = %+v", score)
	}
	if score.Mean == nil || *score.Mean != 15 {
		t.Errorf("score mean = %v, want 15", score.Mean)
	}
	if score.Distinct != nil {
		t.Error("numeric column must not report distinct")
	}

	player := resp.Summary["player"]
	if player.Type != "text" || player.Distinct == nil || *player.Distinct != 2 {
		t.Errorf("player summary = %+v", player)
	}
	if player.MostFrequent == nil || *player.MostFrequent != "Alice" {
		t.Errorf("player most frequent = %v", player.MostFrequent)
	}
}

func TestServiceFilterEquals(t *testing.T) {
	svc, dir := newTestService(t)
	writeFixture(t, dir, "games.csv", "id,genre\n1,Strategy\n2,Puzzle\n3,Strategy\n")

	resp, err := svc.FilterEquals("games.csv", "genre", "Strategy")
	if err != nil {
		t.Fatalf("FilterEquals() unexpected error: %v", err)
	}
	if len(resp.Rows) != 2 {
		t.Fatalf("matched %d rows, want 2", len(resp.Rows))
	}
	if resp.Rows[0]["id"] != float64(1) || resp.Rows[1]["id"] != float64(3) {
		t.Errorf("matched rows = %v", resp.Rows)
	}

	_, err = svc.FilterEquals("games.csv", "publisher", "x")
	var uc *tabular.ErrUnknownColumn
	if !errors.As(err, &uc) {
		t.Errorf("FilterEquals() error = %v, want ErrUnknownColumn", err)
	}
}

func TestServiceErrorPropagation(t *testing.T) {
	svc, dir := newTestService(t)
	writeFixture(t, dir, "empty.csv", "")

	_, err := svc.Preview("absent.csv", 5)
	var nf *tabular.ErrNotFound
	if !errors.As(err, &nf) {
		t.Errorf("Preview(absent) error = %v, want ErrNotFound", err)
	}

	_, err = svc.Describe("../empty.csv")
	var ip *tabular.ErrInvalidPath
	if !errors.As(err, &ip) {
		t.Errorf("Describe(../) error = %v, want ErrInvalidPath", err)
	}

	_, err = svc.Describe("empty.csv")
	var ef *tabular.ErrEmptyFile
	if !errors.As(err, &ef) {
		t.Errorf("Describe(empty) error = %v, want ErrEmptyFile", err)
	}

	_, err = svc.Preview("empty.csv", 0)
	if err == nil {
		t.Error("Preview(n=0) should fail")
	}
}
