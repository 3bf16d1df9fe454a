package sink

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bft-labs/dofcalc/pkg/dof"
)

var sampleRows = []dof.Row{
	{FStop: 2.0, Hyperfocal: 367.5, SubjectDistance: 1.0, NearLimit: 0.998, FarLimit: 1.002},
	{FStop: 22.0, Hyperfocal: 0.15, SubjectDistance: 1.0, NearLimit: 0.133, FarLimit: math.Inf(1)},
}

func TestNew(t *testing.T) {
	for _, name := range []string{"csv", "json", "table"} {
		w, err := New(name)
		if err != nil {
			t.Fatalf("New(%q) unexpected error: %v", name, err)
		}
		if w.Format() != name {
			t.Errorf("New(%q).Format() = %q", name, w.Format())
		}
	}

	if _, err := New("pandas"); !dof.Is(err, dof.ErrCodeInvalidFormat) {
		t.Errorf("New(pandas) error = %v, want %s", err, dof.ErrCodeInvalidFormat)
	}
	if diff := cmp.Diff([]string{"csv", "json", "table"}, Formats()); diff != "" {
		t.Errorf("Formats() mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (CSVWriter{}).Write(&buf, sampleRows); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	want := "f-stop,hyperfocal,subj-dist,near-limit,far-limit\n" +
		"2.0,367.50,1.00,0.998,1.002\n" +
		"22.0,0.15,1.00,0.133,inf\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("CSV mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONWriter{}).Write(&buf, sampleRows); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []map[string]any{
		{"f_stop": 2.0, "hyperfocal": 367.5, "subject_distance": 1.0, "near_limit": 0.998, "far_limit": 1.002},
		{"f_stop": 22.0, "hyperfocal": 0.15, "subject_distance": 1.0, "near_limit": 0.133, "far_limit": nil},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestTableWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (TableWriter{}).Write(&buf, sampleRows); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	out := buf.String()
	want := append([]string{"367.50", "0.998", "inf"}, Columns...)
	for _, s := range want {
		if !strings.Contains(out, s) {
			t.Errorf("table output missing %q:\n%s", s, out)
		}
	}
}

func TestPath(t *testing.T) {
	tests := []struct {
		base, format, want string
	}{
		{"DoFcalc", "csv", "DoFcalc.csv"},
		{"out/lens.csv", "csv", "out/lens.csv"},
		{"lens.csv", "json", "lens.csv.json"},
		{"lens", "table", "lens.txt"},
	}
	for _, tt := range tests {
		w, err := New(tt.format)
		if err != nil {
			t.Fatal(err)
		}
		if got := Path(tt.base, w); got != tt.want {
			t.Errorf("Path(%q, %s) = %q, want %q", tt.base, tt.format, got, tt.want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "lens.csv")

	if err := WriteFile(path, CSVWriter{}, sampleRows); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var want bytes.Buffer
	if err := (CSVWriter{}).Write(&want, sampleRows); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want.Bytes()) {
		t.Errorf("file content = %q, want %q", got, want.String())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the output file", len(entries))
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lens.csv")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, CSVWriter{}, sampleRows[:1]); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}
	got, _ := os.ReadFile(path)
	if strings.Contains(string(got), "stale") {
		t.Errorf("old content survived: %q", got)
	}
}

func TestWriteFile_Failure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// The parent of the destination is a regular file.
	path := filepath.Join(blocker, "lens.csv")
	err := WriteFile(path, CSVWriter{}, sampleRows)
	if !dof.Is(err, dof.ErrCodeOutputFailed) {
		t.Fatalf("WriteFile() error = %v, want %s", err, dof.ErrCodeOutputFailed)
	}
	// Stat fails with ENOTDIR here, not ENOENT.
	if _, err := os.Stat(path); err == nil {
		t.Error("output exists after failure")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, os.ErrClosed }

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, CSVWriter{}, sampleRows); err != nil {
		t.Fatalf("WriteTo() unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "f-stop,") {
		t.Errorf("WriteTo() output = %q", buf.String())
	}

	if err := WriteTo(failingWriter{}, CSVWriter{}, sampleRows); !dof.Is(err, dof.ErrCodeOutputFailed) {
		t.Errorf("WriteTo() error = %v, want %s", err, dof.ErrCodeOutputFailed)
	}
}
