package sink

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/bft-labs/dofcalc/pkg/dof"
)

// Stdout is the output path that selects standard output.
const Stdout = "-"

// Path returns the output path for a base filename and writer:
// base plus the writer's extension, unless base already carries it.
func Path(base string, w Writer) string {
	ext := "." + w.Extension()
	if filepath.Ext(base) == ext {
		return base
	}
	return base + ext
}

// WriteFile serializes rows and writes them to path atomically.
// The table is rendered in memory first, written to a temp file in the
// destination directory, then renamed over path. On failure no file is left
// at path and any temp file is removed.
func WriteFile(path string, w Writer, rows []dof.Row) error {
	var buf bytes.Buffer
	if err := w.Write(&buf, rows); err != nil {
		return dof.WrapError(dof.ErrCodeOutputFailed, err, "render %s", w.Format())
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return dof.WrapError(dof.ErrCodeOutputFailed, err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return dof.WrapError(dof.ErrCodeOutputFailed, err, "create temp file in %s", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return dof.WrapError(dof.ErrCodeOutputFailed, err, "write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return dof.WrapError(dof.ErrCodeOutputFailed, err, "close %s", tmpName)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return dof.WrapError(dof.ErrCodeOutputFailed, err, "chmod %s", tmpName)
	}

	// Atomic rename
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return dof.WrapError(dof.ErrCodeOutputFailed, err, "rename to %s", path)
	}
	return nil
}

// WriteTo serializes rows to out in one write, so a failed render leaves
// nothing behind on out.
func WriteTo(out io.Writer, w Writer, rows []dof.Row) error {
	var buf bytes.Buffer
	if err := w.Write(&buf, rows); err != nil {
		return dof.WrapError(dof.ErrCodeOutputFailed, err, "render %s", w.Format())
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		return dof.WrapError(dof.ErrCodeOutputFailed, err, "write %s output", w.Format())
	}
	return nil
}
