package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Infof(component, format string, args ...interface{}) {
	l.infos = append(l.infos, component+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(component, format string, args ...interface{}) {
	l.errors = append(l.errors, component+": "+fmt.Sprintf(format, args...))
}

func writeFont(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	return path
}

func TestLoadFromDisk(t *testing.T) {
	path := writeFont(t, "GoRegular.ttf", goregular.TTF)
	face, err := Load(Source{Path: path}, 48)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer face.Close()
	if asc := face.Metrics().Ascent.Ceil(); asc <= 0 || asc > 48 {
		t.Errorf("ascent = %d, want within (0, 48]", asc)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(Source{Path: filepath.Join(t.TempDir(), "nope.ttf")}, 12)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("not a font"), 12); err == nil {
		t.Fatal("Parse(garbage) succeeded, want error")
	}
	if _, err := Parse(gobold.TTF, 0); err == nil {
		t.Fatal("Parse(size 0) succeeded, want error")
	}
}

func TestLoaderSkipsBrokenCandidates(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.ttf")
	if err := os.WriteFile(broken, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	good := writeFont(t, "GoBold.ttf", gobold.TTF)

	log := &recordingLogger{}
	loader := Loader{
		Candidates: []Source{
			{Path: filepath.Join(dir, "missing.ttc")},
			{Path: broken},
			{Path: good},
			GoBold,
		},
		Logger: log,
	}
	set, src, err := loader.LoadSet(80, 180, 80, 55)
	if err != nil {
		t.Fatalf("LoadSet: %v", err)
	}
	defer set.Close()

	if src.Path != good {
		t.Errorf("picked %s, want %s", src, good)
	}
	if len(set) != 3 {
		t.Errorf("len(set) = %d, want 3 distinct sizes", len(set))
	}
	for _, size := range []float64{55, 80, 180} {
		if _, ok := set.Face(size); !ok {
			t.Errorf("missing face for size %v", size)
		}
	}
	if _, ok := set.Face(99); ok {
		t.Error("Face(99) reported present")
	}
	if len(log.errors) != 2 {
		t.Errorf("logged %d skip errors, want 2: %v", len(log.errors), log.errors)
	}
	if len(log.infos) != 1 || !strings.Contains(log.infos[0], good) {
		t.Errorf("info log = %v, want one line naming %s", log.infos, good)
	}
}

func TestLoaderNoCandidates(t *testing.T) {
	loader := Loader{Candidates: []Source{{Path: filepath.Join(t.TempDir(), "missing.ttf")}}}
	set, _, err := loader.LoadSet(12)
	if !errors.Is(err, ErrNoFont) {
		t.Fatalf("LoadSet error = %v, want ErrNoFont", err)
	}
	if _, ok := set.Face(12); ok {
		t.Error("empty set reported a face")
	}
	var nilSet Set
	if _, ok := nilSet.Face(12); ok {
		t.Error("nil set reported a face")
	}
}

func TestEmbeddedGoBold(t *testing.T) {
	set, src, err := Loader{Candidates: []Source{GoBold}}.LoadSet(40)
	if err != nil {
		t.Fatalf("LoadSet(GoBold): %v", err)
	}
	defer set.Close()
	if src.Path != GoBold.Path {
		t.Errorf("source = %s, want %s", src, GoBold)
	}
}
