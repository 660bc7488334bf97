package term

import (
	"path/filepath"
	"strings"
	"testing"

	"infinite-life/internal/app"
	"infinite-life/pkg/life"
)

func newTestTerminal(t *testing.T) (*Terminal, *app.Session) {
	t.Helper()
	cfg := app.NewConfig()
	cfg.File = filepath.Join(t.TempDir(), app.DefaultLayoutFile)
	s := app.NewSession(cfg, nil)
	term := New(s, false)
	term.resize(5, 3)
	return term, s
}

func TestClickTogglesCellUnderCharacter(t *testing.T) {
	term, s := newTestTerminal(t)
	term.click(2, 1)
	if !s.Cells().Contains(life.Cell{X: 2, Y: 1}) {
		t.Fatalf("cells=%v, expected (2,1)", s.Cells().Cells())
	}
	want := "·····\n··█··\n·····"
	if got := term.frame(); got != want {
		t.Fatalf("frame=\n%s\nexpected\n%s", got, want)
	}

	term.click(2, 1)
	if s.Cells().Len() != 0 {
		t.Fatal("second click did not clear the cell")
	}
}

func TestPanShiftsFrame(t *testing.T) {
	term, s := newTestTerminal(t)
	s.Toggle(0, 0)
	if err := term.pan(1, 0); err != nil {
		t.Fatal(err)
	}
	if r := s.VisibleRange(); r.MinX != -1 || r.MinY != 0 {
		t.Fatalf("range=%+v after panning left", r)
	}
	want := "·█···\n·····\n·····"
	if got := term.frame(); got != want {
		t.Fatalf("frame=\n%s\nexpected\n%s", got, want)
	}
}

func TestStatusLines(t *testing.T) {
	term, s := newTestTerminal(t)
	s.Place("blinker", 0, 0)
	s.TogglePause()
	s.Step()

	joined := strings.Join(term.statusLines(), "\n")
	for _, want := range []string{"Generation: 1", "Population: 3", "Interval: 100 ms", "Mode: running", "Origin: 0,0"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("status missing %q:\n%s", want, joined)
		}
	}

	_ = s.Import("bad")
	joined = strings.Join(term.statusLines(), "\n")
	if !strings.Contains(joined, "failed to load layout") {
		t.Fatalf("status missing the load notice:\n%s", joined)
	}
}

func TestSpeedKeysClamp(t *testing.T) {
	term, s := newTestTerminal(t)
	for i := 0; i < 200; i++ {
		_ = term.cmdFaster()
	}
	if s.Speed() != app.MinIntervalMS {
		t.Fatalf("speed=%d, expected %d", s.Speed(), app.MinIntervalMS)
	}
	_ = term.cmdSlower()
	if s.Speed() != app.MinIntervalMS+speedStep {
		t.Fatalf("speed=%d after slowing down", s.Speed())
	}
}

func TestExportImportKeys(t *testing.T) {
	term, s := newTestTerminal(t)
	s.Place("glider", 0, 0)
	want := s.Export()
	_ = term.cmdExport()
	_ = term.cmdClear()
	_ = term.cmdImport()
	if s.Export() != want {
		t.Fatalf("round trip through the layout file gave %q, expected %q", s.Export(), want)
	}
}
