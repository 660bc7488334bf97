package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-interval", "250", "-cell", "35", "-pattern", "glider", "-file", "x.txt"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.IntervalMS != 250 || cfg.CellSize != 35 || cfg.Pattern != "glider" || cfg.File != "x.txt" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Width != 960 || cfg.HUDWidth != 220 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}
