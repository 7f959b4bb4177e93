package sketchbook

import "testing"

func TestLineArtFillDecays(t *testing.T) {
	cfg := DefaultLineArtConfig()
	l := NewLineArt(cfg)

	l.Update(Frame{Tick: 1})
	if l.Fill() != cfg.From {
		t.Errorf("first fill = %+v, want From %+v", l.Fill(), cfg.From)
	}
	assertNear(t, "amount after one tick", l.Amount, cfg.Decay)

	l.Update(Frame{Tick: 2})
	want := LerpColor(cfg.To, cfg.From, cfg.Decay)
	assertNear(t, "fill.R", l.Fill().R, want.R)
	assertNear(t, "fill.G", l.Fill().G, want.G)
	assertNear(t, "fill.B", l.Fill().B, want.B)
}

func TestLineArtConvergesToTarget(t *testing.T) {
	cfg := DefaultLineArtConfig()
	l := NewLineArt(cfg)
	for tick := 1; tick <= 5000; tick++ {
		l.Update(Frame{Tick: tick})
	}
	if d := l.Fill().R - cfg.To.R; d > 1e-3 || d < -1e-3 {
		t.Errorf("fill.R = %v, want close to %v", l.Fill().R, cfg.To.R)
	}
}

func TestLineArtSetupClearsOnce(t *testing.T) {
	cfg := DefaultLineArtConfig()
	l := NewLineArt(cfg)
	s := newRecordingSurface(800, 600)
	l.Setup(s)
	l.Update(Frame{Tick: 1})
	l.Draw(s, 1)
	l.Update(Frame{Tick: 2})
	l.Draw(s, 2)

	if s.count("clear") != 1 {
		t.Errorf("clears = %d, want 1", s.count("clear"))
	}
	if s.calls[0].color != cfg.Background {
		t.Errorf("background = %+v", s.calls[0].color)
	}
}

func TestLineArtDrawGrowsWithTick(t *testing.T) {
	l := NewLineArt(DefaultLineArtConfig())
	s := newRecordingSurface(800, 600)
	l.Update(Frame{Tick: 60})
	l.Draw(s, 60)

	c := s.calls[0]
	if c.op != "fill" || c.blend != BlendLightest {
		t.Fatalf("call = %+v", c)
	}
	assertNear(t, "x", c.x, 400+30)
	assertNear(t, "y", c.y, 300)
	assertNear(t, "w", c.w, 60)
	assertNear(t, "h", c.h, 20)
	if s.rot != 0 || len(s.stack) != 0 {
		t.Error("draw should restore the transform")
	}
}
