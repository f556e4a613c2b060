package uiscale

import "testing"

type panicScreen struct{}

func (panicScreen) PrimaryScreenHeight() (int, bool) { panic("display query") }

func TestSafeLineSpacing(t *testing.T) {
	tests := []struct {
		name   string
		raw    int
		screen ScreenInfo
		want   int
	}{
		{"small no screen", 10, nil, 10},
		{"bogus no screen", 500, nil, 25},
		{"bogus tall screen", 500, FixedScreen(800), 25},
		{"short screen", 10, FixedScreen(50), 5},
		{"zero no screen", 0, nil, 0},
		{"zero short screen", 0, FixedScreen(50), 0},
		{"zero tall screen", 0, FixedScreen(1080), 0},
		{"no screen type", 40, NoScreen{}, 25},
		{"screen floors", 30, FixedScreen(239), 23},
		{"zero height screen", 30, FixedScreen(0), 25},
		{"at cap", 25, FixedScreen(1080), 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeLineSpacing(FixedMetrics(tt.raw), tt.screen)
			if got != tt.want {
				t.Fatalf("SafeLineSpacing(%d) = %d want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSafeLineSpacingMatchesCaps(t *testing.T) {
	for h := 1; h <= 400; h += 7 {
		for raw := 0; raw <= 600; raw += 13 {
			got := SafeLineSpacing(FixedMetrics(raw), FixedScreen(h))
			want := min(raw, MaxLineSpacing, h/MaxScreenFraction)
			if got != want {
				t.Fatalf("raw=%d h=%d: got %d want %d", raw, h, got, want)
			}
		}
	}
}

func TestSafeLineSpacingMonotonic(t *testing.T) {
	screens := []ScreenInfo{nil, FixedScreen(120), FixedScreen(1440)}
	for _, s := range screens {
		prev := -1
		for raw := 0; raw <= 200; raw++ {
			got := SafeLineSpacing(FixedMetrics(raw), s)
			if got < prev {
				t.Fatalf("screen %v: result dropped from %d to %d at raw=%d", s, prev, got, raw)
			}
			if again := SafeLineSpacing(FixedMetrics(raw), s); again != got {
				t.Fatalf("screen %v: second call = %d want %d", s, again, got)
			}
			prev = got
		}
	}
}

func TestSafeLineSpacingReadsMetricsOnce(t *testing.T) {
	calls := 0
	fm := LineSpacingFunc(func() int {
		calls++
		return 18
	})
	if got := SafeLineSpacing(fm, FixedScreen(1080)); got != 18 {
		t.Fatalf("got %d want 18", got)
	}
	if calls != 1 {
		t.Fatalf("LineSpacing called %d times want 1", calls)
	}
}

func TestSafeLineSpacingMonitorPanics(t *testing.T) {
	old := monitorSize
	defer func() { monitorSize = old }()
	monitorSize = func() (int, int, bool) { panic("no display") }

	if got := SafeLineSpacing(FixedMetrics(500), PrimaryMonitor{}); got != MaxLineSpacing {
		t.Fatalf("got %d want %d", got, MaxLineSpacing)
	}
}

func TestSafeLineSpacingScreenPanics(t *testing.T) {
	if got := SafeLineSpacing(FixedMetrics(10), panicScreen{}); got != 10 {
		t.Fatalf("got %d want 10", got)
	}
	if got := SafeLineSpacing(FixedMetrics(90), panicScreen{}); got != MaxLineSpacing {
		t.Fatalf("got %d want %d", got, MaxLineSpacing)
	}
}
