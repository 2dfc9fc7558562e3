package match

import (
	"testing"

	"github.com/younwookim/pitch/internal/application/system"
	"github.com/younwookim/pitch/internal/domain/entity"
	"github.com/younwookim/pitch/internal/infrastructure/config"
)

func newBenchMatch(b *testing.B, opts ...Option) *Match {
	b.Helper()
	m, err := New(config.DefaultMatchConfig(), config.DefaultFormation(), 1, opts...)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

// stepResetting advances one tick and restores the formation after a goal
func stepResetting(m *Match, in system.InputState) {
	m.Step(in, 1.0/60.0)
	for _, e := range m.Events() {
		if e.Kind == entity.EventGoal {
			m.ResetFormation()
		}
	}
}

func BenchmarkStep_AIOnly(b *testing.B) {
	m := newBenchMatch(b, WithAIOnly())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stepResetting(m, system.InputState{})
	}
}

func BenchmarkStep_Controlled(b *testing.B) {
	m := newBenchMatch(b)
	in := system.InputState{Forward: true, Kick: true}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stepResetting(m, in)
	}
}

func BenchmarkRecomputeTacticalMarkers(b *testing.B) {
	m := newBenchMatch(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.RecomputeTacticalMarkers()
	}
}
