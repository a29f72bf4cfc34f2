package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase — одна завершённая фаза анализа.
type Phase struct {
	Name string
	Dur  time.Duration
	Note string
}

// Timer собирает длительности фаз анализа для вывода под --timings.
// Не потокобезопасен: фазы открываются и закрываются из одной горутины.
type Timer struct {
	phases []Phase
}

func NewTimer() *Timer { return &Timer{} }

// Phase открывает фазу и возвращает функцию её завершения. Заметка
// попадает в отчёт рядом с длительностью (обычно количество файлов
// или классов).
func (t *Timer) Phase(name string) func(note string) {
	start := time.Now()
	return func(note string) {
		t.phases = append(t.phases, Phase{
			Name: name,
			Dur:  time.Since(start),
			Note: note,
		})
	}
}

// Summary возвращает человекочитаемую сводку по всем фазам.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-20s %7.2f ms\n", "total", report.TotalMS)
	return sb.String()
}

// PhaseReport — сериализуемая запись одной фазы.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report — агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: float64(phase.Dur) / float64(time.Millisecond),
			Note:       phase.Note,
		}
	}
	report.TotalMS = float64(total) / float64(time.Millisecond)
	return report
}
