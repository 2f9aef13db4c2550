package motorista

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMesesAntiguidade(t *testing.T) {
	agora := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		inicio time.Time
		quer   int
	}{
		{"um ano completo", time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC), 12},
		{"mês incompleto não conta", time.Date(2024, time.August, 20, 0, 0, 0, 0, time.UTC), 11},
		{"começou este mês", time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), 0},
		{"data futura vale zero", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
		{"sem data de início", time.Time{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Motorista{DataInicio: tt.inicio}
			assert.Equal(t, tt.quer, m.MesesAntiguidade(agora))
		})
	}
}
