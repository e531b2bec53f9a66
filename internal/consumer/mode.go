package consumer

import (
	"fmt"
	"strings"

	"github.com/Gunvolt24/eventbus/internal/domain"
)

// ModeKind: единица обработки консьюмера.
type ModeKind string

const (
	ModeSingle ModeKind = "single"
	ModeBatch  ModeKind = "batch"
)

// Mode фиксирован на всё время жизни цикла.
type Mode struct {
	Kind ModeKind
	Size int // только для batch
}

// ParseMode разбирает режим из конфигурации.
func ParseMode(kind string, size int) (Mode, error) {
	switch ModeKind(strings.ToLower(strings.TrimSpace(kind))) {
	case ModeSingle, "":
		return Mode{Kind: ModeSingle}, nil
	case ModeBatch:
		m := Mode{Kind: ModeBatch, Size: size}
		if err := m.validate(); err != nil {
			return Mode{}, err
		}
		return m, nil
	default:
		return Mode{}, fmt.Errorf("%w: unknown consumer mode %q", domain.ErrInvalidConfig, kind)
	}
}

// BatchSize: сколько записей запрашивать за один poll.
func (m Mode) BatchSize() int {
	if m.Kind == ModeBatch {
		return m.Size
	}
	return 1
}

func (m Mode) validate() error {
	switch m.Kind {
	case ModeSingle:
		return nil
	case ModeBatch:
		if m.Size < 1 {
			return fmt.Errorf("%w: batch size must be >= 1, got %d", domain.ErrInvalidConfig, m.Size)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown consumer mode %q", domain.ErrInvalidConfig, m.Kind)
	}
}

// validateRegistry: консьюмер не смешивает батч- и одиночные обработчики.
func validateRegistry(m Mode, reg *Registry) error {
	if err := m.validate(); err != nil {
		return err
	}
	if reg == nil || reg.Len() == 0 {
		return fmt.Errorf("%w: no handlers registered", domain.ErrInvalidConfig)
	}
	wantBatch := m.Kind == ModeBatch
	for _, r := range reg.regs {
		if r.batch != wantBatch {
			return fmt.Errorf("%w: %s consumer cannot run handler for %v registered as batch=%t",
				domain.ErrInvalidConfig, m.Kind, r.topics, r.batch)
		}
	}
	return nil
}
