package logger

import "go.uber.org/zap"

// Initialize создаёт логгер zap в соответствии с уровнем логирования.
// Логгер возвращается вызывающему и передаётся компонентам явно
func Initialize(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()

	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return zl, nil
}
