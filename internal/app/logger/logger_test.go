package logger_test

import (
	"testing"

	"github.com/issafronov/linkgen/internal/app/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{
			name:    "info_level",
			level:   "info",
			wantErr: false,
		},
		{
			name:    "debug_level",
			level:   "debug",
			wantErr: false,
		},
		{
			name:    "invalid_level",
			level:   "loud",
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			zl, err := logger.Initialize(test.level)
			if test.wantErr {
				assert.Error(t, err)
				assert.Nil(t, zl)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, zl)
		})
	}
}
