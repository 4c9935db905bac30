// Package tld выбирает случайные домены верхнего уровня для генерируемых ссылок.
package tld

import (
	"math/rand"

	"go.uber.org/zap"
)

// DefaultCandidates — список распространённых TLD, используемый по умолчанию
var DefaultCandidates = []string{"com", "net", "org", "info", "biz", "co", "us", "uk"}

const lowercaseLetters = "abcdefghijklmnopqrstuvwxyz"

// Picker выбирает случайный TLD: либо элемент из списка кандидатов,
// либо синтезированную строку из случайных строчных букв
type Picker struct {
	rnd        *rand.Rand
	candidates []string
	logger     *zap.Logger
}

// Option настраивает Picker при создании
type Option func(*Picker)

// WithCandidates задаёт собственный список кандидатов TLD.
// Пустой список игнорируется, остаётся список по умолчанию
func WithCandidates(candidates []string) Option {
	return func(p *Picker) {
		if len(candidates) > 0 {
			p.candidates = candidates
		}
	}
}

// WithLogger задаёт логгер для диагностических сообщений
func WithLogger(logger *zap.Logger) Option {
	return func(p *Picker) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New создаёт Picker с указанным источником случайности
func New(rnd *rand.Rand, opts ...Option) *Picker {
	p := &Picker{
		rnd:        rnd,
		candidates: DefaultCandidates,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pick возвращает случайный TLD. С вероятностью 1/2 берётся элемент
// из списка кандидатов, иначе синтезируется строка из 2-3 строчных букв
func (p *Picker) Pick() string {
	var t string
	if p.rnd.Intn(2) == 0 {
		t = p.candidates[p.rnd.Intn(len(p.candidates))]
	} else {
		b := make([]byte, 2+p.rnd.Intn(2))
		for i := range b {
			b[i] = lowercaseLetters[p.rnd.Intn(len(lowercaseLetters))]
		}
		t = string(b)
	}
	p.logger.Debug("picked TLD", zap.String("tld", t))
	return t
}
