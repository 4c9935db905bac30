// Package generator строит список синтетических ссылок на основе базового URL.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// placeholder — место подстановки индекса ссылки в шаблоне пути
const placeholder = "{}"

var ErrInvalidBaseURL = errors.New("invalid base url")
var ErrInvalidPathPattern = errors.New("invalid path pattern")
var ErrNegativeCount = errors.New("negative link count")

// TLDPicker возвращает случайный TLD для очередной ссылки
type TLDPicker interface {
	Pick() string
}

// Generator строит ссылки, подменяя домен верхнего уровня и путь базового URL
type Generator struct {
	picker TLDPicker
	rnd    *rand.Rand
	logger *zap.Logger
}

// New создаёт Generator с указанными источником TLD и источником случайности
func New(picker TLDPicker, rnd *rand.Rand, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		picker: picker,
		rnd:    rnd,
		logger: logger,
	}
}

// Generate возвращает count ссылок в порядке генерации. Каждая ссылка
// наследует схему, query и фрагмент базового URL; первая метка хоста
// сохраняется, TLD подменяется, путь строится из pathPattern подстановкой
// индекса 1..count. Порт и userinfo базового URL не переносятся
func (g *Generator) Generate(ctx context.Context, baseURL string, count int, pathPattern string) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}

	if n := strings.Count(pathPattern, placeholder); n != 1 {
		return nil, fmt.Errorf("%w: %q contains %d placeholders, want exactly one", ErrInvalidPathPattern, pathPattern, n)
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidBaseURL, baseURL, err)
	}

	if parsed.Hostname() == "" {
		return nil, fmt.Errorf("%w: %q has no hostname", ErrInvalidBaseURL, baseURL)
	}

	// первая метка хоста; хост без точек используется целиком
	baseHostname, _, _ := strings.Cut(parsed.Hostname(), ".")

	links := make([]string, 0, count)

	for i := 1; i <= count; i++ {
		link := url.URL{
			Scheme:   parsed.Scheme,
			Host:     baseHostname + "." + g.picker.Pick(),
			Path:     strings.Replace(pathPattern, placeholder, strconv.Itoa(i), 1),
			RawQuery: parsed.RawQuery,
			Fragment: parsed.Fragment,
		}
		links = append(links, link.String())
	}

	g.logger.Info("generated links",
		zap.Int("count", len(links)),
		zap.String("base_url", baseURL),
	)
	return links, nil
}

// Shuffle перемешивает ссылки на месте и возвращает тот же срез.
// Срез из нуля или одного элемента возвращается без изменений
func (g *Generator) Shuffle(links []string) []string {
	if len(links) < 2 {
		return links
	}

	g.rnd.Shuffle(len(links), func(i, j int) {
		links[i], links[j] = links[j], links[i]
	})

	g.logger.Info("randomized link order", zap.Int("count", len(links)))
	return links
}
