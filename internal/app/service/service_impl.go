package service

import (
	"context"

	"github.com/issafronov/linkgen/internal/app/generator"
)

type linkService struct {
	generator *generator.Generator
}

// NewService создаёт новый экземпляр сервиса
func NewService(g *generator.Generator) Service {
	return &linkService{generator: g}
}

// GenerateLinks генерирует ссылки в порядке следования индексов
func (s *linkService) GenerateLinks(ctx context.Context, baseURL string, count int, pathPattern string) ([]string, error) {
	return s.generator.Generate(ctx, baseURL, count, pathPattern)
}

// GenerateRandomizedLinks генерирует ссылки и перемешивает их порядок
func (s *linkService) GenerateRandomizedLinks(ctx context.Context, baseURL string, count int, pathPattern string) ([]string, error) {
	links, err := s.generator.Generate(ctx, baseURL, count, pathPattern)
	if err != nil {
		return nil, err
	}
	return s.generator.Shuffle(links), nil
}
