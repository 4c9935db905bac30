package service

import "context"

// Service определяет бизнес-логику генерации тестовых ссылок
type Service interface {
	// GenerateLinks возвращает ссылки в порядке генерации
	GenerateLinks(ctx context.Context, baseURL string, count int, pathPattern string) ([]string, error)

	// GenerateRandomizedLinks возвращает сгенерированные ссылки в случайном порядке
	GenerateRandomizedLinks(ctx context.Context, baseURL string, count int, pathPattern string) ([]string, error)
}
