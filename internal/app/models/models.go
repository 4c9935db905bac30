package models

// LinksResponse представляет выходную структуру для JSON-режима вывода
type LinksResponse struct {
	BaseURL string   `json:"base_url"`
	Count   int      `json:"count"`
	Links   []string `json:"links"`
}
