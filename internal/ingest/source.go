package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source описывает один источник из списка scraper_sources.yaml.
type Source struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Type     string `yaml:"type"`
	Category string `yaml:"category"`
	City     string `yaml:"city"`
	Official bool   `yaml:"official"`
}

// SourceParser читает список источников в формате YAML.
type SourceParser struct {
	log *slog.Logger
}

func NewSourceParser(log *slog.Logger) *SourceParser {
	return &SourceParser{log: log}
}

// Parse разбирает YAML-список источников. Пустой документ дает пустой список.
// Источники без имени пропускаются.
func (p *SourceParser) Parse(ctx context.Context, r io.Reader) ([]Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var raw []Source
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return []Source{}, nil
		}
		p.log.Error("Error decoding sources YAML", slog.Any("error", err))
		return nil, fmt.Errorf("failed to decode sources YAML: %w", err)
	}
	sources := make([]Source, 0, len(raw))
	for i, src := range raw {
		if strings.TrimSpace(src.Name) == "" {
			p.log.Warn("source without name, skipping",
				slog.Int("index", i),
				slog.String("url", src.URL),
			)
			continue
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// LoadFile читает список источников из файла.
func (p *SourceParser) LoadFile(ctx context.Context, path string) ([]Source, error) {
	f, err := os.Open(path)
	if err != nil {
		p.log.Error("Failed to open sources file",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to open sources file %s: %w", path, err)
	}
	defer f.Close()
	return p.Parse(ctx, f)
}
