package parse

import (
	"fmt"
	"time"

	"github.com/hearthchat/hearth/internal/lru"
)

// Default configuration values.
const (
	// DefaultCacheCapacity bounds the parse cache.
	DefaultCacheCapacity = 100
)

// Config holds parsing service configuration.
type Config struct {
	// CacheCapacity is the maximum number of parsed messages kept in the
	// cache. Values below 1 are clamped to 1.
	// Default: 100
	CacheCapacity int

	// StripToolTags enables removal of tool-protocol XML elements.
	// Default: true
	StripToolTags bool

	// StripBoxTags enables removal of box annotation wrappers.
	// Default: true
	StripBoxTags bool

	// ExtractArtifacts enables artifact extraction.
	// Default: true
	ExtractArtifacts bool

	// ExtractThinking enables reasoning-block extraction.
	// Default: true
	ExtractThinking bool
}

// DefaultConfig returns a Config with all pipeline stages enabled.
func DefaultConfig() Config {
	return Config{
		CacheCapacity:    DefaultCacheCapacity,
		StripToolTags:    true,
		StripBoxTags:     true,
		ExtractArtifacts: true,
		ExtractThinking:  true,
	}
}

// Options carries per-call parse settings.
type Options struct {
	// IsStreaming marks the content as partial. Streaming parses bypass the
	// cache on both read and write: a later, fuller text would hash
	// differently, and a stale partial result must never be served.
	IsStreaming bool

	// SkipCache bypasses the cache for this call only.
	SkipCache bool

	// ExtractArtifacts overrides the service setting when non-nil.
	ExtractArtifacts *bool

	// ExtractThinking overrides the service setting when non-nil.
	ExtractThinking *bool
}

// ParsedMessage is the immutable result of parsing one message. A re-parse
// produces a new value; cached results are shared, never mutated.
type ParsedMessage struct {
	Raw                string
	Hash               string
	Thinking           ThinkingResult
	Artifacts          []Artifact
	ContentNoArtifacts string
	Segments           []Segment
	IsStreaming        bool
	ParsedAt           time.Time
}

// Stats reports cache behavior counters for the service.
type Stats struct {
	Hits     int
	Misses   int
	Size     int
	Capacity int
}

// Service transforms raw model-output text into structured renderable
// segments, caching results by content hash. All methods are synchronous
// and total; the service assumes a single logical thread of execution.
type Service struct {
	config Config
	cache  *lru.Cache[string, *ParsedMessage]

	hits   int
	misses int
}

// NewService creates a parsing service with the given configuration.
func NewService(config Config) *Service {
	return &Service{
		config: config,
		cache:  lru.New[string, *ParsedMessage](config.CacheCapacity),
	}
}

// Default returns a service with the full pipeline and standard cache.
func Default() *Service {
	return NewService(DefaultConfig())
}

// Streaming returns a service tuned for live token streams: the cache is
// reduced to a single slot since streaming parses never populate it anyway.
func Streaming() *Service {
	cfg := DefaultConfig()
	cfg.CacheCapacity = 1
	return NewService(cfg)
}

// Minimal returns a strip-only service for server-side use where artifacts
// and reasoning are handled elsewhere.
func Minimal() *Service {
	cfg := DefaultConfig()
	cfg.ExtractArtifacts = false
	cfg.ExtractThinking = false
	return NewService(cfg)
}

// Parse runs the full pipeline over content: tool-tag strip, box-tag strip,
// artifact extraction, reasoning extraction (recursing into artifacts hidden
// inside the trace), then markdown segmentation. Results for non-streaming
// parses are cached by content hash; repeated calls with identical input
// return the cached object.
func (s *Service) Parse(content string, opts Options) *ParsedMessage {
	if content == "" {
		return &ParsedMessage{
			Thinking:    ThinkingResult{ThinkingComplete: true},
			IsStreaming: opts.IsStreaming,
			ParsedAt:    time.Now(),
		}
	}

	extractArtifacts := s.config.ExtractArtifacts
	if opts.ExtractArtifacts != nil {
		extractArtifacts = *opts.ExtractArtifacts
	}
	extractThinking := s.config.ExtractThinking
	if opts.ExtractThinking != nil {
		extractThinking = *opts.ExtractThinking
	}

	useCache := !opts.IsStreaming && !opts.SkipCache
	key := cacheKey(content, extractArtifacts, extractThinking)
	if useCache {
		if cached, ok := s.cache.Get(key); ok {
			s.hits++
			return cached
		}
		s.misses++
	}

	text := content
	if s.config.StripToolTags {
		text = StripToolTags(text)
	}
	if s.config.StripBoxTags {
		text = StripBoxTags(text)
	}

	var artifacts []Artifact
	if extractArtifacts {
		artifacts, text = ExtractArtifacts(text)
	}

	thinking := ThinkingResult{MainContent: text, ThinkingComplete: true}
	if extractThinking {
		thinking = ExtractThinking(text)
		if extractArtifacts && thinking.ThinkingContent != "" {
			// Artifacts opened inside the reasoning trace belong in the same
			// result list; the trace keeps only its prose.
			nested, patched := ExtractArtifacts(thinking.ThinkingContent)
			if len(nested) > 0 {
				artifacts = append(artifacts, nested...)
				thinking.ThinkingContent = patched
			}
		}
	}

	result := &ParsedMessage{
		Raw:                content,
		Hash:               HashContent(content),
		Thinking:           thinking,
		Artifacts:          artifacts,
		ContentNoArtifacts: thinking.MainContent,
		Segments:           SplitSegments(thinking.MainContent),
		IsStreaming:        opts.IsStreaming,
		ParsedAt:           time.Now(),
	}

	if useCache {
		s.cache.Set(key, result)
	}
	return result
}

// ParseThinking extracts the first reasoning block without running the full
// pipeline.
func (s *Service) ParseThinking(content string) ThinkingResult {
	return ExtractThinking(content)
}

// ExtractThinkingBlocks enumerates every reasoning block in content.
func (s *Service) ExtractThinkingBlocks(content string) []ThinkingBlock {
	return ExtractThinkingBlocks(content)
}

// ParseArtifacts extracts artifacts without running the full pipeline.
func (s *Service) ParseArtifacts(content string) ([]Artifact, string) {
	return ExtractArtifacts(content)
}

// StripTags applies both strip filters in order.
func (s *Service) StripTags(content string) string {
	return StripTags(content)
}

// Segments splits content into markdown/code segments.
func (s *Service) Segments(content string) []Segment {
	return SplitSegments(content)
}

// RenderMarkdown renders one markdown segment to sanitized display markup.
func (s *Service) RenderMarkdown(md string) string {
	return RenderMarkdown(md)
}

// ArtifactTypeForLanguage maps a fence language token to an artifact type.
func (s *Service) ArtifactTypeForLanguage(lang string) (ArtifactType, bool) {
	return ArtifactTypeForLanguage(lang)
}

// Cached returns the cached parse for a content hash, if present. The hash
// is the one reported on ParsedMessage.Hash; lookups consider every flag
// variant, newest first.
func (s *Service) Cached(hash string) (*ParsedMessage, bool) {
	for _, marker := range flagMarkers {
		if msg, ok := s.cache.Get(hash + marker); ok {
			return msg, true
		}
	}
	return nil, false
}

// Invalidate removes every cached variant of a content hash.
func (s *Service) Invalidate(hash string) {
	for _, marker := range flagMarkers {
		s.cache.Delete(hash + marker)
	}
}

// ClearCache drops every cached parse.
func (s *Service) ClearCache() {
	s.cache.Clear()
}

// CacheSize returns the number of cached parses.
func (s *Service) CacheSize() int {
	return s.cache.Len()
}

// Stats returns cache hit/miss counters alongside the current size.
func (s *Service) Stats() Stats {
	return Stats{
		Hits:     s.hits,
		Misses:   s.misses,
		Size:     s.cache.Len(),
		Capacity: s.cache.Capacity(),
	}
}

// flagMarkers lists every cache-key suffix a parse can be stored under, one
// per extraction-flag combination.
var flagMarkers = []string{":a1t1", ":a1t0", ":a0t1", ":a0t0"}

func cacheKey(content string, artifacts, thinking bool) string {
	return fmt.Sprintf("%s:a%dt%d", HashContent(content), boolBit(artifacts), boolBit(thinking))
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}
