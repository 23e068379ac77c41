package course2osm

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	DEFAULT_GENERATOR = "course2osm"
	DEFAULT_MAP_SIZE  = 2048
)

// Converter builds OSM maps from course managers and extracts courses back
type Converter struct {
	ids       *IDGenerator
	logger    zerolog.Logger
	generator string
	timestamp time.Time
}

func (conv *Converter) String() string {
	return fmt.Sprintf(`
Course converter parameters:
	next_id: %d
	generator: '%s'
	timestamp: '%s'
	log_level: '%s'
	`,
		conv.ids.Peek(),
		conv.generator,
		conv.timestamp.Format(time.RFC3339),
		conv.logger.GetLevel(),
	)
}

// NewConverter returns converter with its own id sequence starting at DEFAULT_FIRST_ID
func NewConverter(options ...func(*Converter)) *Converter {
	conv := &Converter{
		ids:       NewIDGenerator(DEFAULT_FIRST_ID),
		logger:    zerolog.Nop(),
		generator: DEFAULT_GENERATOR,
		timestamp: time.Now().UTC().Truncate(time.Second),
	}
	for _, option := range options {
		option(conv)
	}
	return conv
}

func WithIDGenerator(ids *IDGenerator) func(*Converter) {
	return func(conv *Converter) {
		conv.ids = ids
	}
}

func WithLogger(logger zerolog.Logger) func(*Converter) {
	return func(conv *Converter) {
		conv.logger = logger
	}
}

func WithGenerator(generator string) func(*Converter) {
	return func(conv *Converter) {
		conv.generator = generator
	}
}

// WithTimestamp sets timestamp of synthesized nodes and ways
func WithTimestamp(ts time.Time) func(*Converter) {
	return func(conv *Converter) {
		conv.timestamp = ts.UTC()
	}
}
