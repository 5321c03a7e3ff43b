package datagen

import (
	"math/rand"
	"strings"
	"time"
)

// NewRand returns a random source seeded with seed, or with the current time if seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// SynthesizedFileName is the default export name of a table synthesized for topic.
func SynthesizedFileName(topic string) string {
	if topic == "" {
		topic = DefaultTopic
	}
	return strings.ReplaceAll(strings.ToLower(topic), " ", "_") + "_synthetic_data.csv"
}

// ResampledFileName is the default export name of a resampled table.
const ResampledFileName = "synthetic_data.csv"
