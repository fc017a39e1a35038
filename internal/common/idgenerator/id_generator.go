// Package idgenerator produces unique reference ids composed of an optional
// prefix, a millisecond timestamp and a base64-encoded UUID. They identify
// published loan events and idempotency records.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct{}

func New() Generator {
	return &IDGenerator{}
}

func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	epochTime := time.Now().UnixMilli()
	encodedUUID := rawURLEncodedUUID(uuid.New())

	if prefix == "" {
		return fmt.Sprintf("%d%s", epochTime, encodedUUID)
	}

	return fmt.Sprintf("%s-%d%s", prefix, epochTime, encodedUUID)
}

func rawURLEncodedUUID(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString(id[:])
}
