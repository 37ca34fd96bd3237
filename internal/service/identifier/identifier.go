package identifier

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	orderNumberPrefix = "#PAKO"
	missionPrefix     = "MIS"

	maxMissionAttempts = 10

	packageCodeMaxLen   = 50
	packagePrefixMaxLen = 10
	packageSeedMaxLen   = 6
	defaultPrefix       = "PKG"
)

// Generator mints human-readable identifiers for orders, packages and
// missions. Mission numbers are checked against the store before use; the
// store's unique constraint remains the backstop.
type Generator struct {
	repository Repository
	retryDelay time.Duration
}

func New(repository Repository, retryDelay time.Duration) *Generator {
	return &Generator{
		repository: repository,
		retryDelay: retryDelay,
	}
}

// OrderNumber returns `#PAKO-YYYYMMDD-NNN`. The random suffix is not checked
// against the store; collisions are acceptably rare and the unique constraint
// on orders.number rejects the remainder.
func (g *Generator) OrderNumber() string {
	now := time.Now().UTC()
	return fmt.Sprintf("%s-%s-%03d", orderNumberPrefix, now.Format("20060102"), rand.IntN(1000))
}

// MissionNumber returns `MIS-YYMMDDHHMMSS-NNN` (20 chars), re-sampling the
// random suffix up to maxMissionAttempts with a short delay between attempts
// while the candidate already exists in the store. On exhaustion it falls
// back to a uuid-derived identifier whose collision probability is
// negligible; only an unusable fallback surfaces ErrIdentifierExhausted.
func (g *Generator) MissionNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxMissionAttempts; attempt++ {
		if attempt > 0 {
			if err := g.waitRetryDelay(ctx); err != nil {
				return "", err
			}
		}

		now := time.Now().UTC()
		candidate := fmt.Sprintf("%s-%s-%03d", missionPrefix, now.Format("060102150405"), rand.IntN(1000))

		exists, err := g.repository.MissionNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check mission number: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}

	fallback := fallbackMissionNumber()
	exists, err := g.repository.MissionNumberExists(ctx, fallback)
	if err != nil {
		return "", fmt.Errorf("check fallback mission number: %w", err)
	}
	if exists {
		return "", ErrIdentifierExhausted
	}
	return fallback, nil
}

// PackageCode derives a globally unique package code from the order number, a
// seed identifier and the 1-based package index. Result is uppercase
// alphanumeric with dashes, capped at 50 chars.
func (g *Generator) PackageCode(orderNumber, seed string, index int) string {
	prefix := sanitizeAlnum(orderNumber, packagePrefixMaxLen)
	if prefix == "" {
		prefix = defaultPrefix
	}

	shortSeed := sanitizeAlnum(seed, packageSeedMaxLen)

	now := time.Now().UTC()
	code := fmt.Sprintf("%s-%s-%s-%03d", prefix, shortSeed, now.Format("060102150405"), index)
	code = strings.Trim(strings.ReplaceAll(code, "--", "-"), "-")

	if len(code) > packageCodeMaxLen {
		code = code[:packageCodeMaxLen]
	}
	return code
}

func (g *Generator) waitRetryDelay(ctx context.Context) error {
	if g.retryDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(g.retryDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func fallbackMissionNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return missionPrefix + "-" + raw[:16]
}

func sanitizeAlnum(s string, maxLen int) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == maxLen {
			break
		}
	}
	return b.String()
}
