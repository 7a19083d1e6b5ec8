// Package pulse turns a raw thought into a styled, deliverable result.
package pulse

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/devdollz/swarm-go/internal/generator"
)

// DefaultTag is appended to every composed result.
const DefaultTag = "#swarm"

// DefaultTemplates are the built-in styled transformations. Each template
// takes the transformed payload as its single %s argument.
func DefaultTemplates() []string {
	return []string{
		"pulse: %s",
		"shipped: %s",
		"live from the swarm: %s",
		"signal: %s",
		"echoing: %s",
	}
}

// SelectTemplate picks a template index for a payload: md5 the payload,
// take the first 8 hex digits as a base-16 number, reduce modulo n. The
// choice is reproducible for identical input without external randomness.
func SelectTemplate(payload string, n int) int {
	if n <= 0 {
		return 0
	}
	sum := md5.Sum([]byte(payload))
	prefix := hex.EncodeToString(sum[:])[:8]
	v, _ := strconv.ParseUint(prefix, 16, 64)
	return int(v % uint64(n))
}

// Composer produces the styled result text for a payload.
type Composer struct {
	Generator generator.Generator // optional downstream transform
	Templates []string
	Tag       string
}

// NewComposer creates a composer. Empty templates or tag get the defaults.
// A nil generator means payloads are styled as-is.
func NewComposer(gen generator.Generator, templates []string, tag string) *Composer {
	if len(templates) == 0 {
		templates = DefaultTemplates()
	}
	if tag == "" {
		tag = DefaultTag
	}
	return &Composer{Generator: gen, Templates: templates, Tag: tag}
}

// Compose transforms a payload into the result text. Generator output is
// used when non-empty; otherwise the original payload stands in. The
// template choice is keyed on the original payload, so identical inputs
// compose identically. Never returns an empty string.
func (c *Composer) Compose(ctx context.Context, payload string) string {
	text := payload
	if c.Generator != nil {
		out, err := c.Generator.Generate(ctx, payload)
		if err != nil {
			log.Printf("[pulse] generator failed, using raw payload: %v", err)
		} else if s := strings.TrimSpace(out); s != "" {
			text = s
		}
	}

	tmpl := c.Templates[SelectTemplate(payload, len(c.Templates))]
	return fmt.Sprintf(tmpl, text) + " " + c.Tag
}
