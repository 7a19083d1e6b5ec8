package pulse

import (
	"context"
	"log"

	"github.com/devdollz/swarm-go/internal/transport"
)

// Operation is the asynchronous task the bridge runs per submission:
// compose the result, then deliver it when a live transport is available.
type Operation struct {
	Composer  *Composer
	Transport transport.Transport
	Capable   bool
}

// Run executes the operation. It never panics and never returns an empty
// result; the worst case degrades to the raw payload plus the closing tag.
// Delivery failure is logged, not propagated; the composed result is still
// returned.
func (o *Operation) Run(ctx context.Context, payload string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = payload + " " + o.tag()
			log.Printf("[pulse] operation failed (%v), falling back: %s", r, result)
		}
	}()

	result = o.Composer.Compose(ctx, payload)

	if o.Capable && o.Transport != nil {
		if err := o.Transport.Deliver(ctx, result); err != nil {
			log.Printf("[pulse] delivery via %s failed: %v", o.Transport.Name(), err)
		} else {
			log.Printf("[pulse] delivered via %s: %s", o.Transport.Name(), result)
		}
	} else {
		log.Printf("[pulse] simulated delivery: %s", result)
	}
	return result
}

func (o *Operation) tag() string {
	if o.Composer != nil && o.Composer.Tag != "" {
		return o.Composer.Tag
	}
	return DefaultTag
}
