package cmd

import (
	"log"
	"time"

	"github.com/devdollz/swarm-go/internal/config"
	"github.com/devdollz/swarm-go/internal/generator"
	"github.com/devdollz/swarm-go/internal/pulse"
	"github.com/devdollz/swarm-go/internal/transport"
)

// buildTransport creates the configured delivery transport.
func buildTransport(cfg config.TransportConfig) transport.Transport {
	switch cfg.Kind {
	case "websocket":
		return transport.NewWebSocket(cfg.URL, cfg.Token)
	case "redis":
		return transport.NewRedis(cfg.URL, cfg.Password, cfg.List, cfg.Channel)
	default:
		return transport.NewSimulated()
	}
}

// buildComposer creates the pulse composer from config.
func buildComposer(cfg config.Config) *pulse.Composer {
	var gen generator.Generator
	if cfg.Generator.Enabled {
		gen = generator.NewHTTP(cfg.Generator.BaseURL, cfg.Generator.Model,
			time.Duration(cfg.Generator.TimeoutMS)*time.Millisecond)
	}

	templates := pulse.DefaultTemplates()
	tag := cfg.Pulse.Tag
	if cfg.Pulse.TemplatesFile != "" {
		tf, err := pulse.LoadTemplates(cfg.Pulse.TemplatesFile)
		if err != nil {
			log.Printf("templates file unusable, using defaults: %v", err)
		} else {
			templates = tf.Templates
			if tag == "" {
				tag = tf.Tag
			}
		}
	}
	return pulse.NewComposer(gen, templates, tag)
}
