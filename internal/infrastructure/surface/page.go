package surface

import (
	"sync"

	"github.com/sangkips/salesreport-charts/internal/application/service"
	"github.com/sangkips/salesreport-charts/pkg/chartjs"
)

// PageSurface models a dashboard page: a set of canvas elements that keep
// the last Chart.js config drawn on them.
type PageSurface struct {
	mu      sync.RWMutex
	order   []string
	configs map[string]*chartjs.Config
}

// NewPageSurface creates a page with the given canvas ids
func NewPageSurface(mountIDs ...string) *PageSurface {
	p := &PageSurface{configs: make(map[string]*chartjs.Config, len(mountIDs))}
	for _, id := range mountIDs {
		p.AddMount(id)
	}
	return p
}

// AddMount adds a canvas to the page. Adding an existing id is a no-op.
func (p *PageSurface) AddMount(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.configs[id]; ok {
		return
	}
	p.configs[id] = nil
	p.order = append(p.order, id)
}

// Mount implements service.Surface
func (p *PageSurface) Mount(id string) (service.Canvas, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if _, ok := p.configs[id]; !ok {
		return nil, false
	}
	return &pageCanvas{page: p, id: id}, true
}

// Config returns the config last drawn on a canvas, or nil
func (p *PageSurface) Config(id string) *chartjs.Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.configs[id]
}

// Configs returns every drawn config keyed by canvas id
func (p *PageSurface) Configs() map[string]*chartjs.Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]*chartjs.Config, len(p.configs))
	for id, cfg := range p.configs {
		if cfg != nil {
			out[id] = cfg
		}
	}
	return out
}

// MountIDs returns the canvas ids in the order they were added
func (p *PageSurface) MountIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string(nil), p.order...)
}

type pageCanvas struct {
	page *PageSurface
	id   string
}

func (c *pageCanvas) Draw(cfg *chartjs.Config) error {
	c.page.mu.Lock()
	defer c.page.mu.Unlock()
	c.page.configs[c.id] = cfg
	return nil
}
