package health

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shuliakovsky/cardano-gateway/pkg/metrics"
)

// Probe checks one provider. Optional probes are reported but never make the
// gateway unready.
type Probe struct {
	Name     string
	Required bool
	Check    func(ctx context.Context) error
}

type Status struct {
	Alive     bool   `json:"alive"`
	Required  bool   `json:"required"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

type Report struct {
	Ready     bool              `json:"ready"`
	Time      string            `json:"time"`
	Providers map[string]Status `json:"providers"`
}

type Checker struct {
	Timeout time.Duration
	Probes  []Probe
	Logger  *zap.Logger
}

func New(timeout time.Duration, logger *zap.Logger, probes ...Probe) *Checker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Checker{Timeout: timeout, Probes: probes, Logger: logger}
}

// Check runs every probe concurrently, each bounded by the checker timeout.
func (c *Checker) Check(ctx context.Context) Report {
	rep := Report{
		Ready:     true,
		Time:      time.Now().UTC().Format(time.RFC3339Nano),
		Providers: make(map[string]Status, len(c.Probes)),
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, p := range c.Probes {
		wg.Add(1)
		go func(p Probe) {
			defer wg.Done()

			pctx, cancel := context.WithTimeout(ctx, c.Timeout)
			defer cancel()

			start := time.Now()
			err := p.Check(pctx)
			st := Status{Alive: err == nil, Required: p.Required, LatencyMs: time.Since(start).Milliseconds()}
			if err != nil {
				st.Error = err.Error()
				c.Logger.Warn("provider_probe_failed", zap.String("provider", p.Name), zap.Error(err))
			}
			up := 0.0
			if st.Alive {
				up = 1
			}
			metrics.ProviderUp.WithLabelValues(p.Name).Set(up)

			mu.Lock()
			rep.Providers[p.Name] = st
			if !st.Alive && p.Required {
				rep.Ready = false
			}
			mu.Unlock()
		}(p)
	}
	wg.Wait()
	return rep
}
