package importer

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ImportFunc receives parsed records and returns how many were added and
// how many were skipped as duplicates.
type ImportFunc func(ctx context.Context, records []LeadRecord) (imported, skipped int, err error)

// SheetPoller periodically fetches a published CSV sheet and feeds new
// rows through an ImportFunc. Failures are logged and retried on the next
// tick; the poll is best-effort and never authoritative.
type SheetPoller struct {
	url      string
	interval time.Duration
	client   *http.Client
	importFn ImportFunc
	logger   *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewSheetPoller constructs a poller. It does not start polling.
func NewSheetPoller(url string, interval time.Duration, importFn ImportFunc, logger *zap.Logger) *SheetPoller {
	return &SheetPoller{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 30 * time.Second},
		importFn: importFn,
		logger:   logger,
	}
}

// Start begins polling until Stop is called or ctx is cancelled.
// Idempotent: starting a running poller does nothing.
func (p *SheetPoller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil || p.url == "" {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	go p.run(runCtx)
	p.logger.Info("sheet poller started", zap.String("url", p.url), zap.Duration("interval", p.interval))
}

// Stop halts polling. Idempotent: stopping a stopped poller does nothing.
func (p *SheetPoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.cancel = nil
	p.logger.Info("sheet poller stopped")
}

func (p *SheetPoller) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.pollOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.pollOnce(ctx)
		}
	}
}

func (p *SheetPoller) pollOnce(ctx context.Context) {
	records, err := p.fetch(ctx)
	if err != nil {
		p.logger.Warn("sheet poll failed", zap.Error(err))
		return
	}
	if len(records) == 0 {
		return
	}
	imported, skipped, err := p.importFn(ctx, records)
	if err != nil {
		p.logger.Warn("sheet import failed", zap.Error(err))
		return
	}
	p.logger.Info("sheet import",
		zap.Int("imported", imported),
		zap.Int("skipped", skipped))
}

func (p *SheetPoller) fetch(ctx context.Context) ([]LeadRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet fetch: unexpected status %d", resp.StatusCode)
	}

	records, rowErrors, err := ParseCSV(resp.Body)
	if err != nil {
		return nil, err
	}
	for _, rowErr := range rowErrors {
		p.logger.Debug("sheet row skipped", zap.Int("row", rowErr.Row), zap.String("reason", rowErr.Reason))
	}
	return records, nil
}
