// Package service provides the onboarding asset preloader.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"
)

// AssetPreloader fetches step images ahead of the first step.
type AssetPreloader interface {
	// Preload fetches every asset. Individual failures are logged and count as
	// settled. It returns ctx.Err() only when ctx itself was cancelled.
	Preload(ctx context.Context, assets []string) error
}

// PreloaderConfig configures the HTTP asset preloader.
type PreloaderConfig struct {
	BaseURL     string
	Timeout     time.Duration
	Concurrency int
}

type httpAssetPreloader struct {
	client      *http.Client
	baseURL     *url.URL
	timeout     time.Duration
	concurrency int
	logger      *slog.Logger
}

// Preload fetches all assets with bounded concurrency within the configured timeout.
func (p *httpAssetPreloader) Preload(ctx context.Context, assets []string) error {
	runCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	g := new(errgroup.Group)
	if p.concurrency > 0 {
		g.SetLimit(p.concurrency)
	}

	for _, asset := range assets {
		g.Go(func() error {
			if err := p.fetch(runCtx, asset); err != nil {
				p.logger.Warn("onboarding asset preload failed",
					slog.String("asset", asset),
					slog.Any("error", err),
				)
			}
			return nil
		})
	}

	_ = g.Wait()
	return ctx.Err()
}

func (p *httpAssetPreloader) fetch(ctx context.Context, asset string) error {
	target, err := p.resolve(asset)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build asset request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch asset: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected asset status: %d", resp.StatusCode)
	}

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("failed to read asset: %w", err)
	}
	return nil
}

func (p *httpAssetPreloader) resolve(asset string) (string, error) {
	ref, err := url.Parse(asset)
	if err != nil {
		return "", fmt.Errorf("invalid asset path %q: %w", asset, err)
	}
	if ref.IsAbs() || p.baseURL == nil {
		return ref.String(), nil
	}
	return p.baseURL.ResolveReference(ref).String(), nil
}

// NewHTTPAssetPreloader creates a preloader that fetches assets over HTTP.
// Relative asset paths are resolved against cfg.BaseURL.
func NewHTTPAssetPreloader(client *http.Client, cfg PreloaderConfig, logger *slog.Logger) (AssetPreloader, error) {
	if client == nil {
		client = http.DefaultClient
	}

	p := &httpAssetPreloader{
		client:      client,
		timeout:     cfg.Timeout,
		concurrency: cfg.Concurrency,
		logger:      logger,
	}

	if cfg.BaseURL != "" {
		base, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid onboarding asset base url: %w", err)
		}
		p.baseURL = base
	}

	return p, nil
}
