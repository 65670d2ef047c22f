package rehost

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/eldritchfan/fancontent/internal/imaging"
	"github.com/eldritchfan/fancontent/internal/model"
)

// Store uploads one object into the content bucket.
type Store interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

// Fetcher retrieves a source file by URL.
type Fetcher interface {
	GetBytes(ctx context.Context, url string) ([]byte, error)
}

// Registrar makes an uploaded project visible to consumers.
type Registrar interface {
	RegisterProject(ctx context.Context, bucketPath string, meta model.ProjectMeta) error
}

// Options tunes one rehosting run.
type Options struct {
	// Compress transcodes PNG card images and banners to JPEG.
	Compress bool

	// Concurrency bounds the worker pool. Zero or negative falls back
	// to DefaultConcurrency.
	Concurrency int

	// MaxImageDim, when positive, downscales transcoded images so
	// neither dimension exceeds it.
	MaxImageDim int

	// SkipImages rewrites card and icon fields to their CDN URLs
	// without fetching or uploading anything, for re-runs where those
	// images are already in place. The banner is always rehosted.
	SkipImages bool

	// SkipRegister uploads everything but leaves the project
	// unregistered with the content API.
	SkipRegister bool
}

// DefaultConcurrency is the worker pool size when Options.Concurrency
// is unset.
const DefaultConcurrency = 8

// Manager coordinates one rehosting run over a single project.
type Manager struct {
	store      Store
	fetcher    Fetcher
	api        Registrar
	cdnBaseURL string
	opts       Options

	mu       sync.Mutex
	uploaded map[string]string // source URL -> CDN URL
}

// NewManager creates a Manager. cdnBaseURL is the base every rewritten
// field points under.
func NewManager(store Store, fetcher Fetcher, api Registrar, cdnBaseURL string, opts Options) *Manager {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	return &Manager{
		store:      store,
		fetcher:    fetcher,
		api:        api,
		cdnBaseURL: strings.TrimRight(cdnBaseURL, "/"),
		opts:       opts,
		uploaded:   make(map[string]string),
	}
}

// Run rehosts every image the project references, rewrites the fields
// to CDN URLs, uploads the rewritten document and registers it with the
// content API. The project is mutated in place.
//
// Image failures are collected: one bad fetch does not cancel sibling
// uploads, but any failure aborts the run before the document upload
// and registration steps.
func (m *Manager) Run(ctx context.Context, project *model.Project) error {
	targets := collectTargets(project)
	slog.Info("rehosting", "project", project.Meta.Code, "targets", len(targets))

	var g errgroup.Group
	g.SetLimit(m.opts.Concurrency)

	var errMu sync.Mutex
	var errs []error
	for _, tgt := range targets {
		tgt := tgt
		g.Go(func() error {
			if err := m.rehostTarget(ctx, tgt); err != nil {
				errMu.Lock()
				errs = append(errs, err)
				errMu.Unlock()
			}
			return nil
		})
	}
	g.Wait()

	if len(errs) > 0 {
		return fmt.Errorf("rehosting %s: %w", project.Meta.Code, errors.Join(errs...))
	}

	key := makeKey(project.Meta.Code, "project.json")
	project.Meta.URL = m.cdnURL(key)

	doc, err := project.Encode()
	if err != nil {
		return err
	}
	if err := m.store.Put(ctx, key, "application/json", doc); err != nil {
		return err
	}
	slog.Info("uploaded project document", "key", key)

	if m.opts.SkipRegister {
		return nil
	}
	if err := m.api.RegisterProject(ctx, key, project.Meta); err != nil {
		return err
	}
	slog.Info("registered project", "code", project.Meta.Code)

	return nil
}

func (m *Manager) rehostTarget(ctx context.Context, tgt target) error {
	if cdn, ok := m.alreadyUploaded(tgt.sourceURL); ok {
		tgt.assign(cdn)
		return nil
	}

	key := tgt.key
	contentType := contentTypeFor(tgt.sourceURL)
	transcode := m.opts.Compress && tgt.compress && contentType == "image/png"
	if transcode {
		key = strings.TrimSuffix(key, ".png") + ".jpg"
		contentType = "image/jpeg"
	}

	if m.opts.SkipImages && !strings.Contains(key, "banner") {
		cdn := m.cdnURL(key)
		m.remember(tgt.sourceURL, cdn)
		tgt.assign(cdn)
		return nil
	}

	body, err := m.fetcher.GetBytes(ctx, tgt.sourceURL)
	if err != nil {
		return err
	}

	if transcode {
		if m.opts.MaxImageDim > 0 {
			body, err = imaging.Downscale(body, m.opts.MaxImageDim)
		} else {
			body, err = imaging.PNGToJPEG(body)
		}
		if err != nil {
			return fmt.Errorf("transcoding %s: %w", tgt.sourceURL, err)
		}
	}

	if err := m.store.Put(ctx, key, contentType, body); err != nil {
		return err
	}
	slog.Info("rehosted", "key", key, "content_type", contentType)

	cdn := m.cdnURL(key)
	m.remember(tgt.sourceURL, cdn)
	tgt.assign(cdn)
	return nil
}

func (m *Manager) cdnURL(key string) string {
	return m.cdnBaseURL + "/" + key
}

func (m *Manager) alreadyUploaded(sourceURL string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cdn, ok := m.uploaded[sourceURL]
	return cdn, ok
}

func (m *Manager) remember(sourceURL, cdnURL string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploaded[sourceURL] = cdnURL
}
