package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"docgrid/internal/catalog"
	"docgrid/internal/notify"
	"docgrid/internal/session"
)

var (
	ErrSessionRequired = errors.New("session id is required")
	ErrIDRequired      = errors.New("id is required")
)

// CatalogView is the service-level DTO for the visible grid.
type CatalogView struct {
	Items []catalog.Card `json:"data"`
	Total int            `json:"total"`
	Query string         `json:"query"`
}

// CatalogStats summarizes one session's whole catalog.
type CatalogStats struct {
	Documents  int    `json:"documents"`
	TotalBytes int64  `json:"total_bytes"`
	TotalLabel string `json:"total_label"`
}

// CatalogService defines the use cases behind the document grid.
type CatalogService interface {
	// Ingest admits a batch of descriptors into the session's catalog and
	// announces the upload. An empty batch is a silent no-op.
	Ingest(ctx context.Context, sessionID string, batch []catalog.Descriptor) ([]catalog.Card, error)

	// Search replaces the session's filter text, then returns the visible
	// grid. limit > 0 caps the returned items without touching their order.
	Search(ctx context.Context, sessionID, query string, limit int) (*CatalogView, error)

	// View returns the visible grid under the session's current filter.
	View(ctx context.Context, sessionID string, limit int) (*CatalogView, error)

	// Remove deletes a document by id and announces the removal. Unknown
	// ids are not an error; the announcement fires regardless.
	Remove(ctx context.Context, sessionID, id string) error

	// Stats summarizes the session's whole catalog, ignoring the filter.
	Stats(ctx context.Context, sessionID string) (*CatalogStats, error)
}

// catalogService is a concrete implementation of CatalogService.
type catalogService struct {
	sessions *session.Manager
	notifier notify.Publisher
	metrics  *Metrics
	tracer   trace.Tracer
}

// NewCatalogService constructs a new CatalogService. A nil notifier falls
// back to notify.Discard.
func NewCatalogService(sessions *session.Manager, notifier notify.Publisher, m *Metrics) CatalogService {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &catalogService{
		sessions: sessions,
		notifier: notifier,
		metrics:  m,
		tracer:   otel.Tracer("docgrid/internal/service"),
	}
}

func (s *catalogService) Ingest(ctx context.Context, sessionID string, batch []catalog.Descriptor) ([]catalog.Card, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	_, span := s.tracer.Start(ctx, "catalog.ingest",
		trace.WithAttributes(attribute.Int("catalog.batch_size", len(batch))))
	defer span.End()

	cat := s.sessions.GetOrCreate(sessionID)
	docs, ev, ok := cat.Ingest(batch)
	if !ok {
		return []catalog.Card{}, nil
	}

	s.metrics.ingested.Add(float64(len(docs)))
	s.notifier.Publish(sessionID, ev)
	return catalog.NewCards(docs), nil
}

func (s *catalogService) Search(ctx context.Context, sessionID, query string, limit int) (*CatalogView, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	_, span := s.tracer.Start(ctx, "catalog.search",
		trace.WithAttributes(attribute.String("catalog.query", query)))
	defer span.End()

	cat := s.sessions.GetOrCreate(sessionID)
	cat.SetQuery(query)

	view := buildView(cat, limit)
	span.SetAttributes(attribute.Int("catalog.visible", view.Total))
	return view, nil
}

func (s *catalogService) View(ctx context.Context, sessionID string, limit int) (*CatalogView, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	_, span := s.tracer.Start(ctx, "catalog.view")
	defer span.End()

	view := buildView(s.sessions.GetOrCreate(sessionID), limit)
	span.SetAttributes(attribute.Int("catalog.visible", view.Total))
	return view, nil
}

func (s *catalogService) Remove(ctx context.Context, sessionID, id string) error {
	if sessionID == "" {
		return ErrSessionRequired
	}
	if id == "" {
		return ErrIDRequired
	}

	_, span := s.tracer.Start(ctx, "catalog.remove",
		trace.WithAttributes(attribute.String("document.id", id)))
	defer span.End()

	cat := s.sessions.GetOrCreate(sessionID)
	ev, removed := cat.Remove(id)
	if removed {
		s.metrics.removed.Inc()
	}
	// The announcement is part of the contract even when nothing matched.
	s.notifier.Publish(sessionID, ev)
	return nil
}

func (s *catalogService) Stats(ctx context.Context, sessionID string) (*CatalogStats, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	_, span := s.tracer.Start(ctx, "catalog.stats")
	defer span.End()

	count, total := s.sessions.GetOrCreate(sessionID).Stats()
	return &CatalogStats{
		Documents:  count,
		TotalBytes: total,
		TotalLabel: catalog.FormatSize(total),
	}, nil
}

// buildView caps the visible list without disturbing its order.
func buildView(cat *catalog.Catalog, limit int) *CatalogView {
	docs := cat.Visible()
	total := len(docs)
	if limit > 0 && limit < len(docs) {
		docs = docs[:limit]
	}
	return &CatalogView{
		Items: catalog.NewCards(docs),
		Total: total,
		Query: cat.Query(),
	}
}
