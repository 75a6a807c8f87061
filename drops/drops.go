// Package drops maps the drops API onto typed calls. Each method issues
// exactly one HTTP request, authorized with the caller's credentials,
// and decodes the JSON response as-is. Nothing is retried, cached or
// validated locally; failures come back exactly as the client layer
// reports them.
package drops

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/inscrib3/drops-go/auth"
	"github.com/inscrib3/drops-go/client"
	"github.com/inscrib3/drops-go/client/upload"
	"github.com/inscrib3/drops-go/config"
)

// Service exposes the /drops resource.
type Service struct {
	client   *client.Client
	base     *url.URL
	network  config.Network
	chain    config.Chain
	tracer   trace.Tracer
	progress bool

	// Uploads exposes the /drops/{id}/uploads sub-resource.
	Uploads *Uploads
}

// NewService binds c to the backend described by cfg.
func NewService(c *client.Client, cfg config.Config, optFns ...Option) (*Service, error) {
	if c == nil {
		return nil, errors.New("client must not be nil")
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying service option: %w", err)
		}
	}

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	tracer := opts.tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("no-op tracer")
	}

	s := &Service{
		client:   c,
		base:     base,
		network:  cfg.Network,
		chain:    cfg.Chain,
		tracer:   tracer,
		progress: opts.progress,
	}
	s.Uploads = &Uploads{s: s}

	return s, nil
}

// Create registers a new drop, sending the icon and metadata as a
// multipart form.
func (s *Service) Create(ctx context.Context, p CreateParams, creds auth.Credentials) (Created, error) {
	form := upload.NewForm().
		AddFile("icon", named(p.Icon)).
		AddField("name", p.Name).
		AddField("symbol", p.Symbol).
		AddField("description", p.Description).
		AddField("price", p.Price).
		AddField("recipientAddress", p.RecipientAddress).
		AddField("recipientPublicKey", p.RecipientPublicKey)

	return call[Created](ctx, s, "create", "", http.MethodPost, s.endpoint(), creds, s.multipart(form))
}

// All lists every drop visible to creds.
func (s *Service) All(ctx context.Context, creds auth.Credentials) ([]Drop, error) {
	return call[[]Drop](ctx, s, "all", "", http.MethodGet, s.endpoint(), creds)
}

// Read fetches a single drop.
func (s *Service) Read(ctx context.Context, id string, creds auth.Credentials) (Drop, error) {
	return call[Drop](ctx, s, "read", id, http.MethodGet, s.endpoint(id), creds)
}

// Remove deletes a drop.
func (s *Service) Remove(ctx context.Context, id string, creds auth.Credentials) (Removed, error) {
	return call[Removed](ctx, s, "remove", id, http.MethodDelete, s.endpoint(id), creds)
}

// Mint asks the backend for the unsigned PSBTs that mint one unit of
// the drop.
func (s *Service) Mint(ctx context.Context, id string, p MintParams, creds auth.Credentials) (MintResult, error) {
	return call[MintResult](ctx, s, "mint", id, http.MethodPost, s.endpoint(id, "mint"), creds, client.WithPayload(p))
}

// BroadcastMint submits the externally signed PSBTs and returns the
// resulting transaction id.
func (s *Service) BroadcastMint(ctx context.Context, id string, signedPSBT []string, creds auth.Credentials) (Broadcast, error) {
	body := broadcastRequest{SignedPSBT: nonNil(signedPSBT)}
	return call[Broadcast](ctx, s, "broadcastMint", id, http.MethodPost, s.endpoint(id, "mint", "broadcast"), creds, client.WithPayload(body))
}

// Uploads groups the operations on a drop's uploaded files.
type Uploads struct {
	s *Service
}

// All lists the file names uploaded to the drop.
func (u *Uploads) All(ctx context.Context, id string, creds auth.Credentials) (Files, error) {
	return call[Files](ctx, u.s, "uploads.all", id, http.MethodGet, u.s.endpoint(id, "uploads"), creds)
}

// Update adds files to the drop, each sent as a "files" part.
func (u *Uploads) Update(ctx context.Context, id string, files []upload.File, creds auth.Credentials) (Supply, error) {
	form := upload.NewForm()
	for _, f := range files {
		form.AddFile("files", named(f))
	}

	return call[Supply](ctx, u.s, "uploads.update", id, http.MethodPost, u.s.endpoint(id, "uploads"), creds, u.s.multipart(form))
}

// Remove deletes the named files from the drop.
func (u *Uploads) Remove(ctx context.Context, id string, files []string, creds auth.Credentials) (Supply, error) {
	body := removeUploadsRequest{Files: nonNil(files)}
	return call[Supply](ctx, u.s, "uploads.remove", id, http.MethodDelete, u.s.endpoint(id, "uploads"), creds, client.WithPayload(body))
}

// endpoint joins the drops collection path with the path-escaped id
// and any trailing segments.
func (s *Service) endpoint(segments ...string) *url.URL {
	elems := []string{"drops"}
	if len(segments) > 0 {
		elems = append(elems, url.PathEscape(segments[0]))
		elems = append(elems, segments[1:]...)
	}

	return s.base.JoinPath(elems...)
}

func (s *Service) multipart(form *upload.Form) client.RequestOption {
	if !s.progress {
		return client.WithMultipart(form)
	}

	return client.WithMultipart(form, upload.WithProgress(s.client.Logger()))
}

// nonNil keeps a nil slice on the wire as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

// named mirrors browser FormData, which labels unnamed blobs "blob".
func named(f upload.File) upload.File {
	if f.Name == "" {
		f.Name = "blob"
	}

	return f
}

// call builds and issues one authorized request, decoding a successful
// response into T. Errors are returned unchanged from the client layer.
func call[T any](ctx context.Context, s *Service, op, id, method string, u *url.URL, creds auth.Credentials, opts ...client.RequestOption) (T, error) {
	var result T

	attrs := []attribute.KeyValue{
		attribute.String("drops.network", string(s.network)),
		attribute.String("drops.chain", string(s.chain)),
	}
	if id != "" {
		attrs = append(attrs, attribute.String("drops.id", id))
	}

	ctx, span := s.tracer.Start(ctx, "drops."+op, trace.WithAttributes(attrs...))
	defer span.End()

	opts = append(opts, client.WithAuthorization(auth.Header(creds, s.network, s.chain)))

	req, err := s.client.Request(ctx, u, method, opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, fmt.Errorf("building %s request: %w", op, err)
	}

	if err := s.client.Do(req, client.StatusAny2xx, client.WithDestination(&result)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	return result, nil
}
