// Package mockapi implements an in-process ClaimReady backend used for
// local development and tests. It speaks the same wire protocol as the
// production API, including the legacy "_id" identifier spelling on
// document-store entities, and supports failure injection so client
// error handling can be exercised deliberately.
package mockapi

import (
	_ "embed"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-openapi/runtime/middleware"
)

//go:embed openapi.yaml
var openapiSpec []byte

const (
	// tokenTTL is how long an issued token is valid.
	tokenTTL = time.Hour
	// rotateWithin is the remaining-lifetime window inside which the
	// profile endpoint rotates the token.
	rotateWithin = 20 * time.Minute
)

// API holds the mock backend's state: seeded accounts, the dataset,
// and the failure-injection switches.
type API struct {
	accounts   map[string]*account
	data       *dataset
	logger     *slog.Logger
	signingKey []byte
	now        func() time.Time

	mu sync.Mutex
	// failNext, when non-zero, is returned by the next mutating
	// request instead of applying it.
	failNext     int
	failNextCode string
	// forceProfile, when non-zero, overrides the profile endpoint's
	// status. Used to drive session validation down specific paths.
	forceProfile int
}

// Option configures the API.
type Option func(*API)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *API) { a.logger = logger }
}

// WithClock injects the time source for token issuance and validation.
func WithClock(now func() time.Time) Option {
	return func(a *API) { a.now = now }
}

// WithSigningKey overrides the random per-instance token signing key.
func WithSigningKey(key []byte) Option {
	return func(a *API) { a.signingKey = key }
}

// New creates a mock backend with seeded accounts and fixture data.
func New(opts ...Option) *API {
	a := &API{
		data: seedDataset(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	if a.signingKey == nil {
		a.signingKey = randomSigningKey()
	}
	a.accounts = seedAccounts()
	return a
}

// Router returns a chi.Router with every route mounted, including the
// served OpenAPI document and its viewers.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/api/v1/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})
	r.Handle("/api/v1/docs*", middleware.SwaggerUI(middleware.SwaggerUIOpts{
		SpecURL: "/api/v1/openapi.yaml",
		Path:    "api/v1/docs",
	}, nil))
	r.Handle("/api/v1/redoc*", middleware.Redoc(middleware.RedocOpts{
		SpecURL: "/api/v1/openapi.yaml",
		Path:    "api/v1/redoc",
	}, nil))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", a.LoginHandler)
		r.With(a.AuthMiddleware).Get("/auth/profile", a.ProfileHandler)

		r.Group(func(r chi.Router) {
			r.Use(a.AuthMiddleware)
			r.Get("/veteran", a.GetVeteran)
			r.Get("/claims", a.ListClaims)
			r.Get("/claims/{claimID}", a.GetClaim)
			r.Get("/conditions", a.ListConditions)
			r.Get("/action-items", a.ListActionItems)
			r.Put("/action-items/{itemID}", a.SetActionItem)
			r.Get("/packages", a.ListPackages)
			r.Get("/packages/{packageID}/checklists", a.ListChecklists)
			r.Put("/packages/{packageID}/checklists/{checklistID}/items/{checkItemID}", a.SetChecklistItem)
			r.Get("/documents", a.ListDocuments)
			r.Get("/documents/{documentID}/download", a.DownloadDocument)
		})
	})

	return r
}

// FailNextMutation makes the next mutating request return status with
// the given error code instead of applying the change.
func (a *API) FailNextMutation(status int, code string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failNext = status
	a.failNextCode = code
}

// ForceProfileStatus overrides the profile endpoint's response status
// until cleared with 0.
func (a *API) ForceProfileStatus(status int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.forceProfile = status
}

// takeMutationFailure consumes a pending injected mutation failure.
func (a *API) takeMutationFailure() (int, string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failNext == 0 {
		return 0, "", false
	}
	status, code := a.failNext, a.failNextCode
	a.failNext, a.failNextCode = 0, ""
	return status, code, true
}
