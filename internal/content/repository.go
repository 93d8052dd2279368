package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"

	"github.com/AbhishekSharma9161/curio/internal/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultNewsURL   = "https://newsapi.org/v2/top-headlines"
	defaultMoviesURL = "https://api.themoviedb.org/3/movie/popular"
	userAgent        = "curio/1.0 (https://github.com/AbhishekSharma9161/curio)"
)

// Options configure a Repository. Zero values fall back to public endpoints
// with the "demo" key, which fail and exercise the mock path.
type Options struct {
	NewsURL    string
	NewsAPIKey string
	MoviesURL  string
	TMDBAPIKey string
	Timeout    time.Duration
}

// Repository aggregates content from external sources.
//
// Every fetch is best-effort: on any failure (network error, non-200 status,
// malformed payload) the error is swallowed, logged, and a generated mock
// batch of the requested size is returned instead. Failures here never reach
// the store's error field - that is reserved for the ingest orchestration.
type Repository struct {
	client    *http.Client
	limiter   *rate.Limiter
	newsURL   string
	newsKey   string
	moviesURL string
	tmdbKey   string
}

// NewRepository creates a Repository with the given options.
func NewRepository(opts Options) *Repository {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	newsURL := opts.NewsURL
	if newsURL == "" {
		newsURL = defaultNewsURL
	}
	moviesURL := opts.MoviesURL
	if moviesURL == "" {
		moviesURL = defaultMoviesURL
	}
	return &Repository{
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
		newsURL:   newsURL,
		newsKey:   opts.NewsAPIKey,
		moviesURL: moviesURL,
		tmdbKey:   opts.TMDBAPIKey,
	}
}

// newsAPIResponse mirrors the NewsAPI top-headlines payload.
type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Author      string `json:"author"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// tmdbResponse mirrors the TMDB popular-movies payload.
type tmdbResponse struct {
	Results []struct {
		ID          int     `json:"id"`
		Title       string  `json:"title"`
		Overview    string  `json:"overview"`
		PosterPath  string  `json:"poster_path"`
		ReleaseDate string  `json:"release_date"`
		VoteAverage float64 `json:"vote_average"`
	} `json:"results"`
}

// FetchNews retrieves news items for the given categories and page.
// The error is non-nil only for degenerate requests; upstream failures are
// absorbed by the mock fallback.
func (r *Repository) FetchNews(ctx context.Context, categories []string, page, pageSize int) ([]Item, error) {
	if err := checkPage(page, pageSize); err != nil {
		return nil, err
	}
	category := firstOr(categories, "general")

	items, err := r.fetchNewsAPI(ctx, category, page, pageSize)
	if err != nil {
		logging.Debug("news fetch failed, using mock batch", "category", category, "page", page, "error", err)
		return MockNews(categories, page, pageSize), nil
	}
	return items, nil
}

func (r *Repository) fetchNewsAPI(ctx context.Context, category string, page, pageSize int) ([]Item, error) {
	q := url.Values{}
	q.Set("category", category)
	q.Set("page", fmt.Sprint(page))
	q.Set("pageSize", fmt.Sprint(pageSize))
	q.Set("apiKey", r.newsKey)

	var resp newsAPIResponse
	if err := r.getJSON(ctx, r.newsURL+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if len(resp.Articles) == 0 {
		return nil, fmt.Errorf("empty article list")
	}

	items := make([]Item, 0, len(resp.Articles))
	for i, a := range resp.Articles {
		imageURL := a.URLToImage
		if imageURL == "" {
			imageURL = fmt.Sprintf("https://picsum.photos/400/300?random=%d", i)
		}
		items = append(items, Item{
			ID:          fmt.Sprintf("news-%d-%d", page, i),
			Kind:        KindNews,
			Title:       a.Title,
			Description: a.Description,
			ImageURL:    imageURL,
			URL:         a.URL,
			Category:    category,
			Published:   parseTime(a.PublishedAt),
			Author:      a.Author,
		})
	}
	return items, nil
}

// FetchMovies retrieves popular movies for the given page.
func (r *Repository) FetchMovies(ctx context.Context, page, pageSize int) ([]Item, error) {
	if err := checkPage(page, pageSize); err != nil {
		return nil, err
	}

	items, err := r.fetchTMDB(ctx, page, pageSize)
	if err != nil {
		logging.Debug("movie fetch failed, using mock batch", "page", page, "error", err)
		return MockMovies(page, pageSize), nil
	}
	return items, nil
}

func (r *Repository) fetchTMDB(ctx context.Context, page, pageSize int) ([]Item, error) {
	q := url.Values{}
	q.Set("api_key", r.tmdbKey)
	q.Set("page", fmt.Sprint(page))

	var resp tmdbResponse
	if err := r.getJSON(ctx, r.moviesURL+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("empty result list")
	}

	results := resp.Results
	if len(results) > pageSize {
		results = results[:pageSize]
	}
	items := make([]Item, 0, len(results))
	for _, m := range results {
		imageURL := fmt.Sprintf("https://picsum.photos/400/600?random=%d", m.ID)
		if m.PosterPath != "" {
			imageURL = "https://image.tmdb.org/t/p/w500" + m.PosterPath
		}
		rating := m.VoteAverage
		items = append(items, Item{
			ID:          fmt.Sprintf("movie-%d", m.ID),
			Kind:        KindMovie,
			Title:       m.Title,
			Description: m.Overview,
			ImageURL:    imageURL,
			Category:    "entertainment",
			Published:   parseTime(m.ReleaseDate),
			Rating:      &rating,
		})
	}
	return items, nil
}

// FetchSocial returns social posts. There is no live social upstream; posts
// are always generated.
func (r *Repository) FetchSocial(ctx context.Context, hashtags []string, page, pageSize int) ([]Item, error) {
	if err := checkPage(page, pageSize); err != nil {
		return nil, err
	}
	_ = hashtags // advisory only, the generator picks its own topics
	return MockSocial(pageSize), nil
}

// Search returns items matching a query. Backed by the mock generator; the
// kind filter narrows results to one content kind when non-empty.
func (r *Repository) Search(ctx context.Context, query string, kind Kind) ([]Item, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty query")
	}
	return MockSearch(query, kind, 8), nil
}

// getJSON performs a rate-limited GET and decodes the JSON body into v.
func (r *Repository) getJSON(ctx context.Context, rawURL string, v any) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// parseTime parses upstream timestamps in whatever format they arrive,
// falling back to the current time.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Now()
	}
	return t
}

func checkPage(page, pageSize int) error {
	if page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", page)
	}
	if pageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", pageSize)
	}
	return nil
}
