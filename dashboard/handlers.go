package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"hyperlocal/repository"
)

type indexData struct {
	Articles       []*Article
	TotalArticles  int
	FilteredCount  int
	Page           int
	TotalPages     int
	ShowingFrom    int
	ShowingTo      int
	Search         string
	Localities     []facetOption
	Categories     []facetOption
	CategoryCounts []categoryCount
	HasPrev        bool
	HasNext        bool
	PrevURL        string
	NextURL        string
}

type articleData struct {
	Article    *Article
	Paragraphs []string
}

func (s *Server) loadArticles(r *http.Request) ([]*Article, error) {
	records, err := s.repo.Load(r.Context())
	if err != nil {
		return nil, err
	}
	return BuildArticles(records), nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	articles, err := s.loadArticles(r)
	if err != nil {
		s.logger.Error("failed to load summaries", zap.Error(err))
		http.Error(w, "Failed to load summaries", http.StatusInternalServerError)
		return
	}

	f := parseFilters(r)
	filtered := applyFilters(articles, f)
	page, info := paginate(filtered, f.Page, s.perPage)

	data := indexData{
		Articles:       page,
		TotalArticles:  len(articles),
		FilteredCount:  len(filtered),
		Page:           info.Page,
		TotalPages:     info.TotalPages,
		ShowingFrom:    info.From,
		ShowingTo:      info.To,
		Search:         f.Search,
		Localities:     localityOptions(articles, f.Localities),
		Categories:     categoryOptions(articles, f.Categories),
		CategoryCounts: categoryCounts(filtered),
		HasPrev:        info.Page > 1,
		HasNext:        info.Page < info.TotalPages,
		PrevURL:        pageURL(f, info.Page-1),
		NextURL:        pageURL(f, info.Page+1),
	}
	if err := s.tmpl.ExecuteTemplate(w, "index.html.tmpl", data); err != nil {
		s.logger.Error("failed to render index", zap.Error(err))
	}
}

func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	articles, err := s.loadArticles(r)
	if err != nil {
		s.logger.Error("failed to load summaries", zap.Error(err))
		http.Error(w, "Failed to load summaries", http.StatusInternalServerError)
		return
	}

	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id < 0 || id >= len(articles) {
		http.NotFound(w, r)
		return
	}

	article := articles[id]
	data := articleData{
		Article:    article,
		Paragraphs: contentLines(article.Record.DetailedContent),
	}
	if err := s.tmpl.ExecuteTemplate(w, "article.html.tmpl", data); err != nil {
		s.logger.Error("failed to render article", zap.Error(err))
	}
}

func (s *Server) handleAPISummaries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	articles, err := s.loadArticles(r)
	if err != nil {
		s.logger.Error("failed to load summaries", zap.Error(err))
		http.Error(w, "Failed to load summaries", http.StatusInternalServerError)
		return
	}

	filtered := applyFilters(articles, parseFilters(r))
	records := make([]repository.Summary, 0, len(filtered))
	for _, a := range filtered {
		records = append(records, a.Record)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		s.logger.Error("failed to encode summaries", zap.Error(err))
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
