package dashboard

import (
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Filters holds the query-string state of the card grid: free-text search,
// multi-select locality and category, and the 1-based page number.
type Filters struct {
	Search     string
	Localities []string
	Categories []string
	Page       int
}

func parseFilters(r *http.Request) Filters {
	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return Filters{
		Search:     strings.TrimSpace(q.Get("q")),
		Localities: q["locality"],
		Categories: q["category"],
		Page:       page,
	}
}

func applyFilters(articles []*Article, f Filters) []*Article {
	localities := toSet(f.Localities)
	categories := toSet(f.Categories)

	filtered := make([]*Article, 0, len(articles))
	for _, a := range articles {
		if f.Search != "" && !matchesQuery(a.terms, f.Search) {
			continue
		}
		if len(localities) > 0 {
			if _, ok := localities[a.Record.Locality]; !ok {
				continue
			}
		}
		if len(categories) > 0 {
			if _, ok := categories[a.Record.Category]; !ok {
				continue
			}
		}
		filtered = append(filtered, a)
	}
	return filtered
}

type pageInfo struct {
	Page       int
	TotalPages int
	From       int
	To         int
}

// paginate clamps the requested page into range and returns the slice for
// it. An empty result still reports page 1 of 1.
func paginate(articles []*Article, page, perPage int) ([]*Article, pageInfo) {
	total := len(articles)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	info := pageInfo{Page: page, TotalPages: totalPages, From: start + 1, To: end}
	if total == 0 {
		info.From = 0
	}
	return articles[start:end], info
}

// pageURL rebuilds the index URL for a different page with the current
// filters preserved.
func pageURL(f Filters, page int) string {
	v := url.Values{}
	if f.Search != "" {
		v.Set("q", f.Search)
	}
	for _, l := range f.Localities {
		v.Add("locality", l)
	}
	for _, c := range f.Categories {
		v.Add("category", c)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

type facetOption struct {
	Value    string
	Label    string
	Selected bool
}

func localityOptions(articles []*Article, selected []string) []facetOption {
	seen := make(map[string]bool)
	var values []string
	for _, a := range articles {
		if !seen[a.Record.Locality] {
			seen[a.Record.Locality] = true
			values = append(values, a.Record.Locality)
		}
	}
	sort.Strings(values)

	chosen := toSet(selected)
	opts := make([]facetOption, 0, len(values))
	for _, v := range values {
		_, ok := chosen[v]
		opts = append(opts, facetOption{Value: v, Label: v, Selected: ok})
	}
	return opts
}

func categoryOptions(articles []*Article, selected []string) []facetOption {
	seen := make(map[string]string)
	var keys []string
	for _, a := range articles {
		if _, ok := seen[a.Record.Category]; !ok {
			seen[a.Record.Category] = a.CategoryDisplay
			keys = append(keys, a.Record.Category)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return seen[keys[i]] < seen[keys[j]] })

	chosen := toSet(selected)
	opts := make([]facetOption, 0, len(keys))
	for _, k := range keys {
		_, ok := chosen[k]
		opts = append(opts, facetOption{Value: k, Label: seen[k], Selected: ok})
	}
	return opts
}

type categoryCount struct {
	Display string
	Count   int
}

// categoryCounts tallies the filtered result set per category, most
// populous first.
func categoryCounts(articles []*Article) []categoryCount {
	counts := make(map[string]int)
	for _, a := range articles {
		counts[a.CategoryDisplay]++
	}
	out := make([]categoryCount, 0, len(counts))
	for display, n := range counts {
		out = append(out, categoryCount{Display: display, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Display < out[j].Display
	})
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
