package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/totegamma/citydesk"
)

// TemplateSource fetches a named external template document.
type TemplateSource interface {
	FetchText(ctx context.Context, path string) (string, error)
}

// RenderService renders records into HTML documents: an inline page per
// record kind plus a literal {{token}} binding mode for externally stored
// templates. Fetched templates are memoized.
type RenderService struct {
	templates   TemplateSource
	templateKey string
	cache       *cache.Cache
}

func NewRenderService(templates TemplateSource, templateKey string) *RenderService {
	return &RenderService{
		templates:   templates,
		templateKey: templateKey,
		cache:       cache.New(10*time.Minute, 15*time.Minute),
	}
}

// EscapeHTML replaces angle brackets with their entity forms. The escaping is
// deliberately shallow: it protects the element context only, matching the
// serving contract of the stored documents.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}

func fallback(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// BusinessHTML renders the page for a business listing. When an external
// template is configured and reachable it is bound via tokens; otherwise the
// inline page is used.
func (s *RenderService) BusinessHTML(ctx context.Context, b citydesk.Business) string {
	if s.templateKey != "" && s.templates != nil {
		page, err := s.bindBusinessTemplate(ctx, b)
		if err == nil {
			return page
		}
		slog.WarnContext(ctx, "business template unavailable, using inline page",
			slog.String("template", s.templateKey),
			slog.String("error", err.Error()),
		)
	}
	return BusinessPage(b)
}

func (s *RenderService) bindBusinessTemplate(ctx context.Context, b citydesk.Business) (string, error) {
	tmpl, err := s.fetchTemplate(ctx, s.templateKey)
	if err != nil {
		return "", err
	}

	return BindTokens(tmpl, map[string]string{
		"business_name":        fallback(EscapeHTML(b.Title), "Currently Unavailable"),
		"business_address":     fallback(EscapeHTML(b.Address), "Currently Unavailable"),
		"business_phone":       fallback(EscapeHTML(b.Phone), "Currently Unavailable"),
		"business_email":       fallback(EscapeHTML(b.Email), "Currently Unavailable"),
		"business_description": fallback(EscapeHTML(b.Description), "Currently Unavailable"),
	}), nil
}

func (s *RenderService) fetchTemplate(ctx context.Context, key string) (string, error) {
	if cached, found := s.cache.Get(key); found {
		return cached.(string), nil
	}

	tmpl, err := s.templates.FetchText(ctx, key)
	if err != nil {
		return "", err
	}

	s.cache.Set(key, tmpl, cache.DefaultExpiration)
	return tmpl, nil
}

// BindTokens replaces every occurrence of each {{name}} token with its value.
// Tokens without a binding are left intact in the output.
func BindTokens(template string, values map[string]string) string {
	for name, value := range values {
		template = strings.ReplaceAll(template, "{{"+name+"}}", value)
	}
	return template
}

// BusinessPage renders the inline business document with per-field fallback
// placeholders.
func BusinessPage(b citydesk.Business) string {
	title := fallback(EscapeHTML(b.Title), "Untitled Business")
	address := fallback(EscapeHTML(b.Address), "Address not available")
	phone := fallback(EscapeHTML(b.Phone), "Phone not available")
	website := fallback(EscapeHTML(b.Website), "Website not available")
	email := fallback(EscapeHTML(b.Email), "Email not available")
	description := fallback(EscapeHTML(b.Description), "No description available")

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
</head>
<body>
    <h1>%s</h1>
    <p><strong>Address:</strong> %s</p>
    <p><strong>Phone:</strong> <a href="tel:%s">%s</a></p>
    <p><strong>Website:</strong> <a href="%s" target="_blank">%s</a></p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Description:</strong> %s</p>
</body>
</html>
`, title, title, address, phone, phone, website, website, email, description)
}

// ArticlePage renders the inline article document. Content lines become
// paragraphs; each bound field is escaped.
func ArticlePage(a citydesk.Article) string {
	title := fallback(EscapeHTML(a.Title), "Untitled Article")
	author := fallback(EscapeHTML(a.Author), "Staff")
	date := fallback(EscapeHTML(a.PublishedDate), "Date not available")

	var body strings.Builder
	for _, line := range strings.Split(a.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		body.WriteString("    <p>")
		body.WriteString(EscapeHTML(line))
		body.WriteString("</p>\n")
	}

	source := ""
	if a.SourceURL != "" {
		source = fmt.Sprintf("    <p><a href=\"%s\">Read the original article</a></p>\n", EscapeHTML(a.SourceURL))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
</head>
<body>
    <h1>%s</h1>
    <p><em>By %s | %s</em></p>
%s%s</body>
</html>
`, title, title, author, date, body.String(), source)
}
