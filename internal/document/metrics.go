package document

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/nao1215/seoreport/internal/model"
)

// Column widths of the metrics tables in points.
var (
	metricWidths      = []float64{150, 100, 250}
	performanceWidths = []float64{150, 150, 100}
)

// DetailedMetrics builds the four metrics tables.
func (a *Assembler) DetailedMetrics() []Block {
	return []Block{
		Heading(LevelSection, "Detailed Metrics Analysis"),
		Heading(LevelSubsection, "1. Technical SEO Analysis"),
		TechnicalTable(a.results),
		Spacer(15),
		Heading(LevelSubsection, "2. Meta Data"),
		MetaDataTable(a.results),
		Spacer(15),
		Heading(LevelSubsection, "3. Performance"),
		PerformanceTable(a.results),
		Spacer(15),
		Heading(LevelSubsection, "4. Mobile"),
		MobileTable(a.results),
	}
}

// TechnicalTable builds the HTML structure, SSL, robots.txt and sitemap rows.
func TechnicalTable(r model.Results) Block {
	tech := r.Lookup(model.CategoryTechnicalSEO)

	return NewTable(metricWidths,
		[]string{"Metric", "Status", "Details"},
		[]string{
			"HTML structure",
			okOr(tech.Lookup("html_structure", "has_html_tag").Truthy()),
			guard(NotAvailable, func() string { return htmlStructureDetails(tech.Lookup("html_structure")) }),
		},
		[]string{
			"SSL/HTTPS",
			okOr(tech.Lookup("ssl_check", "has_ssl").Truthy()),
			guard(NotAvailable, func() string {
				return "Certificate " + choose(tech.Lookup("ssl_check", "has_ssl").Truthy(), "valid", "not found")
			}),
		},
		[]string{
			"Robots.txt",
			okOr(tech.Lookup("robots_txt", "exists").Truthy()),
			choose(tech.Lookup("robots_txt", "exists").Truthy(), "File present", "File not found"),
		},
		[]string{
			"Sitemap",
			okOr(tech.Lookup("sitemap", "exists").Truthy()),
			guard(NotAvailable, func() string { return sitemapDetails(tech.Lookup("sitemap")) }),
		},
	)
}

// MetaDataTable builds the title, meta description, headers and alt text rows.
func MetaDataTable(r model.Results) Block {
	meta := r.Lookup(model.CategoryMetaData)
	title := meta.Lookup("title_tag")
	alt := meta.Lookup("img_alt")

	return NewTable(metricWidths,
		[]string{"Element", "Status", "Content/Details"},
		[]string{
			"Title tag",
			okOr(title.Lookup("optimal_length").Equals("good")),
			guard(NotAvailable, func() string {
				content := html.UnescapeString(title.Lookup("content").StringOr(NotAvailable))
				return fmt.Sprintf("Current: %s (%d characters)", content, title.Lookup("length").IntOr(0))
			}),
		},
		[]string{
			"Meta description",
			okOr(meta.Lookup("meta_description", "optimal_length").Equals("good")),
			guard(NotAvailable, func() string {
				return fmt.Sprintf("Length: %d characters", meta.Lookup("meta_description", "length").IntOr(0))
			}),
		},
		[]string{
			"Headers",
			okOr(meta.Lookup("headers", "h1", "count").IntOr(0) == 1),
			guard(NotAvailable, func() string { return headersDetails(meta.Lookup("headers")) }),
		},
		[]string{
			"Alt text",
			okOr(alt.Lookup("without_alt").FloatOr(1) == 0),
			guard(NotAvailable, func() string {
				return fmt.Sprintf("%s images with alt, %s without alt",
					model.FormatNumber(alt.Lookup("with_alt").FloatOr(0)),
					model.FormatNumber(alt.Lookup("without_alt").FloatOr(0)))
			}),
		},
	)
}

// PerformanceTable builds the load time, page size and status code rows.
func PerformanceTable(r model.Results) Block {
	perf := r.Lookup(model.CategoryPerformance)
	code := perf.Lookup("status_code", "code")

	return NewTable(performanceWidths,
		[]string{"Metric", "Value", "Status"},
		[]string{
			"Load time",
			model.FormatNumber(perf.Lookup("load_time", "time_seconds").FloatOr(0)) + " seconds",
			perf.Lookup("load_time", "rating").StringOr("N/A"),
		},
		[]string{
			"Page size",
			model.FormatNumber(perf.Lookup("page_size", "size_mb").FloatOr(0)) + " MB",
			perf.Lookup("page_size", "rating").StringOr("N/A"),
		},
		[]string{
			"Status code",
			model.FormatNumber(code.FloatOr(0)),
			choose(code.Exists() && code.FloatOr(0) == 200, StatusOK, StatusReview),
		},
	)
}

// MobileTable builds the viewport and responsive design rows.
func MobileTable(r model.Results) Block {
	mobile := r.Lookup(model.CategoryMobile)
	responsive := mobile.Lookup("responsive_design")

	return NewTable(metricWidths,
		[]string{"Element", "Status", "Details"},
		[]string{
			"Viewport",
			okOr(mobile.Lookup("viewport", "is_responsive").Truthy()),
			choose(mobile.Lookup("viewport", "is_responsive").Truthy(), "Configured correctly", "Needs configuration"),
		},
		[]string{
			"Responsive design",
			okOr(responsive.Lookup("has_fluid_images").Truthy()),
			choose(responsive.Lookup("has_media_queries").Truthy(), "Responsive design implemented", "Responsive implementation missing"),
		},
	)
}

func htmlStructureDetails(structure model.Value) string {
	return fmt.Sprintf("%s DOCTYPE, %s HEAD",
		choose(structure.Lookup("has_doctype").Truthy(), "Has", "Missing"),
		choose(structure.Lookup("has_head").Truthy(), "Has", "Missing"))
}

func sitemapDetails(sitemap model.Value) string {
	if !sitemap.Lookup("exists").Truthy() {
		return "Not found"
	}
	return fmt.Sprintf("Present with %d URLs", sitemap.Lookup("url_count").IntOr(0))
}

func headersDetails(headers model.Value) string {
	counts := make([]string, 0, 3)
	for _, level := range []string{"h1", "h2", "h3"} {
		counts = append(counts, fmt.Sprintf("%s: %d",
			strings.ToUpper(level), headers.Lookup(level, "count").IntOr(0)))
	}
	return strings.Join(counts, ", ")
}

func okOr(ok bool) string {
	return choose(ok, StatusOK, NeedsImprovement)
}

func choose(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
