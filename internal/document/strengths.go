package document

import (
	"github.com/nao1215/seoreport/internal/model"
)

// IdentifyStrengths scans the results for positive signals and returns one
// sentence per match, in a fixed order.
func IdentifyStrengths(r model.Results) []string {
	var strengths []string
	if r.IsEmpty() {
		return strengths
	}

	loadTime := r.Lookup(model.CategoryPerformance, "load_time")
	if loadTime.Lookup("rating").Equals("good") {
		strengths = append(strengths, "Excellent load time: "+
			loadTime.Lookup("time_seconds").StringOr("0")+" seconds")
	}

	pageSize := r.Lookup(model.CategoryPerformance, "page_size")
	if pageSize.Lookup("rating").Equals("good") {
		strengths = append(strengths, "Optimized page size: "+
			pageSize.Lookup("size_mb").StringOr("0")+" MB")
	}

	if r.Lookup(model.CategoryTechnicalSEO, "ssl_check", "has_ssl").Truthy() {
		strengths = append(strengths, "SSL certificate correctly implemented")
	}

	if r.Lookup(model.CategoryMetaData, "meta_description", "optimal_length").Equals("good") {
		strengths = append(strengths, "Well optimized meta description")
	}

	if withAlt := r.Lookup(model.CategoryMetaData, "img_alt", "with_alt").FloatOr(0); withAlt > 0 {
		strengths = append(strengths, model.FormatNumber(withAlt)+" images correctly labeled")
	}

	return strengths
}
