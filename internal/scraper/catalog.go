// Package scraper pulls course data out of the university catalog HTML and
// normalizes it into catalog courses. Network fetch and HTML parsing are
// separated so the parser is testable against fixture markup.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/engine/courseutil"
	"github.com/boilerplan/boilerplan-backend/internal/platform/envutil"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
)

const defaultCatalogURL = "https://catalog.purdue.edu/content.php?catoid=16&navoid=19954"

// Matches "ECE 30100 - Signals and Systems (3 cr" style catalog titles.
var titleRe = regexp.MustCompile(`(?i)([A-Z]+\s*\d+)\s*[-–]\s*(.+?)\s*\((\d+)\s*cr`)

var courseCodeRe = regexp.MustCompile(`[A-Z]+\s*\d+`)

var prereqSectionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)prerequisite[s]?:\s*([^.]+)`),
	regexp.MustCompile(`(?i)prereq[s]?:\s*([^.]+)`),
	regexp.MustCompile(`(?i)requires?\s+([A-Z]+\s*\d+(?:\s*(?:and|or|,)\s*[A-Z]+\s*\d+)*)`),
}

type CatalogScraper struct {
	log        *logger.Logger
	httpClient *http.Client
	catalogURL string
	department string
}

func NewCatalogScraper(logg *logger.Logger) *CatalogScraper {
	timeoutSec := envutil.Int("SCRAPER_TIMEOUT_SECONDS", 30)
	return &CatalogScraper{
		log:        logg.With("service", "CatalogScraper"),
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		catalogURL: envutil.String("CATALOG_URL", defaultCatalogURL),
		department: envutil.String("CATALOG_DEPARTMENT", "ECE"),
	}
}

// Scrape fetches the department catalog page and parses its course blocks.
// An unreachable or unparseable catalog falls back to the bundled sample
// catalog so downstream features keep working with demo data.
func (cs *CatalogScraper) Scrape(ctx context.Context) ([]*types.Course, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cs.catalogURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; BoilerPlan Bot)")

	resp, err := cs.httpClient.Do(req)
	if err != nil {
		cs.log.Warn("Catalog fetch failed, using sample catalog", "error", err.Error())
		return SampleCourses(), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		cs.log.Warn("Catalog fetch returned non-200, using sample catalog", "status", resp.StatusCode)
		return SampleCourses(), nil
	}

	courses, err := cs.Parse(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		cs.log.Warn("Catalog page yielded no courses, using sample catalog")
		return SampleCourses(), nil
	}
	return courses, nil
}

// Parse extracts courses from catalog HTML. Blocks whose title does not
// match the code/name/credits pattern are skipped.
func (cs *CatalogScraper) Parse(r io.Reader) ([]*types.Course, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse catalog html: %w", err)
	}

	var courses []*types.Course
	doc.Find(".courseblock").Each(func(_ int, block *goquery.Selection) {
		title := strings.TrimSpace(block.Find(".courseblocktitle").Text())
		desc := strings.TrimSpace(block.Find(".courseblockdesc").Text())

		m := titleRe.FindStringSubmatch(title)
		if m == nil {
			return
		}

		code := courseutil.CanonicalCode(m[1])
		// Re-insert the conventional single space between letters and digits.
		code = formatCode(code)
		credits, err := strconv.Atoi(m[3])
		if err != nil || credits <= 0 {
			credits = 3
		}

		course := &types.Course{
			Code:          code,
			Name:          strings.TrimSpace(m[2]),
			Description:   desc,
			Department:    cs.department,
			Credits:       credits,
			Level:         ExtractCourseLevel(code),
			Prerequisites: ParsePrerequisites(desc),
			Corequisites:  []string{},
			Semesters:     []string{"Fall", "Spring"},
		}
		course.CareerTags = InferCareerTags(course)
		course.InterestTags = InferInterestTags(course)
		courses = append(courses, course)
	})

	return courses, nil
}

func formatCode(canonical string) string {
	letters := strings.TrimRight(canonical, "0123456789")
	digits := canonical[len(letters):]
	if letters == "" || digits == "" {
		return canonical
	}
	return letters + " " + digits
}

// ParsePrerequisites pulls course codes out of the prerequisite clause of a
// catalog description. Duplicates are dropped, first-seen order kept.
func ParsePrerequisites(description string) []string {
	for _, re := range prereqSectionRes {
		m := re.FindStringSubmatch(description)
		if m == nil {
			continue
		}
		codes := courseCodeRe.FindAllString(m[1], -1)
		seen := map[string]struct{}{}
		var prereqs []string
		for _, code := range codes {
			normalized := formatCode(courseutil.CanonicalCode(code))
			if _, dup := seen[normalized]; dup {
				continue
			}
			seen[normalized] = struct{}{}
			prereqs = append(prereqs, normalized)
		}
		return prereqs
	}
	return nil
}

// ExtractCourseLevel maps a course code to its catalog level bucket, e.g.
// "ECE 30100" -> 30000.
func ExtractCourseLevel(code string) int {
	m := regexp.MustCompile(`\d+`).FindString(code)
	if m == "" {
		return 20000
	}
	num, err := strconv.Atoi(m)
	if err != nil {
		return 20000
	}
	if level := num / 10000 * 10000; level > 0 {
		return level
	}
	return num / 1000 * 1000
}

// InferCareerTags derives career-track tags from name and description
// keywords.
func InferCareerTags(course *types.Course) []string {
	text := strings.ToLower(course.Name + " " + course.Description)
	var tags []string
	add := func(tag string, keywords ...string) {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				tags = append(tags, tag)
				return
			}
		}
	}

	add("embedded", "embedded", "microcontroller", "firmware")
	add("software", "software", "programming", "algorithm")
	add("hardware", "circuit", "hardware", "vlsi", "analog")
	add("ml", "machine learning", "artificial intelligence", "neural")
	add("signals", "signal", "dsp", "filter")
	add("power", "power", "energy", "grid")
	add("communications", "communication", "wireless", "network")
	add("robotics", "robot", "control", "autonomous")
	if containsTag(tags, "robotics") {
		tags = append(tags, "controls")
	}
	return tags
}

// InferInterestTags derives topic-interest tags from name and description
// keywords.
func InferInterestTags(course *types.Course) []string {
	text := strings.ToLower(course.Name + " " + course.Description)
	var tags []string
	add := func(tag string, keywords ...string) {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				tags = append(tags, tag)
				return
			}
		}
	}

	add("circuits", "circuit", "electronic")
	add("programming", "programming", "software", "code")
	add("math", "math", "linear algebra", "calculus")
	add("physics", "physics", "electromagnetic")
	add("digital", "digital", "logic", "fpga")
	add("analog", "analog")
	add("dsp", "signal", "dsp")
	add("networking", "network", "protocol")
	add("os", "operating system", "kernel")
	add("architecture", "architecture", "processor", "cpu")
	return tags
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
