package catalog

import (
	"fmt"
	"strings"
)

// Site is the full static content backing the landing page for one language.
type Site struct {
	Lang       string     `yaml:"lang" json:"lang"`
	Brand      Brand      `yaml:"brand" json:"brand"`
	Hero       Hero       `yaml:"hero" json:"hero"`
	Gallery    Gallery    `yaml:"gallery" json:"gallery"`
	Categories []Category `yaml:"categories" json:"categories"`
	Projects   []Project  `yaml:"projects" json:"projects"`
	Pricing    Pricing    `yaml:"pricing" json:"pricing"`
	Plans      []Plan     `yaml:"plans" json:"plans"`
	Addons     []Addon    `yaml:"addons" json:"addons"`
	FAQs       []FAQ      `yaml:"faqs" json:"faqs"`
	CTA        CTA        `yaml:"cta" json:"cta"`
	Contact    Contact    `yaml:"contact" json:"contact"`
	Footer     Footer     `yaml:"footer" json:"footer"`
}

// Brand holds the agency identity shown in the header and metadata.
type Brand struct {
	Name        string `yaml:"name" json:"name"`
	Tagline     string `yaml:"tagline" json:"tagline"`
	Description string `yaml:"description" json:"description"`
	Logo        string `yaml:"logo" json:"logo"`
}

// Hero is the top section copy.
type Hero struct {
	Headline  string `yaml:"headline" json:"headline"`
	Highlight string `yaml:"highlight" json:"highlight"`
	Subtitle  string `yaml:"subtitle" json:"subtitle"`
	CTA       string `yaml:"cta" json:"cta"`
	Stats     []Stat `yaml:"stats" json:"stats"`
}

// Stat is one social proof badge under the hero headline.
type Stat struct {
	Label string `yaml:"label" json:"label"`
	Icon  string `yaml:"icon" json:"icon"`
}

// Gallery is the portfolio section copy.
type Gallery struct {
	Title      string `yaml:"title" json:"title"`
	Subtitle   string `yaml:"subtitle" json:"subtitle"`
	EmptyTitle string `yaml:"empty_title" json:"empty_title"`
	EmptyBody  string `yaml:"empty_body" json:"empty_body"`
}

// Category groups projects in the gallery tabs.
type Category struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// All marks the tab that lists every project regardless of category.
	All bool `yaml:"all,omitempty" json:"all,omitempty"`
}

// Project is one portfolio entry.
type Project struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Image       string   `yaml:"image" json:"image"`
	Tags        []string `yaml:"tags" json:"tags"`
	DemoURL     string   `yaml:"demo_url,omitempty" json:"demo_url,omitempty"`
	Category    string   `yaml:"category,omitempty" json:"category,omitempty"`
}

// Pricing is the pricing section copy.
type Pricing struct {
	Title        string `yaml:"title" json:"title"`
	Subtitle     string `yaml:"subtitle" json:"subtitle"`
	AddonsTitle  string `yaml:"addons_title" json:"addons_title"`
	PopularBadge string `yaml:"popular_badge" json:"popular_badge"`
}

// Plan is a priced package in the pricing table.
type Plan struct {
	Name        string   `yaml:"name" json:"name"`
	Price       int64    `yaml:"price" json:"price"` // minor units
	Currency    string   `yaml:"currency" json:"currency"`
	Description string   `yaml:"description" json:"description"`
	Features    []string `yaml:"features" json:"features"`
	NotIncluded []string `yaml:"not_included" json:"not_included"`
	Popular     bool     `yaml:"popular" json:"popular"`
}

// Addon is an extra service sold alongside the plans.
type Addon struct {
	Name        string `yaml:"name" json:"name"`
	Price       int64  `yaml:"price" json:"price"`
	Currency    string `yaml:"currency" json:"currency"`
	Period      string `yaml:"period,omitempty" json:"period,omitempty"`
	Description string `yaml:"description" json:"description"`
}

// FAQ is a question with a markdown answer.
type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// CTA is the closing call-to-action band.
type CTA struct {
	Title     string `yaml:"title" json:"title"`
	Body      string `yaml:"body" json:"body"`
	Primary   string `yaml:"primary" json:"primary"`
	Secondary string `yaml:"secondary" json:"secondary"`
}

// Contact carries the outbound messages used for WhatsApp links.
type Contact struct {
	InquiryMessage string `yaml:"inquiry_message" json:"inquiry_message"`
	// PlanMessage must contain a single %s for the plan name.
	PlanMessage string `yaml:"plan_message" json:"plan_message"`
	Tooltip     string `yaml:"tooltip" json:"tooltip"`
}

// Footer is the page footer copy.
type Footer struct {
	Text string `yaml:"text" json:"text"`
}

// DefaultCategory returns the first category, which is the initially selected tab.
func (s *Site) DefaultCategory() (Category, bool) {
	if s == nil || len(s.Categories) == 0 {
		return Category{}, false
	}
	return s.Categories[0], true
}

// CategoryByID looks a category up by id.
func (s *Site) CategoryByID(id string) (Category, bool) {
	if s == nil {
		return Category{}, false
	}
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryIndex returns the tab index of id, or -1.
func (s *Site) CategoryIndex(id string) int {
	if s == nil {
		return -1
	}
	for i, c := range s.Categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// PlanByName finds a plan by case-insensitive name.
func (s *Site) PlanByName(name string) (Plan, bool) {
	if s == nil {
		return Plan{}, false
	}
	name = strings.TrimSpace(name)
	for _, p := range s.Plans {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Plan{}, false
}

// Problem describes an inconsistency in the catalog data.
type Problem struct {
	Kind string
	ID   string
	Ref  string
}

func (p Problem) String() string {
	if p.Ref != "" {
		return fmt.Sprintf("%s: %s -> %s", p.Kind, p.ID, p.Ref)
	}
	return fmt.Sprintf("%s: %s", p.Kind, p.ID)
}

// Problem kinds reported by Validate.
const (
	ProblemDuplicateCategory = "duplicate_category"
	ProblemDuplicateProject  = "duplicate_project"
	ProblemDanglingCategory  = "dangling_category"
	ProblemMissingImage      = "missing_image"
	ProblemPlanMessage       = "plan_message_placeholder"
)

// Validate checks cross references. It never fails; callers decide how loud to be.
func (s *Site) Validate() []Problem {
	if s == nil {
		return nil
	}
	var problems []Problem
	cats := make(map[string]struct{}, len(s.Categories))
	for _, c := range s.Categories {
		if _, dup := cats[c.ID]; dup {
			problems = append(problems, Problem{Kind: ProblemDuplicateCategory, ID: c.ID})
		}
		cats[c.ID] = struct{}{}
	}
	seen := make(map[string]struct{}, len(s.Projects))
	for _, p := range s.Projects {
		if _, dup := seen[p.ID]; dup {
			problems = append(problems, Problem{Kind: ProblemDuplicateProject, ID: p.ID})
		}
		seen[p.ID] = struct{}{}
		if strings.TrimSpace(p.Image) == "" {
			problems = append(problems, Problem{Kind: ProblemMissingImage, ID: p.ID})
		}
		if p.Category == "" {
			continue
		}
		if _, ok := cats[p.Category]; !ok {
			problems = append(problems, Problem{Kind: ProblemDanglingCategory, ID: p.ID, Ref: p.Category})
		}
	}
	if msg := s.Contact.PlanMessage; msg != "" && strings.Count(msg, "%s") != 1 {
		problems = append(problems, Problem{Kind: ProblemPlanMessage, ID: "contact.plan_message"})
	}
	return problems
}
