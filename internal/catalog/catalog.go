package catalog

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/Rakeshkoyya/skillverse/internal/models"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type EduWarriorOptions struct {
	Education    []string `yaml:"education"`
	Expertise    []string `yaml:"expertise"`
	Availability []string `yaml:"availability"`
}

// Catalog holds the option lists offered by the forms and the details of the
// upcoming parent webinar.
type Catalog struct {
	WebinarEvent    models.WebinarEvent `yaml:"webinar_event"`
	WebinarSections []string            `yaml:"webinar_sections"`

	States               []string `yaml:"states"`
	NumberOfChildren     []string `yaml:"number_of_children"`
	ChildAgeGroups       []string `yaml:"child_age_groups"`
	EducationStages      []string `yaml:"education_stages"`
	ParentConcerns       []string `yaml:"parent_concerns"`
	SchoolSystemOpinions []string `yaml:"school_system_opinions"`
	LifeSkillsAwareness  []string `yaml:"life_skills_awareness"`
	SkillsNeeded         []string `yaml:"skills_needed"`
	DecisionMaker        []string `yaml:"decision_maker"`
	EnrollmentReadiness  []string `yaml:"enrollment_readiness"`

	EduWarrior      EduWarriorOptions `yaml:"eduwarrior"`
	SubscriberRoles []string          `yaml:"subscriber_roles"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.WebinarSections) == 0 {
		return nil, fmt.Errorf("parse catalog: webinar_sections is empty")
	}
	return &c, nil
}

// SectionTitle returns the title of a one-based webinar section, or "" when
// n is out of range.
func (c *Catalog) SectionTitle(n int) string {
	if n < 1 || n > len(c.WebinarSections) {
		return ""
	}
	return c.WebinarSections[n-1]
}

// Contains reports whether value is one of options.
func Contains(options []string, value string) bool {
	return slices.Contains(options, value)
}
