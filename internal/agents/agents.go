// Package agents holds the fixed catalog of career assistant personas.
package agents

import (
	"slices"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

const (
	CareerProfiling    models.AgentID = "career-profiling"
	MarketIntelligence models.AgentID = "market-intelligence"
	SkillRoadmap       models.AgentID = "skill-roadmap"
	ActionApplication  models.AgentID = "action-application"
	FeedbackLearning   models.AgentID = "feedback-learning"
	ProgressMotivation models.AgentID = "progress-motivation"
)

var catalog = []models.Persona{
	{
		ID:          CareerProfiling,
		Name:        "Career Profiling",
		Description: "Parses resume, GitHub, LinkedIn & builds your career memory",
		Icon:        "user",
		Color:       "from-lavender-deep to-lavender",
		Capabilities: []string{
			"Resume parsing",
			"GitHub analysis",
			"LinkedIn integration",
			"Grade tracking",
			"Interest mapping",
		},
	},
	{
		ID:          MarketIntelligence,
		Name:        "Market Intelligence",
		Description: "Analyzes job market trends and in-demand skills",
		Icon:        "trending-up",
		Color:       "from-lavender to-lavender-light",
		Capabilities: []string{
			"Job description analysis",
			"Skill demand tracking",
			"Hiring trends",
			"Role feasibility",
		},
	},
	{
		ID:          SkillRoadmap,
		Name:        "Skill Gap & Roadmap",
		Description: "Creates personalized learning paths and milestones",
		Icon:        "map",
		Color:       "from-lavender-light to-cream",
		Capabilities: []string{
			"Gap analysis",
			"Weekly milestones",
			"Project recommendations",
			"Resource curation",
		},
	},
	{
		ID:          ActionApplication,
		Name:        "Action & Application",
		Description: "Helps with job applications and resume tailoring",
		Icon:        "briefcase",
		Color:       "from-cream to-lavender-light",
		Capabilities: []string{
			"Job matching",
			"Resume tailoring",
			"Application prep",
			"Deadline tracking",
		},
	},
	{
		ID:          FeedbackLearning,
		Name:        "Feedback & Learning",
		Description: "Analyzes outcomes and updates your career strategy",
		Icon:        "message-square",
		Color:       "from-lavender-light to-lavender-deep",
		Capabilities: []string{
			"Rejection analysis",
			"Interview feedback",
			"Strategy updates",
			"Priority adjustment",
		},
	},
	{
		ID:          ProgressMotivation,
		Name:        "Progress Checker & Motivation",
		Description: "Monitors progress, sends reminders, and keeps you motivated",
		Icon:        "target",
		Color:       "from-lavender-deep to-purple-600",
		Capabilities: []string{
			"Progress tracking",
			"Smart reminders",
			"Streak monitoring",
			"Burnout detection",
			"Motivational coaching",
			"Accountability alerts",
		},
	},
}

// All returns the personas in display order.
func All() []models.Persona {
	out := make([]models.Persona, len(catalog))
	for i, p := range catalog {
		out[i] = p
		out[i].Capabilities = slices.Clone(p.Capabilities)
	}
	return out
}

// Default is the persona that is active when a session starts.
func Default() models.AgentID {
	return catalog[0].ID
}

// Lookup finds a persona by id.
func Lookup(id models.AgentID) (models.Persona, bool) {
	for _, p := range catalog {
		if p.ID == id {
			p.Capabilities = slices.Clone(p.Capabilities)
			return p, true
		}
	}
	return models.Persona{}, false
}

// IsWired reports whether submissions to id go to the profiler instead of the
// static reply table.
func IsWired(id models.AgentID) bool {
	return id == CareerProfiling
}
