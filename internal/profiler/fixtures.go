package profiler

import (
	"fmt"
	"strings"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

// Readiness scores are drawn uniformly from [ScoreMin, ScoreMax].
const (
	ScoreMin = 75
	ScoreMax = 90
)

// resumeExtraction is the synthetic parse result. It does not depend on the
// file content.
func resumeExtraction() models.ResumeExtraction {
	return models.ResumeExtraction{
		Profile: models.ResumeProfile{
			FullName:          "Alex Johnson",
			Email:             "alex.johnson@email.com",
			Phone:             "+1 (555) 123-4567",
			CurrentRole:       "Senior Software Engineer",
			YearsOfExperience: 5,
			Summary:           "Results-driven software engineer with 5+ years of experience building scalable web applications. Specialized in React, Node.js, and cloud architectures.",
		},
		ExtractedData: models.ExtractedData{
			Skills: []models.Skill{
				{Name: "React", Category: "Frontend", ProficiencyLevel: "expert", Years: 4},
				{Name: "TypeScript", Category: "Programming", ProficiencyLevel: "advanced", Years: 3},
				{Name: "Node.js", Category: "Backend", ProficiencyLevel: "advanced", Years: 4},
				{Name: "Python", Category: "Programming", ProficiencyLevel: "intermediate", Years: 2},
				{Name: "AWS", Category: "Cloud", ProficiencyLevel: "advanced", Years: 3},
				{Name: "Docker", Category: "DevOps", ProficiencyLevel: "intermediate", Years: 2},
			},
			Experience: []models.Experience{
				{
					Company:  "Tech Innovations Inc.",
					Role:     "Senior Software Engineer",
					Duration: "2022 - Present",
					Achievements: []string{
						"Led development of microservices architecture serving 2M+ users",
						"Improved application performance by 40% through optimization",
						"Mentored team of 5 junior developers",
					},
				},
				{
					Company:  "StartUp Solutions",
					Role:     "Full Stack Developer",
					Duration: "2020 - 2022",
					Achievements: []string{
						"Built React-based dashboard reducing customer onboarding time by 60%",
						"Implemented CI/CD pipeline reducing deployment time by 75%",
					},
				},
			},
			Education: []models.Education{
				{
					Degree:         "Bachelor of Science",
					FieldOfStudy:   "Computer Science",
					Institution:    "State University",
					GraduationYear: 2019,
					Grade:          "3.8 GPA",
				},
			},
			Certifications: []string{
				"AWS Certified Solutions Architect",
				"Google Cloud Professional Developer",
			},
		},
	}
}

// mergeResume folds an extraction into a stored profile. Skills, experience and
// certifications are replaced, not appended. r must not be shared with the caller.
func mergeResume(p *models.Profile, r models.ResumeExtraction, filename string) {
	p.FullName = r.Profile.FullName
	p.Email = r.Profile.Email
	p.Phone = r.Profile.Phone
	p.CurrentRole = r.Profile.CurrentRole
	p.YearsOfExperience = r.Profile.YearsOfExperience
	p.Summary = r.Profile.Summary
	p.ResumeUploaded = true
	p.ResumeFilename = filename

	p.Skills = make([]models.Skill, len(r.ExtractedData.Skills))
	for i, s := range r.ExtractedData.Skills {
		p.Skills[i] = models.Skill{Name: s.Name, Category: s.Category, ProficiencyLevel: s.ProficiencyLevel}
	}
	p.Experience = r.ExtractedData.Experience
	p.Certifications = r.ExtractedData.Certifications
}

// fallbackProfile stands in for users that never created a profile.
func fallbackProfile() *models.Profile {
	return &models.Profile{
		CareerLevel: "mid-level",
		Skills:      []models.Skill{{Name: "JavaScript", Category: "Programming"}},
		Education:   []models.Education{{FieldOfStudy: "Computer Science", Institution: "University"}},
		CareerInterests: []string{
			"Software Development",
			"AI/ML",
		},
		TargetRoles: []string{"Senior Developer", "Tech Lead"},
	}
}

func buildAnalysis(p *models.Profile, score int) models.CareerAnalysis {
	field, institution := "Computer Science", "University"
	if len(p.Education) > 0 {
		if p.Education[0].FieldOfStudy != "" {
			field = p.Education[0].FieldOfStudy
		}
		if p.Education[0].Institution != "" {
			institution = p.Education[0].Institution
		}
	}
	level := p.CareerLevel
	if level == "" {
		level = "mid-level"
	}
	topSkill := "modern technologies"
	if len(p.Skills) > 0 && p.Skills[0].Name != "" {
		topSkill = p.Skills[0].Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your comprehensive profile analysis powered by advanced AI, you demonstrate exceptional technical capabilities with a robust foundation in modern software development. Your expertise in %s positions you excellently for %s roles.\n\n",
		strings.Join(p.SkillNames(), ", "), strings.Join(p.TargetRoles, " and "))
	fmt.Fprintf(&b, "Your educational background in %s from %s provides a strong theoretical foundation, complemented by practical skills. The strategic alignment of your career interests (%s) with current industry demands demonstrates forward-thinking career planning.\n\n",
		field, institution, strings.Join(p.CareerInterests, ", "))
	fmt.Fprintf(&b, "You're currently at the %s stage, showing readiness for advancement. Your profile indicates strong potential for leadership roles, particularly in technical domains. With focused skill development and strategic networking, you're well-positioned to achieve your career objectives within the next 12-18 months.",
		level)

	return models.CareerAnalysis{
		Analysis:       b.String(),
		ReadinessScore: score,
		Strengths: []string{
			"Exceptional proficiency in " + topSkill,
			"Strong educational foundation with relevant degree",
			"Clear career trajectory and well-defined goals",
			"Diverse skill set spanning multiple technical domains",
			"Demonstrated commitment to continuous learning",
			"Strategic thinking about career progression",
		},
		AreasForImprovement: []string{
			"Expand leadership and team management capabilities",
			"Deepen expertise in system architecture and scalability",
			"Build more robust professional network in target industry",
			"Increase visibility through technical content creation",
		},
		RecommendedActions: []string{
			"Lead a high-impact project showcasing technical and leadership skills",
			"Contribute to 3-4 major open-source projects in your stack",
			"Obtain professional certifications in cloud platforms (AWS/GCP/Azure)",
			"Build a portfolio of 5 production-ready showcase projects",
			"Establish connections with senior engineers at target companies",
			"Start technical blogging or speaking at industry conferences",
			"Mentor 2-3 junior developers to build leadership experience",
			"Participate in hackathons and technical competitions",
		},
	}
}

func githubAnalysis(username string) models.GitHubAnalysis {
	return models.GitHubAnalysis{
		Username:      username,
		Repos:         47,
		Contributions: 1234,
		Languages:     []string{"JavaScript", "TypeScript", "Python", "Go"},
		Analysis: models.GitHubInsights{
			ContributionLevel: "high",
			CodeQuality:       "excellent",
			ProjectDiversity:  "strong",
			Consistency:       "regular contributor",
		},
	}
}

func linkedinAnalysis() models.LinkedInAnalysis {
	return models.LinkedInAnalysis{
		Connections:     500,
		Recommendations: 12,
		Endorsements:    89,
		Analysis: models.LinkedInInsights{
			NetworkStrength:  "strong",
			IndustryPresence: "established",
			EngagementLevel:  "active",
		},
	}
}

func mockHealth() models.Health {
	return models.Health{
		Status:  "healthy",
		Agent:   "Agent 1: Career Profiling Agent (MOCK MODE)",
		AIModel: "Gemini 2.5 Flash Simulation",
		Version: "1.0.0",
	}
}
