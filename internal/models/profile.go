package models

import (
	"slices"
	"time"
)

// Profile is a user's career profile keyed by UserID
type Profile struct {
	UserID          string      `json:"user_id" validate:"required"`
	Email           string      `json:"email,omitempty"`
	FullName        string      `json:"full_name,omitempty"`
	CareerLevel     string      `json:"career_level,omitempty"`
	Skills          []Skill     `json:"skills"`
	Education       []Education `json:"education"`
	CareerInterests []string    `json:"career_interests"`
	TargetRoles     []string    `json:"target_roles"`

	// Filled in from a parsed resume
	Phone             string       `json:"phone,omitempty"`
	CurrentRole       string       `json:"current_role,omitempty"`
	YearsOfExperience int          `json:"years_of_experience,omitempty"`
	Summary           string       `json:"summary,omitempty"`
	Experience        []Experience `json:"experience,omitempty"`
	Certifications    []string     `json:"certifications,omitempty"`
	ResumeUploaded    bool         `json:"resume_uploaded,omitempty"`
	ResumeFilename    string       `json:"resume_filename,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Skill struct {
	Name             string `json:"name"`
	Category         string `json:"category,omitempty"`
	ProficiencyLevel string `json:"proficiency_level,omitempty"`
	Years            int    `json:"years,omitempty"`
}

type Education struct {
	Degree         string `json:"degree,omitempty"`
	FieldOfStudy   string `json:"field_of_study,omitempty"`
	Institution    string `json:"institution,omitempty"`
	GraduationYear int    `json:"graduation_year,omitempty"`
	Grade          string `json:"grade,omitempty"`
}

type Experience struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Duration     string   `json:"duration"`
	Achievements []string `json:"achievements"`
}

// ProfileUpdate carries a partial profile. Nil fields are left untouched.
type ProfileUpdate struct {
	Email             *string      `json:"email,omitempty"`
	FullName          *string      `json:"full_name,omitempty"`
	CareerLevel       *string      `json:"career_level,omitempty"`
	Skills            []Skill      `json:"skills"`
	Education         []Education  `json:"education"`
	CareerInterests   []string     `json:"career_interests"`
	TargetRoles       []string     `json:"target_roles"`
	Phone             *string      `json:"phone,omitempty"`
	CurrentRole       *string      `json:"current_role,omitempty"`
	YearsOfExperience *int         `json:"years_of_experience,omitempty"`
	Summary           *string      `json:"summary,omitempty"`
	Experience        []Experience `json:"experience"`
	Certifications    []string     `json:"certifications"`
}

// Apply shallow-merges u into p. UpdatedAt is left to the caller.
func (u ProfileUpdate) Apply(p *Profile) {
	setString(&p.Email, u.Email)
	setString(&p.FullName, u.FullName)
	setString(&p.CareerLevel, u.CareerLevel)
	setString(&p.Phone, u.Phone)
	setString(&p.CurrentRole, u.CurrentRole)
	setString(&p.Summary, u.Summary)
	if u.YearsOfExperience != nil {
		p.YearsOfExperience = *u.YearsOfExperience
	}
	if u.Skills != nil {
		p.Skills = slices.Clone(u.Skills)
	}
	if u.Education != nil {
		p.Education = slices.Clone(u.Education)
	}
	if u.CareerInterests != nil {
		p.CareerInterests = slices.Clone(u.CareerInterests)
	}
	if u.TargetRoles != nil {
		p.TargetRoles = slices.Clone(u.TargetRoles)
	}
	if u.Experience != nil {
		p.Experience = cloneExperience(u.Experience)
	}
	if u.Certifications != nil {
		p.Certifications = slices.Clone(u.Certifications)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Clone returns a deep copy of p.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Skills != nil {
		cp.Skills = slices.Clone(p.Skills)
	}
	if p.Education != nil {
		cp.Education = slices.Clone(p.Education)
	}
	if p.CareerInterests != nil {
		cp.CareerInterests = slices.Clone(p.CareerInterests)
	}
	if p.TargetRoles != nil {
		cp.TargetRoles = slices.Clone(p.TargetRoles)
	}
	if p.Experience != nil {
		cp.Experience = cloneExperience(p.Experience)
	}
	if p.Certifications != nil {
		cp.Certifications = slices.Clone(p.Certifications)
	}
	return &cp
}

// SkillNames returns the skill names in list order.
func (p *Profile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return names
}

func cloneExperience(in []Experience) []Experience {
	out := make([]Experience, len(in))
	for i, e := range in {
		out[i] = e
		if e.Achievements != nil {
			out[i].Achievements = slices.Clone(e.Achievements)
		}
	}
	return out
}
