package models

// Response is the envelope every profiler operation returns
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// ResumeFile is an uploaded resume. Name is the name declared by the client.
type ResumeFile struct {
	Name string
	Data []byte
}

// ResumeExtraction is the structured result of parsing a resume
type ResumeExtraction struct {
	Profile       ResumeProfile `json:"profile"`
	ExtractedData ExtractedData `json:"extracted_data"`
}

type ResumeProfile struct {
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	CurrentRole       string `json:"current_role"`
	YearsOfExperience int    `json:"years_of_experience"`
	Summary           string `json:"summary"`
}

type ExtractedData struct {
	Skills         []Skill      `json:"skills"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Certifications []string     `json:"certifications"`
}

// CareerAnalysis is the generated career readiness report
type CareerAnalysis struct {
	Analysis            string   `json:"analysis"`
	ReadinessScore      int      `json:"readiness_score"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	RecommendedActions  []string `json:"recommended_actions"`
}

type GitHubAnalysis struct {
	Username      string         `json:"username"`
	Repos         int            `json:"repos"`
	Contributions int            `json:"contributions"`
	Languages     []string       `json:"languages"`
	Analysis      GitHubInsights `json:"analysis"`
}

type GitHubInsights struct {
	ContributionLevel string `json:"contribution_level"`
	CodeQuality       string `json:"code_quality"`
	ProjectDiversity  string `json:"project_diversity"`
	Consistency       string `json:"consistency"`
}

type LinkedInAnalysis struct {
	Connections     int              `json:"connections"`
	Recommendations int              `json:"recommendations"`
	Endorsements    int              `json:"endorsements"`
	Analysis        LinkedInInsights `json:"analysis"`
}

type LinkedInInsights struct {
	NetworkStrength  string `json:"network_strength"`
	IndustryPresence string `json:"industry_presence"`
	EngagementLevel  string `json:"engagement_level"`
}

// Health is the liveness payload of a profiler
type Health struct {
	Status  string `json:"status"`
	Agent   string `json:"agent"`
	AIModel string `json:"ai_model"`
	Version string `json:"version"`
}
