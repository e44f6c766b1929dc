package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

const maxListedSkills = 6

func renderAnalysis(a models.CareerAnalysis) string {
	var b strings.Builder
	b.WriteString("🤖 **Career Profiling Analysis (Powered by Gemini 2.5 Flash)**\n\n")
	b.WriteString(a.Analysis)
	fmt.Fprintf(&b, "\n\n**📊 Readiness Score:** %d/100\n\n", a.ReadinessScore)
	b.WriteString("**💪 Your Strengths:**\n")
	b.WriteString(bullets(a.Strengths))
	b.WriteString("\n\n**📈 Areas for Improvement:**\n")
	b.WriteString(bullets(a.AreasForImprovement))
	b.WriteString("\n\n**🎯 Recommended Actions:**\n")
	b.WriteString(bullets(a.RecommendedActions))
	b.WriteString("\n\n💡 *Tip: Upload your resume using the 📎 icon for more accurate analysis!*")
	return b.String()
}

func renderResume(filename string, r models.ResumeExtraction) string {
	skills := r.ExtractedData.Skills
	if len(skills) > maxListedSkills {
		skills = skills[:maxListedSkills]
	}
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}

	var b strings.Builder
	b.WriteString("✅ **Resume Analyzed Successfully!**\n\n")
	fmt.Fprintf(&b, "📄 **%s**\n\n", filename)
	b.WriteString("**Profile Extracted:**\n")
	fmt.Fprintf(&b, "• **Name:** %s\n", r.Profile.FullName)
	fmt.Fprintf(&b, "• **Role:** %s\n", r.Profile.CurrentRole)
	fmt.Fprintf(&b, "• **Experience:** %d years\n", r.Profile.YearsOfExperience)
	fmt.Fprintf(&b, "• **Email:** %s\n\n", r.Profile.Email)
	fmt.Fprintf(&b, "**Skills Found:** %s\n\n", strings.Join(names, ", "))
	if len(r.ExtractedData.Experience) > 0 {
		e := r.ExtractedData.Experience[0]
		fmt.Fprintf(&b, "**Recent Experience:**\n%s - %s\n\n", e.Company, e.Role)
	}
	b.WriteString("🎯 Your profile has been updated! Ask me to analyze your career readiness.")
	return b.String()
}

func renderError(err error) string {
	return "⚠️ " + describe(err) + ". Please try again."
}

func renderUploadError(err error) string {
	return "❌ Failed to upload resume: " + describe(err)
}

func describe(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out"
	case errors.Is(err, context.Canceled):
		return "The request was cancelled"
	case err == nil || err.Error() == "":
		return "An error occurred"
	default:
		return err.Error()
	}
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "• " + it
	}
	return strings.Join(lines, "\n")
}
