package tailor

import (
	"strings"
	"time"
)

// Fixed blocks embedded verbatim into every prompt. These are configuration
// constants describing the resume owner, never derived from request input.
const signOffBlock = `
Kind regards,
Jordan Lee
Austin, TX
Email: jordan.lee@example.com
LinkedIn: https://www.linkedin.com/in/jordanlee
GitHub: https://github.com/jordanlee
Portfolio: https://jordanlee.dev
`

const additionalResumeSections = `
PLATFORMS & CMS EXPERIENCE
- Experience building and customizing sites on WordPress and headless CMS platforms
- Familiar with theme customization, content modeling, and basic SEO practices

DEVELOPER WORKFLOW & TOOLING
- AI-assisted development tools used for ideation, debugging, and prototyping
- Strong emphasis on manual implementation, clean code, and understanding fundamentals
- Experience iterating designs and code based on feedback and continuous improvement

ADDITIONAL INFORMATION
- Actively seeking backend and full-stack engineering opportunities
- Strong interest in distributed systems, API design, and developer tooling
- Comfortable working in English-based technical environments and international teams
- Actively building portfolio projects and contributing to open source
`

// promptDate formats a time the way the prompt expects it, e.g. "April 5, 2026".
func promptDate(now time.Time) string {
	return now.Format("January 2, 2006")
}

// BuildPrompt constructs the deterministic tailoring prompt. The literal
// resume text and job description are appended at the end.
func BuildPrompt(resumeText, jobDescription string, now time.Time) string {
	today := promptDate(now)

	var b strings.Builder
	b.WriteString("You are an expert career coach and ATS optimization specialist.\n")
	b.WriteString("I will provide you with a resume and a job description.\n\n")
	b.WriteString("Current Date: " + today + "\n\n")
	b.WriteString("Tasks:\n")
	b.WriteString("1. Extract the \"Job Title\" and \"Company Name\" from the provided job description.\n")
	b.WriteString("2. Rewrite the resume to align perfectly with the job description to achieve a 100% ATS Match Score.\n")
	b.WriteString("   - CRITICAL: KEYWORD DENSITY: Scan the Job Description for ALL hard skills, tools, and technologies. Ensure these EXACT keywords appear in the \"Technical Skills\" or \"Professional Experience\" sections of the resume.\n")
	b.WriteString("   - ATS Formatting: Use simple, standard structure. No columns, no graphics, no creative headers. Use standard headings like \"Professional Experience\", \"Technical Skills\", \"Education\".\n")
	b.WriteString("   - Impact-Driven Bullets: Rewrite bullet points to focus on results and impact. Use action verbs (e.g., \"Developed\", \"Optimized\", \"Led\").\n")
	b.WriteString("   - Mandatory Sections: You MUST append the following three sections EXACTLY as provided to the end of the rewritten resume:\n")
	b.WriteString(additionalResumeSections)
	b.WriteString("3. Write a professional, compelling cover letter for this specific job description.\n")
	b.WriteString("   - Hook: Start with a strong opening that explicitly states the role and why you are the perfect fit based on the JD.\n")
	b.WriteString("   - Body: Use the \"STAR\" method (Situation, Task, Action, Result) to describe relevant experience.\n")
	b.WriteString("   - Keywords: Mirror the language and tone of the Job Description.\n")
	b.WriteString("   - Use the current date: " + today + ".\n")
	b.WriteString("   - Address the hiring manager or company professionally.\n")
	b.WriteString("   - The sign-off MUST be exactly as follows:\n")
	b.WriteString(signOffBlock)
	b.WriteString("\nPlease provide the output in the following JSON format:\n")
	b.WriteString(`{
  "files": {
    "jobTitle": "Extracted Job Title",
    "companyName": "Extracted Company Name"
  },
  "rewrittenResume": "The full text of the rewritten resume",
  "coverLetter": "The full text of the cover letter"
}
`)
	b.WriteString("\nResume:\n")
	b.WriteString(resumeText)
	b.WriteString("\n\nJob Description:\n")
	b.WriteString(jobDescription)
	b.WriteString("\n")
	return b.String()
}
