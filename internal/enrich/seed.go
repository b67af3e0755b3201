package enrich

import "opportunityhub/internal/domain"

// Seeds returns the static fallback list served while storage is empty
// and the first refresh has not completed. Seed entries carry ID 0 and
// source "Official" so alert rows generated from them stay idempotent.
func Seeds() []domain.Opportunity {
	return []domain.Opportunity{
		{
			Title:       "Google Summer Internship 2026",
			Company:     "Google",
			Type:        "Internship",
			Region:      "Multiple (Global)",
			Deadline:    "2026-03-15",
			URL:         "https://careers.google.com/internships/",
			Description: "Paid internship at Google offices worldwide",
			Salary:      "$25-35/hour",
			Duration:    "12 weeks",
			Online:      true,
			Source:      "Official",
			Approved:    true,
		},
		{
			Title:       "Microsoft TEALS Fellowship",
			Company:     "Microsoft",
			Type:        "Fellowship",
			Region:      "USA + International",
			Deadline:    "2026-04-01",
			URL:         "https://www.microsoft.com/en-us/teals",
			Description: "Tech education and mentorship program",
			Salary:      "Scholarship",
			Duration:    "Full Year",
			Online:      true,
			Source:      "Official",
			Approved:    true,
		},
		{
			Title:       "Goldman Sachs Internship Program",
			Company:     "Goldman Sachs",
			Type:        "Internship",
			Region:      "USA, Europe, Asia",
			Deadline:    "2026-02-28",
			URL:         "https://www.goldmansachs.com/careers/",
			Description: "Summer analyst program with mentorship",
			Salary:      "$30-40/hour",
			Duration:    "10 weeks",
			Source:      "Official",
			Approved:    true,
		},
		{
			Title:       "Accenture Cloud Academy",
			Company:     "Accenture",
			Type:        "Training + Internship",
			Region:      "India, USA",
			Deadline:    "2026-03-31",
			URL:         "https://www.accenture.com/careers/",
			Description: "Cloud technology training and internship",
			Salary:      "Stipend + Offer",
			Duration:    "3-6 months",
			Online:      true,
			Source:      "Official",
			Approved:    true,
		},
		{
			Title:       "JPMorgan Chase Code for Good",
			Company:     "JPMorgan Chase",
			Type:        "Hackathon + Internship",
			Region:      "USA, Europe, Asia",
			Deadline:    "2026-03-15",
			URL:         "https://www.jpmorganchase.com/careers",
			Description: "Tech hackathon for social impact + job opportunities",
			Salary:      "Award + Internship",
			Duration:    "Variable",
			Online:      true,
			Source:      "Official",
			Approved:    true,
		},
		{
			Title:       "Amazon Leadership Development Internship",
			Company:     "Amazon",
			Type:        "Internship",
			Region:      "USA, Europe, India",
			Deadline:    "2026-04-10",
			URL:         "https://www.amazon.jobs/internships",
			Description: "Tech and business internship with leadership focus",
			Salary:      "$28-38/hour",
			Duration:    "12 weeks",
			Source:      "Official",
			Approved:    true,
		},
		{
			Title:       "IBM Accelerate Program",
			Company:     "IBM",
			Type:        "Early Talent",
			Region:      "USA, Europe",
			Deadline:    "2026-03-10",
			URL:         "https://www.ibm.com/careers/",
			Description: "Early talent program with mentorship and skills training",
			Salary:      "Stipend",
			Duration:    "8 weeks",
			Online:      true,
			Source:      "Official",
			Approved:    true,
		},
		{
			Title:       "NVIDIA Deep Learning Institute Internship",
			Company:     "NVIDIA",
			Type:        "Research Internship",
			Region:      "USA, Taiwan",
			Deadline:    "2026-03-28",
			URL:         "https://www.nvidia.com/en-us/about-nvidia/careers/",
			Description: "AI research internship with GPU computing focus",
			Salary:      "$32-45/hour",
			Duration:    "12 weeks",
			Source:      "Official",
			Approved:    true,
		},
		{
			Title:       "UNICEF Innovation Internship",
			Company:     "UNICEF",
			Type:        "Nonprofit Internship",
			Region:      "Global",
			Deadline:    "2026-03-14",
			URL:         "https://www.unicef.org/careers",
			Description: "Innovation and digital development internships",
			Salary:      "Stipend",
			Duration:    "12 weeks",
			Online:      true,
			Source:      "Official",
			Approved:    true,
		},
		{
			Title:       "NASA Pathways Internship",
			Company:     "NASA",
			Type:        "Government Internship",
			Region:      "USA",
			Deadline:    "2026-02-26",
			URL:         "https://www.nasa.gov/careers/",
			Description: "STEM internships with NASA centers",
			Salary:      "$22-30/hour",
			Duration:    "10-16 weeks",
			Source:      "Official",
			Approved:    true,
		},
	}
}
