package generator

import (
	"fmt"
	"strings"

	"github.com/nextlevelsbs/sopbuilder/pkg/compliance"
)

const systemPrompt = "You are an expert in creating comprehensive, compliant SOPs."

var basePrompts = map[string]string{
	"Introduction":            "Create a comprehensive introduction section for this SOP.",
	"Procedures":              "Create detailed step-by-step procedures for this SOP.",
	"Compliance Requirements": "Create compliance requirements section for this SOP.",
	"Documentation":           "Create documentation requirements section for this SOP.",
	"Privacy":                 "Create a privacy and data protection section for this SOP.",
	"Security":                "Create a security controls section for this SOP.",
}

func sectionPrompt(section string, req Request, data compliance.IndustryData) string {
	industry := req.Industry

	if industry == "" {
		industry = "General"
	}

	base := basePrompts[section]

	if base == "" {
		base = fmt.Sprintf("Create a detailed %s section for this SOP.", strings.ToLower(section))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed SOP section for %s.\n\n", section)
	fmt.Fprintf(&b, "Industry: %s\n", industry)
	fmt.Fprintf(&b, "Template Type: %s\n", req.TemplateType)
	fmt.Fprintf(&b, "Compliance Requirements: %s\n", strings.Join(data.Standards, ", "))

	if req.CompanyName != "" {
		fmt.Fprintf(&b, "Company: %s\n", req.CompanyName)
	}

	if req.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", req.Location)
	}

	if len(req.Options) > 0 {
		fmt.Fprintf(&b, "Selected Options: %s\n", strings.Join(req.Options, ", "))
	}

	b.WriteString("\n" + base + "\n\n")

	b.WriteString(`Include:
- Step-by-step procedures
- Regulatory citations where applicable
- Best practices and tips
- Common mistakes to avoid
- Required documentation
- Quality checkpoints

Format the response in markdown with clear headers and bullet points.
Ensure the content is comprehensive and actionable.`)

	return b.String()
}
