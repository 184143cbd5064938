package generator

import (
	"fmt"
	"strings"
)

var sectionKeywords = map[string][]string{
	"Introduction":            {"purpose", "scope", "overview"},
	"Procedures":              {"step", "procedure", "process"},
	"Compliance Requirements": {"requirement", "regulation", "standard"},
	"Documentation":           {"document", "record", "form"},
}

// validContent checks generated text for minimum length, section keywords,
// and markdown structure before it is accepted.
func validContent(section, content string) bool {
	if len(strings.TrimSpace(content)) < 100 {
		return false
	}

	lower := strings.ToLower(content)

	if keywords, ok := sectionKeywords[section]; ok {
		found := false

		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	for _, marker := range []string{"#", "*", "-", "1."} {
		if strings.Contains(content, marker) {
			return true
		}
	}

	return false
}

// fallbackContent substitutes for a section when generation fails or the
// result does not validate.
func fallbackContent(section, templateType string) string {
	return fmt.Sprintf(`# %s

## Overview
This section covers the %s requirements for %s operations.

## Key Points
- Follow established procedures
- Maintain quality standards
- Ensure compliance with regulations
- Document all activities

## Next Steps
- Review detailed procedures
- Complete required training
- Implement quality controls
- Monitor compliance

*Note: This is fallback content. Please review and customize based on specific requirements.*
`, section, strings.ToLower(section), templateType)
}

// hardcodedContent is served when no LLM provider is configured at all
func hardcodedContent(section, templateType string) string {
	switch section {
	case "Introduction":
		return fmt.Sprintf(`# Introduction

## Purpose
This Standard Operating Procedure (SOP) provides comprehensive guidelines for %s operations to ensure consistency, quality, and compliance with industry standards.

## Scope
This SOP applies to all staff members involved in %s operations and covers all related processes and procedures.

## Overview
- Establishes clear operational procedures
- Ensures regulatory compliance
- Maintains quality standards
- Provides training guidelines
`, templateType, templateType)

	case "Procedures":
		return `# Standard Operating Procedures

## Core Procedures

### 1. Preparation Phase
- Review all requirements and documentation
- Ensure all necessary resources are available
- Verify compliance with current regulations
- Complete pre-operation checklist

### 2. Execution Phase
- Follow established protocols step-by-step
- Monitor quality at each checkpoint
- Document all activities and observations
- Address any deviations immediately

### 3. Completion Phase
- Conduct final quality review
- Complete all required documentation
- Store records according to retention policy
- Prepare for next operation cycle

## Quality Checkpoints
- Initial setup verification
- Mid-process quality check
- Final output validation
- Documentation review
`

	case "Compliance Requirements":
		return `# Compliance Requirements

## Regulatory Standards
- Industry-specific regulations must be followed
- Regular compliance audits are required
- Staff training on compliance is mandatory
- Documentation must meet regulatory standards

## Quality Standards
- ISO 9001 quality management principles
- Industry best practices implementation
- Continuous improvement processes
- Customer satisfaction monitoring

## Documentation Requirements
- All procedures must be documented
- Records must be maintained for required periods
- Regular review and updates are necessary
- Access controls must be implemented
`

	case "Documentation":
		return `# Documentation Requirements

## Required Documents
- Standard Operating Procedures
- Training records and certifications
- Quality control checklists
- Incident reports and corrective actions
- Audit reports and compliance records

## Record Keeping
- All records must be accurate and complete
- Digital and physical storage requirements
- Retention periods must be observed
- Regular backup and recovery procedures

## Review and Updates
- Annual review of all documentation
- Updates based on regulatory changes
- Version control and change management
- Staff notification of updates
`

	default:
		return fmt.Sprintf("# %s\n\nContent for %s section.\n", section, section)
	}
}
