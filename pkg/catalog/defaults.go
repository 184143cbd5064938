package catalog

func defaultTemplates() []Template {
	return []Template{
		{
			ID:          "restaurant-opening",
			Title:       "Restaurant Opening Procedures",
			Description: "Complete checklist for daily restaurant opening procedures",

			Industry: "restaurant",
			Icon:     "🍽️",

			EstimatedTime: "2-3 minutes",
			Compliance:    []string{"FDA Food Code", "HACCP", "ServSafe"},

			CustomOptions: []Option{
				{ID: "food-safety", Label: "Include Food Safety Protocols", Default: true},
				{ID: "haccp", Label: "Include HACCP Procedures", Default: true},
				{ID: "employee-training", Label: "Include Employee Training"},
				{ID: "cleaning-procedures", Label: "Include Cleaning Procedures", Default: true},
				{ID: "inventory-management", Label: "Include Inventory Management"},
			},

			ContentSections: []string{"introduction", "procedures", "safety", "compliance"},
			RegulatoryRequirements: map[string]string{
				"fda_food_code": "2022 FDA Food Code Section 2-301.11",
				"haccp":         "HACCP Principle 1-7 Implementation",
			},
		},
		{
			ID:          "restaurant-closing",
			Title:       "Restaurant Closing Procedures",
			Description: "End-of-day safety and security protocols",

			Industry: "restaurant",
			Icon:     "🔒",

			EstimatedTime: "3-4 minutes",
			Compliance:    []string{"FDA Food Code", "OSHA", "Local Health Dept"},

			CustomOptions: []Option{
				{ID: "security-checklist", Label: "Include Security Checklist", Default: true},
				{ID: "equipment-shutdown", Label: "Include Equipment Shutdown", Default: true},
				{ID: "cash-handling", Label: "Include Cash Handling Procedures"},
				{ID: "cleaning-schedule", Label: "Include Deep Cleaning Schedule", Default: true},
			},

			ContentSections: []string{"introduction", "procedures", "security", "compliance"},
			RegulatoryRequirements: map[string]string{
				"fda_food_code": "2022 FDA Food Code Section 4-501.11",
				"osha":          "OSHA General Duty Clause Section 5(a)(1)",
			},
		},
		{
			ID:          "healthcare-patient-care",
			Title:       "Patient Care Protocols",
			Description: "HIPAA-compliant patient care procedures",

			Industry: "healthcare",
			Icon:     "🏥",

			EstimatedTime: "4-5 minutes",
			Compliance:    []string{"HIPAA", "CDC Guidelines", "Joint Commission"},

			CustomOptions: []Option{
				{ID: "hipaa-privacy", Label: "Include HIPAA Privacy Procedures", Default: true},
				{ID: "infection-control", Label: "Include Infection Control", Default: true},
				{ID: "emergency-procedures", Label: "Include Emergency Procedures"},
				{ID: "documentation", Label: "Include Documentation Standards", Default: true},
			},

			ContentSections: []string{"introduction", "procedures", "privacy", "compliance"},
			RegulatoryRequirements: map[string]string{
				"hipaa": "HIPAA Privacy Rule 45 CFR 164.502",
				"cdc":   "CDC Infection Prevention Guidelines",
			},
		},
		{
			ID:          "healthcare-patient-intake",
			Title:       "Patient Intake Procedures",
			Description: "Comprehensive patient intake and registration procedures",

			Industry: "healthcare",
			Icon:     "📋",

			EstimatedTime: "3-4 minutes",
			Compliance:    []string{"HIPAA", "Joint Commission", "CMS Guidelines"},

			CustomOptions: []Option{
				{ID: "hipaa-privacy", Label: "Include HIPAA Privacy Procedures", Default: true},
				{ID: "insurance-verification", Label: "Include Insurance Verification", Default: true},
				{ID: "medical-history", Label: "Include Medical History Collection", Default: true},
				{ID: "consent-forms", Label: "Include Consent Form Procedures", Default: true},
				{ID: "emergency-contacts", Label: "Include Emergency Contact Collection"},
			},

			ContentSections: []string{"introduction", "intake_procedures", "documentation", "compliance"},
			RegulatoryRequirements: map[string]string{
				"hipaa":            "HIPAA Privacy Rule 45 CFR 164.502",
				"joint_commission": "Joint Commission Patient Safety Standards",
				"cms":              "CMS Conditions of Participation",
			},
		},
		{
			ID:          "it-onboarding",
			Title:       "IT Employee Onboarding",
			Description: "New employee technology setup and security procedures",

			Industry: "technology",
			Icon:     "💻",

			EstimatedTime: "5-6 minutes",
			Compliance:    []string{"SOX", "GDPR", "Company Security Policy"},

			CustomOptions: []Option{
				{ID: "security-training", Label: "Include Security Training", Default: true},
				{ID: "equipment-setup", Label: "Include Equipment Setup", Default: true},
				{ID: "access-management", Label: "Include Access Management", Default: true},
				{ID: "compliance-training", Label: "Include Compliance Training"},
			},

			ContentSections: []string{"introduction", "procedures", "security", "compliance"},
			RegulatoryRequirements: map[string]string{
				"sox":  "Sarbanes-Oxley Act Section 404",
				"gdpr": "GDPR Article 32 Security Requirements",
			},
		},
	}
}

func defaultIndustries() []Industry {
	return []Industry{
		{
			ID:   "restaurant",
			Name: "Restaurant & Food Service",

			TemplateCount:       2,
			ComplianceStandards: []string{"FDA Food Code", "HACCP", "ServSafe", "OSHA"},
		},
		{
			ID:   "healthcare",
			Name: "Healthcare & Medical",

			TemplateCount:       2,
			ComplianceStandards: []string{"HIPAA", "CDC Guidelines", "Joint Commission", "CMS", "OSHA"},
		},
		{
			ID:   "technology",
			Name: "Information Technology",

			TemplateCount:       1,
			ComplianceStandards: []string{"SOX", "GDPR", "ISO 27001", "NIST"},
		},
	}
}
