package compliance

func defaultData() map[string]IndustryData {
	return map[string]IndustryData{
		"restaurant": {
			Standards: []string{"FDA Food Code", "HACCP", "ServSafe", "OSHA"},

			RegulatoryLinks: map[string]string{
				"FDA":   "https://www.fda.gov/food/fda-food-code",
				"HACCP": "https://www.fda.gov/food/hazard-analysis-critical-control-point-haccp",
				"OSHA":  "https://www.osha.gov/restaurants",
			},

			Requirements: map[string][]string{
				"FDA_FOOD_CODE": {
					"Hand washing procedures (2-301.11)",
					"Temperature monitoring (3-501.16)",
					"Allergen management (2-301.11)",
					"Cleaning and sanitizing (4-501.11)",
				},
				"HACCP": {
					"Hazard analysis",
					"Critical control points",
					"Critical limits",
					"Monitoring procedures",
					"Corrective actions",
					"Verification",
					"Record keeping",
				},
			},

			Sections: []Section{
				{Name: "Introduction", Order: 1, Required: true},
				{Name: "Procedures", Order: 2, Required: true},
				{Name: "Compliance Requirements", Order: 3, Required: true},
				{Name: "Documentation", Order: 4, Required: true},
			},
		},
		"healthcare": {
			Standards: []string{"HIPAA", "CDC Guidelines", "Joint Commission", "OSHA"},

			RegulatoryLinks: map[string]string{
				"HIPAA":            "https://www.hhs.gov/hipaa/",
				"CDC":              "https://www.cdc.gov/infectioncontrol/",
				"Joint Commission": "https://www.jointcommission.org/",
			},

			Requirements: map[string][]string{
				"HIPAA": {
					"Privacy procedures (164.502)",
					"Security safeguards (164.306)",
					"Breach notification (164.400)",
					"Patient access rights (164.524)",
				},
				"CDC": {
					"Standard precautions",
					"Transmission-based precautions",
					"Hand hygiene",
					"Personal protective equipment",
				},
			},

			Sections: []Section{
				{Name: "Introduction", Order: 1, Required: true},
				{Name: "Procedures", Order: 2, Required: true},
				{Name: "Privacy", Order: 3, Required: true},
				{Name: "Compliance Requirements", Order: 4, Required: true},
			},
		},
		"technology": {
			Standards: []string{"SOX", "GDPR", "ISO 27001", "NIST"},

			RegulatoryLinks: map[string]string{
				"SOX":      "https://www.sec.gov/about/laws/soa2002.pdf",
				"GDPR":     "https://gdpr.eu/",
				"ISO27001": "https://www.iso.org/isoiec-27001-information-security.html",
				"NIST":     "https://www.nist.gov/cyberframework",
			},

			Requirements: map[string][]string{
				"SOX": {
					"Internal controls (Section 404)",
					"Financial reporting accuracy",
					"Audit trail requirements",
					"Change management",
				},
				"GDPR": {
					"Data protection by design (Article 25)",
					"Consent management (Article 7)",
					"Data breach notification (Article 33)",
					"Data subject rights (Chapter 3)",
				},
			},

			Sections: []Section{
				{Name: "Introduction", Order: 1, Required: true},
				{Name: "Procedures", Order: 2, Required: true},
				{Name: "Security", Order: 3, Required: true},
				{Name: "Compliance Requirements", Order: 4, Required: true},
			},
		},
	}
}
