package rubric

// Default returns the pre-startup package rubric: 4 categories, 7 sections,
// 100 points total. Point values and minimum thresholds follow the official
// contest scoring sheet; treat them as configuration, not business fact.
func Default() *Rubric {
	return &Rubric{
		Name: "pre-startup-package",
		Categories: []Category{
			{
				Name:            "Problem Recognition",
				MaxScore:        30,
				MinimumRequired: 18,
				Sections:        []string{"1.1 Item Development Motivation", "1.2 Item Purpose and Necessity"},
			},
			{
				Name:            "Solution Feasibility",
				MaxScore:        30,
				MinimumRequired: 18,
				Sections:        []string{"2.1 Commercialization Strategy", "2.2 Market Analysis and Competitiveness"},
			},
			{
				Name:            "Growth Strategy",
				MaxScore:        20,
				MinimumRequired: 12,
				Sections:        []string{"3.1 Funding Requirements and Sourcing", "3.2 Market Entry and Performance"},
			},
			{
				Name:            "Team Composition",
				MaxScore:        20,
				MinimumRequired: 12,
				Sections:        []string{"4.1 Founder and Team Capabilities"},
			},
		},
		Sections: []Section{
			{
				Name:     "1.1 Item Development Motivation",
				Category: "Problem Recognition",
				MaxScore: 15,
				Pillars: []Pillar{
					{
						Name:        "Authenticity and Specificity of Problem Discovery",
						Weight:      5,
						Description: "The motivation stems from concrete personal experience or observation, is described specifically, and connects to the founder's insight.",
						Questions: []string{
							"What specific experience or observation led to discovering the problem?",
							"Is the discovery tied to the founder's own insight rather than generic market talk?",
						},
					},
					{
						Name:        "Objective Validation and Universality",
						Weight:      5,
						Description: "The problem is validated beyond personal inconvenience through market research, data, or stakeholder input showing universality and severity.",
						Questions: []string{
							"What data or third-party evidence confirms the problem affects a broad group?",
							"How severe is the problem for the affected customers?",
						},
					},
					{
						Name:        "Urgency and Business Value of the Solution",
						Weight:      5,
						Description: "The urgency of solving the problem and the business value created are argued logically, with clear differentiation from prior attempts.",
						Questions: []string{
							"Why must this problem be solved now?",
							"How does the plan differ from existing attempts to solve it?",
						},
					},
				},
			},
			{
				Name:     "1.2 Item Purpose and Necessity",
				Category: "Problem Recognition",
				MaxScore: 15,
				Pillars: []Pillar{
					{
						Name:        "Core Problem Definition and Customer Pain Points",
						Weight:      5,
						Description: "The core problem is clearly defined, with deep understanding of the target customers' pain points and the limits of current alternatives.",
						Questions: []string{
							"Who is the target customer and what exactly is their pain point?",
							"Why do current alternatives fall short?",
						},
					},
					{
						Name:        "Market Need and Value Proposition",
						Weight:      5,
						Description: "Market trends and data back the necessity of the item, and its social, economic, or environmental impact is stated concretely.",
						Questions: []string{
							"Which market trends or figures support the need?",
							"What long-term value does the item create?",
						},
					},
					{
						Name:        "Differentiated Solution and Vision",
						Weight:      5,
						Description: "The core differentiation against competing products is clear and a consistent founder vision is presented.",
						Questions: []string{
							"What is the single clearest differentiator versus competitors?",
							"Is the stated vision consistent with the problem being solved?",
						},
					},
				},
			},
			{
				Name:     "2.1 Commercialization Strategy",
				Category: "Solution Feasibility",
				MaxScore: 15,
				Pillars: []Pillar{
					{
						Name:        "Technical Feasibility and Implementation Plan",
						Weight:      5,
						Description: "Core technical elements are defined, the implementation approach and team capability are concrete, and the development plan fits the commercialization strategy.",
						Questions: []string{
							"What are the core technical components and how will they be built?",
							"Does the development schedule match the commercialization plan?",
						},
					},
					{
						Name:        "Launch and User Validation Strategy",
						Weight:      5,
						Description: "Concrete usage scenarios exist, with an MVP/prototype plan and user validation steps that account for customer friction.",
						Questions: []string{
							"What is the MVP and how will users validate it?",
							"Which customer friction points were considered?",
						},
					},
					{
						Name:        "Commercialization Goals and Management",
						Weight:      5,
						Description: "Achievable milestones within the contest period are stated, plus post-development testing, maintenance, and scale-up planning.",
						Questions: []string{
							"What measurable goals are promised within the period?",
							"What happens after initial development completes?",
						},
					},
				},
			},
			{
				Name:     "2.2 Market Analysis and Competitiveness",
				Category: "Solution Feasibility",
				MaxScore: 15,
				Pillars: []Pillar{
					{
						Name:        "Competitive Landscape and Differentiation",
						Weight:      5,
						Description: "Key competitors' strengths and weaknesses are analyzed in depth and a concrete competitive advantage is derived from them.",
						Questions: []string{
							"Who are the main competitors and what are their weaknesses?",
							"What advantage follows specifically from that analysis?",
						},
					},
					{
						Name:        "Market Penetration and Expansion",
						Weight:      5,
						Description: "A clear strategy lowers initial adoption barriers, with credible expansion into adjacent or premium markets and a revenue model.",
						Questions: []string{
							"How will the first customers be won?",
							"Which adjacent markets follow and on what revenue model?",
						},
					},
					{
						Name:        "Technology and Market Sustainability",
						Weight:      5,
						Description: "The item's technology life cycle and market durability are analyzed, with strategies to keep a long-term edge.",
						Questions: []string{
							"How long does the technical advantage last?",
							"What sustains the position once competitors respond?",
						},
					},
				},
			},
			{
				Name:     "3.1 Funding Requirements and Sourcing",
				Category: "Growth Strategy",
				MaxScore: 10,
				Pillars: []Pillar{
					{
						Name:        "Revenue Model and Cost Structure",
						Weight:      3,
						Description: "The main revenue model is defined and the dominant cost items are recognized with a management approach.",
						Questions: []string{
							"What is the primary revenue model?",
							"Which cost items dominate and how are they controlled?",
						},
					},
					{
						Name:        "Concrete Funding Plan",
						Weight:      4,
						Description: "Initial funding needs are itemized and external sourcing plans are realistic in size and timing.",
						Questions: []string{
							"How much funding is needed, broken down by item?",
							"Where does external funding come from and when?",
						},
					},
					{
						Name:        "Financial Risk Management",
						Weight:      3,
						Description: "Financial risk factors are identified with concrete responses to revenue shortfall or failed fundraising.",
						Questions: []string{
							"What happens if revenue misses plan?",
							"What is the fallback if fundraising fails?",
						},
					},
				},
			},
			{
				Name:     "3.2 Market Entry and Performance",
				Category: "Growth Strategy",
				MaxScore: 10,
				Pillars: []Pillar{
					{
						Name:        "Revenue Model Specificity and Pricing",
						Weight:      4,
						Description: "Revenue streams, expected revenue mix, pricing policy, and break-even analysis are concrete.",
						Questions: []string{
							"What is the pricing policy per revenue stream?",
							"Where is the break-even point?",
						},
					},
					{
						Name:        "Market Entry and Customer Retention",
						Weight:      3,
						Description: "Initial customer acquisition marketing is planned with acquisition cost, repurchase/retention targets, and tactics to hit them.",
						Questions: []string{
							"What is the customer acquisition plan and its cost?",
							"What retention targets are set and how are they reached?",
						},
					},
					{
						Name:        "Business Risk Management",
						Weight:      3,
						Description: "Major execution risks are identified with per-risk response scenarios, priorities, and a monitoring scheme.",
						Questions: []string{
							"Which risks are most likely to derail the plan?",
							"How are risks monitored and responded to?",
						},
					},
				},
			},
			{
				Name:     "4.1 Founder and Team Capabilities",
				Category: "Team Composition",
				MaxScore: 20,
				Pillars: []Pillar{
					{
						Name:        "Individual Capabilities and Role Allocation",
						Weight:      7,
						Description: "Each member's core competence and responsibilities are concrete and non-overlapping, backed by relevant project experience.",
						Questions: []string{
							"What has each member shipped that is relevant to this plan?",
							"Are responsibilities distributed without gaps or overlap?",
						},
					},
					{
						Name:        "Team Operations and Communication",
						Weight:      6,
						Description: "Decision-making, communication channels, and information sharing are organized, with motivation and conflict-resolution practices.",
						Questions: []string{
							"How are decisions made and disagreements resolved?",
							"What keeps the team aligned day to day?",
						},
					},
					{
						Name:        "External Resources and Team Risk",
						Weight:      7,
						Description: "External experts, advisors, and partners fill capability gaps, and key-person or information-leak risks have real mitigations.",
						Questions: []string{
							"Which gaps are covered by external partners or advisors?",
							"What happens if a key member leaves?",
						},
					},
				},
			},
		},
	}
}
