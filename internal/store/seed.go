package store

import "github.com/jonathan/resume-studio/internal/types"

// defaultVersionName is the name of the version every new résumé starts with.
const defaultVersionName = "V1.0"

// defaultResumeTitle is used when AddResume is called without a title.
const defaultResumeTitle = "New Resume"

// sampleDocument is the pre-populated document new résumés are seeded with. Each call
// draws fresh ids from newID.
func sampleDocument(newID func() string) types.ResumeDocument {
	return types.ResumeDocument{
		Basics: types.Basics{
			Name:     "Dr. Jonathan J. Sterling",
			Label:    "Principal Software Architect & Engineering Leader",
			Email:    "j.sterling@enterprise-elite.pro",
			Phone:    "+1 (555) 789-1011",
			URL:      "https://sterling-architect.io",
			Summary:  "Strategic technology leader with over 12 years of experience in architecting high-availability distributed systems. Proven track record of leading cross-functional engineering organizations of 50+ members. Expert in cloud-native transformations, high-frequency trading infrastructure, and scaling series B-to-D startups. Passionate about developer experience and operational excellence.",
			Location: "Austin, TX",
			Profiles: []types.Profile{
				{Network: "LinkedIn", Username: "jonathan-sterling", URL: "https://linkedin.com/in/jonathan-sterling"},
				{Network: "GitHub", Username: "jsterl-architect", URL: "https://github.com/jsterl-architect"},
			},
		},
		Sections: []types.Section{
			{
				ID: newID(), Type: types.SectionExperience, Title: "Professional History", IsVisible: true,
				Items: []types.Item{{
					ID:        newID(),
					Company:   "Quantum Systems Group",
					Role:      "Principal Solutions Architect",
					Location:  "San Francisco, CA",
					StartDate: "Jan 2020",
					EndDate:   "Present",
					Current:   true,
					Bullets: []string{
						"Architected a globally distributed data processing engine using Go and Kafka, reducing latency by 45% for 10M+ daily active users.",
						"Spearheaded the migration of legacy monolith to microservices on Kubernetes, resulting in a 30% reduction in cloud infrastructure costs.",
						"Mentored 12+ senior engineers and established the company-wide Technical Design Review (TDR) process.",
						"Orchestrated a disaster recovery protocol that ensured 99.999% uptime during the 2022 major region outage.",
					},
				}},
			},
			{
				ID: newID(), Type: types.SectionEducation, Title: "Academic Foundation", IsVisible: true,
				Items: []types.Item{{
					ID:          newID(),
					Institution: "Massachusetts Institute of Technology (MIT)",
					Degree:      "Ph.D. in Computer Science",
					Field:       "Distributed Systems & AI",
					Location:    "Cambridge, MA",
					EndDate:     "May 2016",
				}},
			},
			{
				ID: newID(), Type: types.SectionSkills, Title: "Technical Arsenal", IsVisible: true,
				Items: []types.Item{{
					ID:     newID(),
					Name:   "Core Architecture",
					Skills: []string{"System Design", "Microservices", "Distributed Systems", "Cloud Native"},
				}},
			},
		},
	}
}
