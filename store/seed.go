// ABOUTME: Static sample dataset for the demo store
// ABOUTME: Loaded on the first request after process start
package store

import "github.com/udaraw/crm-api/models"

// SeedDefaults loads the full sample dataset into every collection.
func (s *Store) SeedDefaults() {
	s.SeedContacts(SeedContacts())
	s.SeedCompanies(SeedCompanies())
	s.SeedDeals(SeedDeals())
	s.SeedActivities(SeedActivities())
	s.SeedSettings(SeedSettings())
}

func ptr(s string) *string { return &s }

// SeedContacts returns a fresh copy of the sample contacts.
func SeedContacts() []models.Contact {
	return []models.Contact{
		{ID: "c1", FirstName: "Sarah", LastName: "Chen", Email: "sarah.chen@techcorp.io", Phone: "+1 (415) 555-0123", Company: "TechCorp Industries", CompanyID: "comp1", Status: "active", JobTitle: "VP of Engineering", LastActivity: "2026-01-24", CreatedAt: "2025-06-15"},
		{ID: "c2", FirstName: "Marcus", LastName: "Johnson", Email: "m.johnson@innovate.com", Phone: "+1 (212) 555-0456", Company: "Innovate Solutions", CompanyID: "comp2", Status: "lead", JobTitle: "Director of Operations", LastActivity: "2026-01-22", CreatedAt: "2025-09-03"},
		{ID: "c3", FirstName: "Emily", LastName: "Rodriguez", Email: "emily.r@globalfin.co", Phone: "+1 (312) 555-0789", Company: "Global Finance Group", CompanyID: "comp3", Status: "active", JobTitle: "Chief Financial Officer", LastActivity: "2026-01-25", CreatedAt: "2025-03-22"},
		{ID: "c4", FirstName: "James", LastName: "Williams", Email: "jwilliams@startup.io", Phone: "+1 (650) 555-0321", Company: "StartUp Ventures", CompanyID: "comp4", Status: "inactive", JobTitle: "Founder & CEO", LastActivity: "2025-11-15", CreatedAt: "2025-01-10"},
		{ID: "c5", FirstName: "Aisha", LastName: "Patel", Email: "aisha.patel@healthtech.com", Phone: "+1 (617) 555-0654", Company: "HealthTech Solutions", CompanyID: "comp5", Status: "active", JobTitle: "Product Manager", LastActivity: "2026-01-23", CreatedAt: "2025-07-08"},
		{ID: "c6", FirstName: "Robert", LastName: "Kim", Email: "robert.kim@dataflow.net", Phone: "+1 (408) 555-0987", Company: "DataFlow Analytics", CompanyID: "comp6", Status: "lead", JobTitle: "Head of Data Science", LastActivity: "2026-01-20", CreatedAt: "2025-10-12"},
		{ID: "c7", FirstName: "Lisa", LastName: "Thompson", Email: "lisa.t@mediaco.com", Phone: "+1 (323) 555-0147", Company: "MediaCo Entertainment", CompanyID: "comp7", Status: "active", JobTitle: "Marketing Director", LastActivity: "2026-01-21", CreatedAt: "2025-04-30"},
		{ID: "c8", FirstName: "David", LastName: "Martinez", Email: "d.martinez@cloudserve.io", Phone: "+1 (206) 555-0258", Company: "CloudServe Inc", CompanyID: "comp8", Status: "inactive", JobTitle: "Solutions Architect", LastActivity: "2025-12-05", CreatedAt: "2025-02-18"},
		{ID: "c9", FirstName: "Jennifer", LastName: "Lee", Email: "jlee@retailplus.com", Phone: "+1 (469) 555-0369", Company: "RetailPlus Corp", CompanyID: "comp9", Status: "active", JobTitle: "Head of Procurement", LastActivity: "2026-01-26", CreatedAt: "2025-05-14"},
		{ID: "c10", FirstName: "Michael", LastName: "Brown", Email: "mbrown@legaledge.law", Phone: "+1 (202) 555-0741", Company: "LegalEdge Partners", CompanyID: "comp10", Status: "lead", JobTitle: "Managing Partner", LastActivity: "2026-01-19", CreatedAt: "2025-11-22"},
	}
}

// SeedCompanies returns a fresh copy of the sample companies, including
// two parent/child pairs.
func SeedCompanies() []models.Company {
	return []models.Company{
		{ID: "comp-001", Name: "Acme Corporation", Industry: "Technology", Size: "500+", Website: "https://acme.example.com", Address: "123 Innovation Drive, San Francisco, CA 94105", ParentID: nil, ContactCount: 15, TotalDealValue: 450000, CreatedAt: "2024-01-15T10:00:00Z"},
		{ID: "comp-002", Name: "Acme Labs", Industry: "Technology", Size: "50-100", Website: "https://labs.acme.example.com", Address: "125 Innovation Drive, San Francisco, CA 94105", ParentID: ptr("comp-001"), ContactCount: 5, TotalDealValue: 75000, CreatedAt: "2024-02-10T14:30:00Z"},
		{ID: "comp-003", Name: "Global Finance Partners", Industry: "Finance", Size: "100-500", Website: "https://globalfinance.example.com", Address: "500 Wall Street, New York, NY 10005", ParentID: nil, ContactCount: 8, TotalDealValue: 320000, CreatedAt: "2024-01-20T09:15:00Z"},
		{ID: "comp-004", Name: "HealthFirst Medical", Industry: "Healthcare", Size: "500+", Website: "https://healthfirst.example.com", Address: "200 Medical Center Blvd, Boston, MA 02115", ParentID: nil, ContactCount: 12, TotalDealValue: 580000, CreatedAt: "2024-02-01T11:00:00Z"},
		{ID: "comp-005", Name: "HealthFirst Labs", Industry: "Healthcare", Size: "10-50", Website: "https://labs.healthfirst.example.com", Address: "202 Medical Center Blvd, Boston, MA 02115", ParentID: ptr("comp-004"), ContactCount: 3, TotalDealValue: 45000, CreatedAt: "2024-03-05T16:45:00Z"},
		{ID: "comp-006", Name: "Precision Manufacturing Inc", Industry: "Manufacturing", Size: "100-500", Website: "https://precisionmfg.example.com", Address: "800 Industrial Parkway, Detroit, MI 48201", ParentID: nil, ContactCount: 6, TotalDealValue: 210000, CreatedAt: "2024-01-28T08:30:00Z"},
		{ID: "comp-007", Name: "Retail Solutions Group", Industry: "Retail", Size: "50-100", Website: "https://retailsolutions.example.com", Address: "1200 Commerce Street, Chicago, IL 60601", ParentID: nil, ContactCount: 9, TotalDealValue: 165000, CreatedAt: "2024-02-15T13:00:00Z"},
		{ID: "comp-008", Name: "EduTech Learning", Industry: "Education", Size: "10-50", Website: "https://edutech.example.com", Address: "50 Campus Drive, Austin, TX 78701", ParentID: nil, ContactCount: 4, TotalDealValue: 85000, CreatedAt: "2024-03-01T10:30:00Z"},
	}
}

// SeedDeals returns a fresh copy of the sample deals with their stage
// histories.
func SeedDeals() []models.Deal {
	return []models.Deal{
		{
			ID: "deal-001", Name: "Enterprise CRM Implementation", CompanyID: "comp-001", CompanyName: "Acme Corporation",
			ContactID: "cont-001", ContactName: "John Smith", Value: 125000, Stage: "negotiation", Probability: 75,
			ExpectedCloseDate: "2026-02-15", CreatedAt: "2025-11-10",
			StageHistory: []models.StageHistory{
				{Stage: "lead", Date: "2025-11-10"},
				{Stage: "qualified", Date: "2025-11-18"},
				{Stage: "proposal", Date: "2025-12-05"},
				{Stage: "negotiation", Date: "2026-01-08"},
			},
		},
		{
			ID: "deal-002", Name: "Cloud Migration Project", CompanyID: "comp-002", CompanyName: "TechStart Inc",
			ContactID: "cont-002", ContactName: "Sarah Johnson", Value: 85000, Stage: "proposal", Probability: 50,
			ExpectedCloseDate: "2026-03-01", CreatedAt: "2025-12-01",
			StageHistory: []models.StageHistory{
				{Stage: "lead", Date: "2025-12-01"},
				{Stage: "qualified", Date: "2025-12-15"},
				{Stage: "proposal", Date: "2026-01-05"},
			},
		},
		{
			ID: "deal-003", Name: "Annual Support Contract", CompanyID: "comp-003", CompanyName: "Global Industries",
			ContactID: "cont-003", ContactName: "Michael Chen", Value: 45000, Stage: "closed-won", Probability: 100,
			ExpectedCloseDate: "2026-01-10", CreatedAt: "2025-10-20",
			StageHistory: []models.StageHistory{
				{Stage: "lead", Date: "2025-10-20"},
				{Stage: "qualified", Date: "2025-11-01"},
				{Stage: "proposal", Date: "2025-11-15"},
				{Stage: "negotiation", Date: "2025-12-10"},
				{Stage: "closed-won", Date: "2026-01-10"},
			},
		},
		{
			ID: "deal-004", Name: "Marketing Automation Suite", CompanyID: "comp-004", CompanyName: "Creative Solutions Ltd",
			ContactID: "cont-004", ContactName: "Emily Davis", Value: 67500, Stage: "qualified", Probability: 30,
			ExpectedCloseDate: "2026-04-15", CreatedAt: "2026-01-05",
			StageHistory: []models.StageHistory{
				{Stage: "lead", Date: "2026-01-05"},
				{Stage: "qualified", Date: "2026-01-20"},
			},
		},
		{
			ID: "deal-005", Name: "Data Analytics Platform", CompanyID: "comp-005", CompanyName: "DataDriven Co",
			ContactID: "cont-005", ContactName: "Robert Wilson", Value: 150000, Stage: "lead", Probability: 10,
			ExpectedCloseDate: "2026-06-01", CreatedAt: "2026-01-15",
			StageHistory: []models.StageHistory{
				{Stage: "lead", Date: "2026-01-15"},
			},
		},
		{
			ID: "deal-006", Name: "Security Audit Services", CompanyID: "comp-006", CompanyName: "SecureNet Systems",
			ContactID: "cont-006", ContactName: "Amanda Martinez", Value: 32000, Stage: "closed-lost", Probability: 0,
			ExpectedCloseDate: "2026-01-05", CreatedAt: "2025-09-15",
			StageHistory: []models.StageHistory{
				{Stage: "lead", Date: "2025-09-15"},
				{Stage: "qualified", Date: "2025-10-01"},
				{Stage: "proposal", Date: "2025-11-10"},
				{Stage: "closed-lost", Date: "2026-01-05"},
			},
		},
		{
			ID: "deal-007", Name: "HR Management System", CompanyID: "comp-007", CompanyName: "PeopleFirst HR",
			ContactID: "cont-007", ContactName: "David Brown", Value: 95000, Stage: "negotiation", Probability: 80,
			ExpectedCloseDate: "2026-02-28", CreatedAt: "2025-10-05",
			StageHistory: []models.StageHistory{
				{Stage: "lead", Date: "2025-10-05"},
				{Stage: "qualified", Date: "2025-10-25"},
				{Stage: "proposal", Date: "2025-11-20"},
				{Stage: "negotiation", Date: "2026-01-02"},
			},
		},
		{
			ID: "deal-008", Name: "E-commerce Platform Upgrade", CompanyID: "comp-008", CompanyName: "ShopSmart Online",
			ContactID: "cont-008", ContactName: "Lisa Anderson", Value: 78000, Stage: "proposal", Probability: 45,
			ExpectedCloseDate: "2026-03-15", CreatedAt: "2025-12-10",
			StageHistory: []models.StageHistory{
				{Stage: "lead", Date: "2025-12-10"},
				{Stage: "qualified", Date: "2025-12-28"},
				{Stage: "proposal", Date: "2026-01-12"},
			},
		},
	}
}

// SeedActivities returns a fresh copy of the sample activities.
func SeedActivities() []models.Activity {
	return []models.Activity{
		{ID: "act-001", Type: "Call", Subject: "Discovery call with Sarah Chen", Notes: "Discussed their current CRM pain points and requirements. Very interested in our enterprise solution.", RelatedTo: "Sarah Chen", RelatedType: "Contact", RelatedID: "c1", DueDate: "2026-01-26", CompletedDate: nil, Status: "Pending", AssignedTo: "John Smith", CreatedAt: "2026-01-24"},
		{ID: "act-002", Type: "Email", Subject: "Send proposal to Acme Corporation", Notes: "Include pricing for enterprise tier and implementation timeline.", RelatedTo: "Acme Corporation", RelatedType: "Company", RelatedID: "comp-001", DueDate: "2026-01-25", CompletedDate: ptr("2026-01-25"), Status: "Completed", AssignedTo: "John Smith", CreatedAt: "2026-01-23"},
		{ID: "act-003", Type: "Meeting", Subject: "Product demo with TechStart Inc", Notes: "Demo the cloud migration features. Marcus will join with his team.", RelatedTo: "Cloud Migration Project", RelatedType: "Deal", RelatedID: "deal-002", DueDate: "2026-01-27", CompletedDate: nil, Status: "Pending", AssignedTo: "Sarah Johnson", CreatedAt: "2026-01-22"},
		{ID: "act-004", Type: "Task", Subject: "Prepare contract for Annual Support renewal", Notes: "Standard terms, 10% discount for early renewal.", RelatedTo: "Annual Support Contract", RelatedType: "Deal", RelatedID: "deal-003", DueDate: "2026-01-20", CompletedDate: ptr("2026-01-19"), Status: "Completed", AssignedTo: "Emily Davis", CreatedAt: "2026-01-15"},
		{ID: "act-005", Type: "Call", Subject: "Follow-up call with Marcus Johnson", Notes: "Discuss next steps after the proposal review.", RelatedTo: "Marcus Johnson", RelatedType: "Contact", RelatedID: "c2", DueDate: "2026-01-22", CompletedDate: nil, Status: "Overdue", AssignedTo: "John Smith", CreatedAt: "2026-01-18"},
		{ID: "act-006", Type: "Email", Subject: "Send case studies to Global Finance", Notes: "They requested financial services industry case studies.", RelatedTo: "Global Finance Partners", RelatedType: "Company", RelatedID: "comp-003", DueDate: "2026-01-26", CompletedDate: nil, Status: "Pending", AssignedTo: "Sarah Johnson", CreatedAt: "2026-01-24"},
		{ID: "act-007", Type: "Meeting", Subject: "Quarterly business review with HealthFirst", Notes: "Review Q4 results and discuss Q1 expansion plans.", RelatedTo: "HealthFirst Medical", RelatedType: "Company", RelatedID: "comp-004", DueDate: "2026-01-28", CompletedDate: nil, Status: "Pending", AssignedTo: "Emily Davis", CreatedAt: "2026-01-20"},
		{ID: "act-008", Type: "Task", Subject: "Update CRM with meeting notes", Notes: "Add notes from all client meetings this week.", RelatedTo: "Emily Rodriguez", RelatedType: "Contact", RelatedID: "c3", DueDate: "2026-01-24", CompletedDate: ptr("2026-01-24"), Status: "Completed", AssignedTo: "John Smith", CreatedAt: "2026-01-22"},
	}
}

// SeedSettings returns a fresh copy of the settings singleton.
func SeedSettings() models.Settings {
	return models.Settings{
		Profile: models.Profile{
			ID:       "user-001",
			Name:     "Udara Wijesinghe",
			Email:    "udara@example.com",
			Avatar:   nil,
			Timezone: "Europe/London",
			Role:     "admin",
		},
		PipelineStages: []models.PipelineStage{
			{ID: "stage-1", Name: "Lead", Probability: 10, Color: "#6B7280", Order: 1},
			{ID: "stage-2", Name: "Qualified", Probability: 25, Color: "#3B82F6", Order: 2},
			{ID: "stage-3", Name: "Proposal", Probability: 50, Color: "#8B5CF6", Order: 3},
			{ID: "stage-4", Name: "Negotiation", Probability: 75, Color: "#F59E0B", Order: 4},
			{ID: "stage-5", Name: "Closed Won", Probability: 100, Color: "#10B981", Order: 5},
			{ID: "stage-6", Name: "Closed Lost", Probability: 0, Color: "#EF4444", Order: 6},
		},
		CustomFields: []models.CustomField{
			{ID: "cf-1", Name: "Lead Source", Type: "dropdown", Entity: "contact", Required: false, Options: []string{"Website", "Referral", "Social Media", "Cold Call", "Trade Show", "Other"}},
			{ID: "cf-2", Name: "Annual Revenue", Type: "number", Entity: "company", Required: false},
			{ID: "cf-3", Name: "Contract End Date", Type: "date", Entity: "deal", Required: true},
			{ID: "cf-4", Name: "Notes", Type: "text", Entity: "contact", Required: false},
			{ID: "cf-5", Name: "Industry Vertical", Type: "dropdown", Entity: "company", Required: true, Options: []string{"Technology", "Healthcare", "Finance", "Retail", "Manufacturing", "Other"}},
		},
		Notifications: models.NotificationSettings{
			Email: models.ChannelToggles{
				NewDeal:          true,
				DealStageChange:  true,
				DealWon:          true,
				DealLost:         false,
				NewContact:       false,
				ActivityReminder: true,
				WeeklyReport:     true,
			},
			InApp: models.ChannelToggles{
				NewDeal:             true,
				DealStageChange:     true,
				DealWon:             true,
				DealLost:            true,
				NewContact:          true,
				ActivityReminder:    true,
				MentionNotification: true,
			},
		},
		Timezones: []models.TimezoneOption{
			{Value: "America/New_York", Label: "Eastern Time (US)"},
			{Value: "America/Chicago", Label: "Central Time (US)"},
			{Value: "America/Denver", Label: "Mountain Time (US)"},
			{Value: "America/Los_Angeles", Label: "Pacific Time (US)"},
			{Value: "Europe/London", Label: "London (UK)"},
			{Value: "Europe/Paris", Label: "Central European Time"},
			{Value: "Asia/Dubai", Label: "Dubai (UAE)"},
			{Value: "Asia/Kolkata", Label: "India Standard Time"},
			{Value: "Asia/Singapore", Label: "Singapore Time"},
			{Value: "Asia/Tokyo", Label: "Japan Standard Time"},
			{Value: "Australia/Sydney", Label: "Sydney (Australia)"},
		},
	}
}
