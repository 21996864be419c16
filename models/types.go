// ABOUTME: Data models for CRM entities
// ABOUTME: Defines Contact, Company, Deal, Activity, and Settings structs
package models

// Dates are carried as ISO strings throughout: entity dates are
// YYYY-MM-DD (lexicographic comparison is valid), company createdAt is
// a full RFC3339 timestamp, matching the seed data.

type Contact struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	CompanyID    string `json:"companyId"`
	Status       string `json:"status"`
	JobTitle     string `json:"jobTitle"`
	LastActivity string `json:"lastActivity"`
	CreatedAt    string `json:"createdAt"`
}

type Company struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Industry       string  `json:"industry"`
	Size           string  `json:"size"`
	Website        string  `json:"website"`
	Address        string  `json:"address"`
	ParentID       *string `json:"parentId"`
	ContactCount   int     `json:"contactCount"`
	TotalDealValue float64 `json:"totalDealValue"`
	CreatedAt      string  `json:"createdAt"`
}

type StageHistory struct {
	Stage string `json:"stage"`
	Date  string `json:"date"`
}

type Deal struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	CompanyID         string         `json:"companyId"`
	CompanyName       string         `json:"companyName"`
	ContactID         string         `json:"contactId"`
	ContactName       string         `json:"contactName"`
	Value             float64        `json:"value"`
	Stage             string         `json:"stage"`
	Probability       int            `json:"probability"`
	ExpectedCloseDate string         `json:"expectedCloseDate"`
	CreatedAt         string         `json:"createdAt"`
	StageHistory      []StageHistory `json:"stageHistory"`
}

type Activity struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Subject       string  `json:"subject"`
	Notes         string  `json:"notes"`
	RelatedTo     string  `json:"relatedTo"`
	RelatedType   string  `json:"relatedType"`
	RelatedID     string  `json:"relatedId"`
	DueDate       string  `json:"dueDate"`
	CompletedDate *string `json:"completedDate"`
	Status        string  `json:"status"`
	AssignedTo    string  `json:"assignedTo"`
	CreatedAt     string  `json:"createdAt"`
}

// Contact status constants.
const (
	ContactStatusActive   = "active"
	ContactStatusLead     = "lead"
	ContactStatusInactive = "inactive"
)

// Deal stage constants.
const (
	StageLead        = "lead"
	StageQualified   = "qualified"
	StageProposal    = "proposal"
	StageNegotiation = "negotiation"
	StageClosedWon   = "closed-won"
	StageClosedLost  = "closed-lost"
)

// Stages lists the pipeline stages in display order.
var Stages = []string{
	StageLead,
	StageQualified,
	StageProposal,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

// StageProbability maps each stage to its fixed win probability.
// Applied only by the dedicated stage-transition path; a direct record
// update can set stage and probability independently.
var StageProbability = map[string]int{
	StageLead:        10,
	StageQualified:   25,
	StageProposal:    50,
	StageNegotiation: 75,
	StageClosedWon:   100,
	StageClosedLost:  0,
}

// ValidStage reports whether s is one of the six pipeline stages.
func ValidStage(s string) bool {
	_, ok := StageProbability[s]
	return ok
}

// StageDisplay holds the dashboard label and color for a stage.
type StageDisplay struct {
	Label string
	Color string
}

var StageConfig = map[string]StageDisplay{
	StageLead:        {Label: "Lead", Color: "#6B7280"},
	StageQualified:   {Label: "Qualified", Color: "#3B82F6"},
	StageProposal:    {Label: "Proposal", Color: "#8B5CF6"},
	StageNegotiation: {Label: "Negotiation", Color: "#F59E0B"},
	StageClosedWon:   {Label: "Closed Won", Color: "#10B981"},
	StageClosedLost:  {Label: "Closed Lost", Color: "#EF4444"},
}

// Activity type constants.
const (
	ActivityCall    = "Call"
	ActivityEmail   = "Email"
	ActivityMeeting = "Meeting"
	ActivityTask    = "Task"
)

// Activity status constants.
const (
	ActivityPending   = "Pending"
	ActivityCompleted = "Completed"
	ActivityOverdue   = "Overdue"
)

// Related entity type constants.
const (
	RelatedContact = "Contact"
	RelatedCompany = "Company"
	RelatedDeal    = "Deal"
)

type Profile struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Avatar   *string `json:"avatar"`
	Timezone string  `json:"timezone"`
	Role     string  `json:"role"`
}

type PipelineStage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Probability int    `json:"probability"`
	Color       string `json:"color"`
	Order       int    `json:"order"`
}

type CustomField struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Entity   string   `json:"entity"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

type ChannelToggles struct {
	NewDeal             bool `json:"newDeal"`
	DealStageChange     bool `json:"dealStageChange"`
	DealWon             bool `json:"dealWon"`
	DealLost            bool `json:"dealLost"`
	NewContact          bool `json:"newContact"`
	ActivityReminder    bool `json:"activityReminder"`
	WeeklyReport        bool `json:"weeklyReport,omitempty"`
	MentionNotification bool `json:"mentionNotification,omitempty"`
}

type NotificationSettings struct {
	Email ChannelToggles `json:"email"`
	InApp ChannelToggles `json:"inApp"`
}

type TimezoneOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Settings struct {
	Profile        Profile              `json:"profile"`
	PipelineStages []PipelineStage      `json:"pipelineStages"`
	CustomFields   []CustomField        `json:"customFields"`
	Notifications  NotificationSettings `json:"notifications"`
	Timezones      []TimezoneOption     `json:"timezones"`
}
