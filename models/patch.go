// ABOUTME: Partial-update patch types for CRM entities
// ABOUTME: Pointer fields distinguish "absent" from "set to zero value"
package models

// Patches carry no ID field: identifiers are immutable through updates.

type ContactPatch struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Company      *string `json:"company"`
	CompanyID    *string `json:"companyId"`
	Status       *string `json:"status"`
	JobTitle     *string `json:"jobTitle"`
	LastActivity *string `json:"lastActivity"`
	CreatedAt    *string `json:"createdAt"`
}

type CompanyPatch struct {
	Name           *string          `json:"name"`
	Industry       *string          `json:"industry"`
	Size           *string          `json:"size"`
	Website        *string          `json:"website"`
	Address        *string          `json:"address"`
	ParentID       Nullable[string] `json:"parentId"`
	ContactCount   *int             `json:"contactCount"`
	TotalDealValue *float64         `json:"totalDealValue"`
	CreatedAt      *string          `json:"createdAt"`
}

type DealPatch struct {
	Name              *string         `json:"name"`
	CompanyID         *string         `json:"companyId"`
	CompanyName       *string         `json:"companyName"`
	ContactID         *string         `json:"contactId"`
	ContactName       *string         `json:"contactName"`
	Value             *float64        `json:"value"`
	Stage             *string         `json:"stage"`
	Probability       *int            `json:"probability"`
	ExpectedCloseDate *string         `json:"expectedCloseDate"`
	CreatedAt         *string         `json:"createdAt"`
	StageHistory      *[]StageHistory `json:"stageHistory"`
}

type ActivityPatch struct {
	Type          *string          `json:"type"`
	Subject       *string          `json:"subject"`
	Notes         *string          `json:"notes"`
	RelatedTo     *string          `json:"relatedTo"`
	RelatedType   *string          `json:"relatedType"`
	RelatedID     *string          `json:"relatedId"`
	DueDate       *string          `json:"dueDate"`
	CompletedDate Nullable[string] `json:"completedDate"`
	Status        *string          `json:"status"`
	AssignedTo    *string          `json:"assignedTo"`
	CreatedAt     *string          `json:"createdAt"`
}

type ProfilePatch struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email"`
	Avatar   Nullable[string] `json:"avatar"`
	Timezone *string          `json:"timezone"`
	Role     *string          `json:"role"`
}

type NotificationsPatch struct {
	Email *ChannelToggles `json:"email"`
	InApp *ChannelToggles `json:"inApp"`
}
