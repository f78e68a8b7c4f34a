package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "gramseva/internal/domain/ticket/valueobjects"
)

// Ticket is a citizen-submitted service request. Name, location, category
// and issue are always non-empty once a ticket exists; email and phone are
// optional contact details, and filePath is only set when an uploaded
// attachment was actually written to storage.
type Ticket struct {
	id        uint
	name      string
	email     *string
	phone     *string
	location  string
	category  string
	issue     string
	filePath  *string
	status    vo.Status
	priority  vo.Priority
	createdAt time.Time
	updatedAt time.Time
}

func NewTicket(name, location, category, issue string, email, phone *string) (*Ticket, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	category = strings.TrimSpace(category)
	issue = strings.TrimSpace(issue)

	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(location) == 0 {
		return nil, fmt.Errorf("location is required")
	}
	if len(location) > 200 {
		return nil, fmt.Errorf("location exceeds maximum length of 200 characters")
	}
	if len(category) == 0 {
		return nil, fmt.Errorf("category is required")
	}
	if len(issue) == 0 {
		return nil, fmt.Errorf("issue description is required")
	}
	if len(issue) > 5000 {
		return nil, fmt.Errorf("issue description exceeds maximum length of 5000 characters")
	}
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" {
			email = nil
		} else if !strings.Contains(trimmed, "@") {
			return nil, fmt.Errorf("invalid email address")
		} else {
			email = &trimmed
		}
	}
	if phone != nil {
		trimmed := strings.TrimSpace(*phone)
		if trimmed == "" {
			phone = nil
		} else {
			phone = &trimmed
		}
	}

	now := time.Now()
	return &Ticket{
		name:      name,
		email:     email,
		phone:     phone,
		location:  location,
		category:  category,
		issue:     issue,
		status:    vo.StatusPending,
		priority:  vo.PriorityMedium,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTicket(
	id uint,
	name string,
	email, phone *string,
	location, category, issue string,
	filePath *string,
	status vo.Status,
	priority vo.Priority,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	return &Ticket{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		location:  location,
		category:  category,
		issue:     issue,
		filePath:  filePath,
		status:    status,
		priority:  priority,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Name() string {
	return t.name
}

func (t *Ticket) Email() *string {
	return t.email
}

func (t *Ticket) Phone() *string {
	return t.phone
}

func (t *Ticket) Location() string {
	return t.location
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) Issue() string {
	return t.issue
}

func (t *Ticket) FilePath() *string {
	return t.filePath
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AttachFile records the stored path of an uploaded attachment. The path
// must refer to a file that was already written to storage.
func (t *Ticket) AttachFile(path string) error {
	if len(path) == 0 {
		return fmt.Errorf("file path cannot be empty")
	}
	t.filePath = &path
	return nil
}
